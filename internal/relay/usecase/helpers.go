package usecase

import (
	"strings"

	"gemini-relay/internal/relay"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"
)

const (
	roleUser  = string(genai.RoleUser)
	roleModel = string(genai.RoleModel)
)

func userTurn(text string) *genai.Content {
	return &genai.Content{
		Role:  roleUser,
		Parts: []*genai.Part{{Text: text}},
	}
}

// normalizeHistory validates the turns and returns copies of them. Inline data without a
// MIME type gets one detected from its payload; the caller's values are never modified.
func normalizeHistory(history []*genai.Content) ([]*genai.Content, error) {
	out := make([]*genai.Content, 0, len(history))
	for i, turn := range history {
		if turn == nil {
			return nil, &relay.HistoryError{Index: i, Reason: "turn is null"}
		}
		if turn.Role != roleUser && turn.Role != roleModel {
			return nil, &relay.HistoryError{Index: i, Reason: "role must be user or model"}
		}
		if len(turn.Parts) == 0 {
			return nil, &relay.HistoryError{Index: i, Reason: "turn has no parts"}
		}

		parts := make([]*genai.Part, 0, len(turn.Parts))
		for _, part := range turn.Parts {
			p, reason := normalizePart(part)
			if reason != "" {
				return nil, &relay.HistoryError{Index: i, Reason: reason}
			}
			parts = append(parts, p)
		}
		out = append(out, &genai.Content{Role: turn.Role, Parts: parts})
	}
	return out, nil
}

func normalizePart(part *genai.Part) (*genai.Part, string) {
	if part == nil {
		return nil, "part is null"
	}
	if part.InlineData == nil {
		if part.Text == "" && part.FileData == nil {
			return nil, "part has no text, inlineData or fileData"
		}
		return part, ""
	}

	if len(part.InlineData.Data) == 0 {
		return nil, "inlineData has no data"
	}
	if part.InlineData.MIMEType != "" {
		return part, ""
	}

	blob := *part.InlineData
	blob.MIMEType = detectMIMEType(blob.Data)
	p := *part
	p.InlineData = &blob
	return &p, ""
}

func detectMIMEType(data []byte) string {
	mt := mimetype.Detect(data).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.TrimSpace(mt)
}
