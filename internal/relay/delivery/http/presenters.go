package http

import (
	"gemini-relay/internal/relay"

	"google.golang.org/genai"
)

type generateReq struct {
	Prompt  string           `json:"prompt"`
	History []*genai.Content `json:"history"`
}

func (r generateReq) toInput() relay.GenerateInput {
	return relay.GenerateInput{
		Prompt:  r.Prompt,
		History: r.History,
	}
}

type generateResp struct {
	Response string `json:"response"`
}

func (h *handler) newGenerateResp(o relay.GenerateOutput) generateResp {
	return generateResp{Response: o.Text}
}
