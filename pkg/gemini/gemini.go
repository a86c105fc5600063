package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// GenerateContent calls models/{model}:generateContent with the key as a query parameter.
func (g *geminiImpl) GenerateContent(ctx context.Context, apiKey string, req Request) (Response, error) {
	body, statusCode, err := g.httpClient.Post(ctx, g.endpoint(apiKey), req, nil)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if !gjson.ValidBytes(body) {
		return Response{}, fmt.Errorf("%w: status %d, %d bytes of non-JSON", ErrInvalidResponse, statusCode, len(body))
	}
	resp := decodeResponse(body)
	resp.StatusCode = statusCode
	return resp, nil
}

func (g *geminiImpl) endpoint(apiKey string) string {
	q := url.Values{}
	q.Set(apiKeyParam, apiKey)
	return fmt.Sprintf("%s/%s/models/%s:%s?%s",
		g.baseURL, APIVersion, url.PathEscape(g.model), methodGenerateContent, q.Encode())
}

// decodeResponse expects valid JSON. Bodies of an unrecognized shape yield a Response
// with neither Error nor Result set.
func decodeResponse(body []byte) Response {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Response{}
	}
	if e := root.Get("error"); e.IsObject() {
		return Response{Error: decodeAPIError(e)}
	}

	var result genai.GenerateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return Response{}
	}
	return Response{Result: &result}
}

func decodeAPIError(e gjson.Result) *APIError {
	var apiErr APIError
	if err := json.Unmarshal([]byte(e.Raw), &apiErr); err == nil {
		return &apiErr
	}

	// Loosely typed error objects, e.g. a string code.
	apiErr = APIError{
		Code:    int(e.Get("code").Int()),
		Message: e.Get("message").String(),
		Status:  e.Get("status").String(),
	}
	for _, d := range e.Get("details").Array() {
		apiErr.Details = append(apiErr.Details, ErrorDetail{
			Reason: d.Get("reason").String(),
			Domain: d.Get("domain").String(),
		})
	}
	return &apiErr
}
