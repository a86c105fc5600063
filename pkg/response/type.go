package response

// ErrorResp is the JSON body written for every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}
