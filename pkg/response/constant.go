package response

const (
	// MessageInternalError is returned when an error carries no client-facing message.
	MessageInternalError = "Internal server error."
)
