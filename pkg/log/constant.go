package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// RequestIDField is the structured field carrying the request ID.
	RequestIDField = "request_id"
)
