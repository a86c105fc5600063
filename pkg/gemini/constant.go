package gemini

import "time"

const (
	// DefaultBaseURL is the public Generative Language API host.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	// APIVersion is the path segment of the generateContent endpoint.
	APIVersion = "v1beta"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"
	// DefaultTimeout bounds one generateContent round trip.
	DefaultTimeout = 60 * time.Second

	methodGenerateContent = "generateContent"
	apiKeyParam           = "key"
)
