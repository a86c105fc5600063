package gemini

import (
	"sync"
	"time"

	"gemini-relay/config"
	pkgGemini "gemini-relay/pkg/gemini"
)

var (
	instance pkgGemini.IGemini
	mu       sync.Mutex
)

// Connect initializes the Gemini client once and returns it on later calls.
func Connect(cfg config.GeminiConfig) (pkgGemini.IGemini, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := pkgGemini.NewGemini(pkgGemini.GeminiConfig{
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
		Timeout:  time.Duration(cfg.Timeout) * time.Second,
		ProxyURL: cfg.ProxyURL,
	})
	if err != nil {
		return nil, err
	}
	instance = client
	return instance, nil
}
