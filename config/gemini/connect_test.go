package gemini

import (
	"testing"

	"gemini-relay/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Cleanup(func() { instance = nil })

	_, err := Connect(config.GeminiConfig{BaseURL: "::bad"})
	require.Error(t, err)

	first, err := Connect(config.GeminiConfig{BaseURL: "http://127.0.0.1:1", Model: "m", Timeout: 1})
	require.NoError(t, err)
	second, err := Connect(config.GeminiConfig{BaseURL: "http://127.0.0.1:2"})
	require.NoError(t, err)
	assert.Same(t, first, second)
}
