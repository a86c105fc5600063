package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// mockGemini is an httptest.Server that simulates the generateContent endpoint.
type mockGemini struct {
	Server *httptest.Server

	// Configurable response
	Status int
	Body   string

	mu          sync.Mutex
	calls       int
	lastPath    string
	lastKey     string
	lastRequest map[string]any
}

func newMockGemini(status int, body string) *mockGemini {
	m := &mockGemini{Status: status, Body: body}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *mockGemini) Close() {
	m.Server.Close()
}

func (m *mockGemini) URL() string {
	return m.Server.URL
}

func (m *mockGemini) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Last returns the path, API key and decoded body of the latest request.
func (m *mockGemini) Last() (string, string, map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPath, m.lastKey, m.lastRequest
}

func (m *mockGemini) handle(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	m.mu.Lock()
	m.calls++
	m.lastPath = r.URL.Path
	m.lastKey = r.URL.Query().Get("key")
	m.lastRequest = body
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(m.Status)
	_, _ = w.Write([]byte(m.Body))
}
