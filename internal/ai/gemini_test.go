package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soupmate/soupmate-api/internal/errs"
)

func TestGeminiCompleterMissingKey(t *testing.T) {
	c := NewGeminiCompleter("")

	_, err := c.Complete(context.Background(), "prompt")
	if _, ok := err.(errs.ConfigError); !ok {
		t.Errorf("Complete with empty key returned %T, want errs.ConfigError", err)
	}
}

func TestGeminiCompleterComplete(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("request key = %q, want test-key", r.URL.Query().Get("key"))
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) == 1 && len(req.Contents[0].Parts) == 1 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: `[{"id":"1"}]`}}}},
			},
		})
	}))
	defer server.Close()

	c := NewGeminiCompleter("test-key")
	c.endpoint = server.URL

	reply, err := c.Complete(context.Background(), "Suche Suppe")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if reply != `[{"id":"1"}]` {
		t.Errorf("Complete returned %q", reply)
	}
	if gotPrompt != "Suche Suppe" {
		t.Errorf("server saw prompt %q", gotPrompt)
	}
}

func TestGeminiCompleterUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewGeminiCompleter("test-key")
	c.endpoint = server.URL

	_, err := c.Complete(context.Background(), "prompt")
	if _, ok := err.(errs.UpstreamError); !ok {
		t.Errorf("Complete on 429 returned %T, want errs.UpstreamError", err)
	}
}

func TestGeminiCompleterEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	c := NewGeminiCompleter("test-key")
	c.endpoint = server.URL

	_, err := c.Complete(context.Background(), "prompt")
	if _, ok := err.(errs.UpstreamError); !ok {
		t.Errorf("Complete on empty candidates returned %T, want errs.UpstreamError", err)
	}
}
