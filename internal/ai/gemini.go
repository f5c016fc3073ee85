package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/soupmate/soupmate-api/internal/errs"
	"github.com/soupmate/soupmate-api/internal/logger"
	"go.uber.org/zap"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// GeminiCompleter implements Completer against the Generative Language API.
type GeminiCompleter struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewGeminiCompleter creates a Gemini-backed completer. An empty API key is
// allowed here; Complete reports it as a config error per request.
func NewGeminiCompleter(apiKey string) *GeminiCompleter {
	return &GeminiCompleter{
		apiKey:   apiKey,
		endpoint: geminiEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// Complete sends the prompt and returns the first candidate's text.
func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errs.ConfigError{Message: "Gemini API key not configured"}
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode gemini request: %w", err)
	}

	reqURL := fmt.Sprintf("%s?key=%s", c.endpoint, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.UpstreamError{Message: fmt.Sprintf("gemini request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.UpstreamError{Message: fmt.Sprintf("failed to read gemini response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		logger.Get().Warn("gemini API error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return "", errs.UpstreamError{Message: fmt.Sprintf("gemini API returned status %d", resp.StatusCode)}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errs.UpstreamError{Message: fmt.Sprintf("failed to decode gemini response: %v", err)}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 || parsed.Candidates[0].Content.Parts[0].Text == "" {
		return "", errs.UpstreamError{Message: "no completion text in gemini response"}
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
