package testutil

import (
	"context"
	"fmt"

	"github.com/soupmate/soupmate-api/internal/ai"
	"github.com/soupmate/soupmate-api/internal/models"
)

// --- MockCompleter ---

// MockCompleter is a mock implementation of ai.Completer.
type MockCompleter struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	// Prompts records every prompt passed to Complete.
	Prompts []string
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	return "", fmt.Errorf("Complete not configured")
}

// --- MockSearcher ---

// MockSearcher is a mock implementation of ai.Searcher.
type MockSearcher struct {
	SearchFunc func(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error)
}

func (m *MockSearcher) Search(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, filters)
	}
	return nil, fmt.Errorf("Search not configured")
}

// Compile-time interface checks.
var _ ai.Completer = (*MockCompleter)(nil)
var _ ai.Searcher = (*MockSearcher)(nil)
