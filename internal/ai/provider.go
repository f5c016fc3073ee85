package ai

import (
	"context"

	"github.com/soupmate/soupmate-api/internal/models"
)

// Completer is the completion collaborator: prompt in, text out. Exactly one
// round trip, no retries; a missing credential surfaces as a config error
// before any network I/O.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Searcher turns a query plus filter state into a recipe list. Two kinds
// exist: completion-backed (prompting an AI model) and local (filtering the
// built-in dataset). Both honor the same logical search contract.
type Searcher interface {
	Search(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error)
}
