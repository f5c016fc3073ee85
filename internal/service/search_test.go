package service

import (
	"context"
	"strings"
	"testing"

	"github.com/soupmate/soupmate-api/internal/ai"
	"github.com/soupmate/soupmate-api/internal/config"
	"github.com/soupmate/soupmate-api/internal/errs"
	"github.com/soupmate/soupmate-api/internal/kv"
	"github.com/soupmate/soupmate-api/internal/models"
	"github.com/soupmate/soupmate-api/internal/testutil"
)

func newTestSearchService(searcher *testutil.MockSearcher, store kv.Store) *SearchService {
	return NewSearchService(searcher, store)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestSearchService(&testutil.MockSearcher{}, kv.NewMemoryStore())

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.Search(context.Background(), query, models.DefaultFilters())
		if _, ok := err.(errs.ValidationError); !ok {
			t.Errorf("Search(%q) returned %v, want validation error", query, err)
		}
	}
}

func TestSearchWritesAuditRecord(t *testing.T) {
	store := kv.NewMemoryStore()
	searcher := &testutil.MockSearcher{
		SearchFunc: func(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error) {
			return []models.Recipe{testutil.TestRecipe()}, nil
		},
	}
	svc := newTestSearchService(searcher, store)

	resp, err := svc.Search(context.Background(), "  Kartoffelsuppe  ", models.DefaultFilters())
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if resp.Query != "Kartoffelsuppe" {
		t.Errorf("response query = %q, want trimmed query", resp.Query)
	}
	if len(resp.Recipes) != 1 || resp.Recipes[0].ID != "42" {
		t.Errorf("response recipes = %+v", resp.Recipes)
	}

	keys := store.Keys()
	if len(keys) != 1 {
		t.Fatalf("store holds %d keys after one search, want 1", len(keys))
	}
	if !strings.HasPrefix(keys[0], "search_") {
		t.Errorf("audit key %q does not carry the search_ prefix", keys[0])
	}

	var record models.SearchRecord
	found, err := store.Get(context.Background(), keys[0], &record)
	if err != nil || !found {
		t.Fatalf("audit record not readable: found=%v err=%v", found, err)
	}
	if record.Query != "Kartoffelsuppe" {
		t.Errorf("audit record query = %q", record.Query)
	}
	if len(record.Results) != 1 {
		t.Errorf("audit record holds %d results, want 1", len(record.Results))
	}
	if record.Timestamp == "" {
		t.Errorf("audit record has no timestamp")
	}
}

func TestSearchPassesThroughSearcherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"upstream", errs.UpstreamError{Message: "status 500"}},
		{"config", errs.ConfigError{Message: "missing key"}},
		{"parse", errs.ParseError{Message: "not an array"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemoryStore()
			searcher := &testutil.MockSearcher{
				SearchFunc: func(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error) {
					return nil, tt.err
				},
			}
			svc := newTestSearchService(searcher, store)

			_, err := svc.Search(context.Background(), "Suppe", models.DefaultFilters())
			if err == nil || err.Error() != tt.err.Error() {
				t.Errorf("Search returned %v, want %v", err, tt.err)
			}
			if len(store.Keys()) != 0 {
				t.Errorf("failed search still wrote an audit record")
			}
		})
	}
}

func TestSearchStoreFailureIsNotFatal(t *testing.T) {
	searcher := &testutil.MockSearcher{
		SearchFunc: func(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error) {
			return []models.Recipe{testutil.TestRecipe()}, nil
		},
	}
	svc := newTestSearchService(searcher, failingStore{})

	resp, err := svc.Search(context.Background(), "Suppe", models.DefaultFilters())
	if err != nil {
		t.Fatalf("Search failed on audit write: %v", err)
	}
	if len(resp.Recipes) != 1 {
		t.Errorf("response recipes = %+v", resp.Recipes)
	}
}

func TestSearchRecordKeyShape(t *testing.T) {
	key := searchRecordKey()

	parts := strings.SplitN(key, "_", 3)
	if len(parts) != 3 || parts[0] != "search" {
		t.Fatalf("searchRecordKey() = %q, want search_<ms>_<suffix>", key)
	}
	if len(parts[2]) != 9 {
		t.Errorf("key suffix %q has length %d, want 9", parts[2], len(parts[2]))
	}

	if other := searchRecordKey(); other == key {
		t.Errorf("two consecutive keys collided: %q", key)
	}
}

func TestSearchThroughCompletionSearcher(t *testing.T) {
	completer := &testutil.MockCompleter{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return "```json\n[{\"id\": \"9\", \"name\": \"Gulaschsuppe\", \"isVegan\": true}]\n```", nil
		},
	}
	prompts := &config.Prompts{
		Search: config.SearchPrompts{
			Intro:  `Ein Benutzer sucht nach: "{{.Query}}".`,
			Format: "Antworte als JSON-Array.",
		},
	}
	store := kv.NewMemoryStore()
	svc := NewSearchService(ai.NewCompletionSearcher(completer, prompts), store)

	resp, err := svc.Search(context.Background(), "Gulasch", models.DefaultFilters())
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(resp.Recipes) != 1 || resp.Recipes[0].ID != "9" {
		t.Fatalf("response recipes = %+v", resp.Recipes)
	}
	if !resp.Recipes[0].IsVegetarian {
		t.Errorf("parsed vegan recipe was not normalized to vegetarian")
	}
	if len(completer.Prompts) != 1 || !strings.Contains(completer.Prompts[0], "Gulasch") {
		t.Errorf("completer prompts = %v", completer.Prompts)
	}
	if len(store.Keys()) != 1 {
		t.Errorf("audit record was not written")
	}
}

// failingStore errors on every write and misses on every read.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (failingStore) Set(ctx context.Context, key string, value interface{}) error {
	return errs.StoreError{Message: "write refused"}
}
