package service

import (
	"context"
	"fmt"
	"strings"

	goaway "github.com/TwiN/go-away"
	"github.com/asaskevich/govalidator"
	"github.com/soupmate/soupmate-api/internal/errs"
	"github.com/soupmate/soupmate-api/internal/kv"
	"github.com/soupmate/soupmate-api/internal/models"
)

// FavoritesService is the business logic layer for the per-user favorites
// list. The list is stored as one value under the user's key and rewritten
// wholesale on every mutation. Concurrent writers for the same user can race
// and the last write wins; at favorites-list scale that is an accepted
// limitation, not a bug to serialize away.
type FavoritesService struct {
	Store kv.Store
}

// NewFavoritesService is the constructor function for initializing a new FavoritesService.
func NewFavoritesService(store kv.Store) *FavoritesService {
	return &FavoritesService{Store: store}
}

// favoritesKey builds the storage key for a user's favorites list.
func favoritesKey(userName string) string {
	return "favorites_" + userName
}

// ValidateUserName checks a user name against the naming rules: non-empty,
// alphanumeric, no profanity.
func (s *FavoritesService) ValidateUserName(userName string) error {
	if strings.TrimSpace(userName) == "" {
		return errs.ValidationError{Message: "userName is required"}
	}
	if !govalidator.IsAlphanumeric(userName) {
		return errs.ValidationError{Message: "userName can only contain alphanumeric characters"}
	}

	profanityDetector := goaway.NewProfanityDetector().WithSanitizeLeetSpeak(true).WithSanitizeSpecialCharacters(true).WithSanitizeAccents(false)
	if profanityDetector.IsProfane(userName) {
		return errs.ValidationError{Message: "userName contains inappropriate language"}
	}

	return nil
}

// List returns the user's favorites. A user with nothing stored gets an empty
// list, never an error.
func (s *FavoritesService) List(ctx context.Context, userName string) ([]models.FavoriteEntry, error) {
	if err := s.ValidateUserName(userName); err != nil {
		return nil, err
	}

	var favorites []models.FavoriteEntry
	found, err := s.Store.Get(ctx, favoritesKey(userName), &favorites)
	if err != nil {
		return nil, err
	}
	if !found || favorites == nil {
		return []models.FavoriteEntry{}, nil
	}
	return favorites, nil
}

// Add appends the recipe's favorites projection to the user's list and
// rewrites the whole list. Adding an id that is already present is a
// duplicate error and leaves the stored list untouched.
func (s *FavoritesService) Add(ctx context.Context, userName string, recipe models.Recipe) ([]models.FavoriteEntry, error) {
	if err := s.ValidateUserName(userName); err != nil {
		return nil, err
	}
	if recipe.ID == "" {
		return nil, errs.ValidationError{Message: "recipe id is required"}
	}

	favorites, err := s.List(ctx, userName)
	if err != nil {
		return nil, err
	}

	// Linear scan; favorites lists are tens of entries, not thousands.
	for _, fav := range favorites {
		if fav.ID == recipe.ID {
			return nil, errs.DuplicateError{Message: fmt.Sprintf("recipe %q is already in favorites", recipe.ID)}
		}
	}

	favorites = append(favorites, models.ToFavoriteEntry(&recipe))
	if err := s.Store.Set(ctx, favoritesKey(userName), favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Remove deletes the entry with the given id and rewrites the whole list.
// Removing an id that is not present succeeds and returns the unchanged list.
func (s *FavoritesService) Remove(ctx context.Context, userName, recipeID string) ([]models.FavoriteEntry, error) {
	if err := s.ValidateUserName(userName); err != nil {
		return nil, err
	}
	if recipeID == "" {
		return nil, errs.ValidationError{Message: "recipeId is required"}
	}

	favorites, err := s.List(ctx, userName)
	if err != nil {
		return nil, err
	}

	updated := make([]models.FavoriteEntry, 0, len(favorites))
	for _, fav := range favorites {
		if fav.ID != recipeID {
			updated = append(updated, fav)
		}
	}

	if err := s.Store.Set(ctx, favoritesKey(userName), updated); err != nil {
		return nil, err
	}
	return updated, nil
}
