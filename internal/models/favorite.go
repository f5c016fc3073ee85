package models

// FavoriteEntry is the reduced projection of a Recipe stored per user. The
// list is stored as one value under the user's key and rewritten wholesale on
// every mutation.
type FavoriteEntry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Difficulty int      `json:"difficulty"`
	Diet       DietType `json:"diet"`
}

// ToFavoriteEntry projects a recipe into its favorites representation.
func ToFavoriteEntry(r *Recipe) FavoriteEntry {
	diet := DietAll
	switch {
	case r.IsVegan:
		diet = DietVegan
	case r.IsVegetarian:
		diet = DietVegetarian
	}
	return FavoriteEntry{
		ID:         r.ID,
		Name:       r.Name,
		Difficulty: r.Difficulty,
		Diet:       diet,
	}
}
