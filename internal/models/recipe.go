package models

// KnownAllergens is the allergen vocabulary used by the filter sidebar and the
// AI prompt. Labels are German because the client renders them directly.
var KnownAllergens = []string{
	"Gluten",
	"Laktose",
	"Nüsse",
	"Soja",
	"Eier",
	"Fisch",
	"Schalentiere",
	"Sellerie",
}

// NoResultsID is the well-known id of the sentinel recipe returned when a
// search matches nothing. Renderers special-case it; it is never a real recipe.
const NoResultsID = "no-results"

// Recipe is a single recipe as exchanged with the client and the completion
// collaborator. Field names are the wire contract.
type Recipe struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Difficulty      int      `json:"difficulty"`
	WorkTime        int      `json:"workTime"`
	TotalTime       int      `json:"totalTime"`
	Servings        int      `json:"servings"`
	Ingredients     []string `json:"ingredients"`
	Instructions    []string `json:"instructions"`
	IsVegan         bool     `json:"isVegan"`
	IsVegetarian    bool     `json:"isVegetarian"`
	Allergens       []string `json:"allergens"`
}

// Normalize enforces the derived rule vegan implies vegetarian and backfills
// nil slices so the client never sees JSON null.
func (r *Recipe) Normalize() {
	if r.IsVegan {
		r.IsVegetarian = true
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
	if r.Allergens == nil {
		r.Allergens = []string{}
	}
}

// IsNoResults reports whether r is the sentinel record.
func (r *Recipe) IsNoResults() bool {
	return r.ID == NoResultsID
}

// NoResultsRecipe returns the sentinel record for an empty result set. Callers
// return this instead of an empty list.
func NoResultsRecipe() Recipe {
	return Recipe{
		ID:          NoResultsID,
		Name:        "Keine Rezepte gefunden",
		Description: "Leider wurden keine Rezepte gefunden, die alle deine Filter erfüllen. Versuche, einige Filter zurückzusetzen.",
		FullDescription: "Mit den aktuellen Filtereinstellungen konnten wir leider kein passendes Rezept finden. Bitte versuche Folgendes:\n\n" +
			"• Setze einige Filter zurück\n• Erweitere deine Suchkriterien\n• Versuche eine andere Suchanfrage",
		Ingredients:  []string{},
		Instructions: []string{"Bitte passe deine Filtereinstellungen an und versuche es erneut."},
		Allergens:    []string{},
	}
}
