package models

import "strings"

// DietType is the type for the diet filter enum.
type DietType string

// DietType enum values.
const (
	DietAll        DietType = "alle"
	DietVegetarian DietType = "vegetarisch"
	DietVegan      DietType = "vegan"
)

// Slider bounds for the time-range filters. The upper bound is displayed as
// open-ended ("120+"/"240+") but is applied as a literal inclusive bound when
// matching. Intentional: the client has always filtered this way.
const (
	WorkTimeMax  = 120
	TotalTimeMax = 240
)

// DefaultServings is the assumed portion count when the user never touched the
// servings filter.
const DefaultServings = 4

// Filters is the structured query-refinement state applied to a recipe search.
// A field equal to its default value is inactive: it neither constrains
// results nor appears in prompts or filter chips. The zero value of a field
// (an omitted JSON field) counts as inactive too.
type Filters struct {
	DietType    DietType `json:"dietType"`
	Difficulty  int      `json:"difficulty"`
	WorkTime    [2]int   `json:"workTime"`
	TotalTime   [2]int   `json:"totalTime"`
	Allergies   []string `json:"allergies"`
	Ingredients string   `json:"ingredients"`
	Servings    int      `json:"servings"`
}

// DefaultFilters returns the filter state with every field at its default.
func DefaultFilters() Filters {
	return Filters{
		DietType:  DietAll,
		WorkTime:  [2]int{0, WorkTimeMax},
		TotalTime: [2]int{0, TotalTimeMax},
		Allergies: []string{},
		Servings:  DefaultServings,
	}
}

// DietActive reports whether the diet filter constrains results.
func (f *Filters) DietActive() bool {
	return f.DietType == DietVegetarian || f.DietType == DietVegan
}

// DifficultyActive reports whether the difficulty filter constrains results.
// Zero means unset.
func (f *Filters) DifficultyActive() bool {
	return f.Difficulty > 0
}

// WorkTimeActive reports whether the work-time range constrains results.
func (f *Filters) WorkTimeActive() bool {
	return f.WorkTime != [2]int{} && f.WorkTime != [2]int{0, WorkTimeMax}
}

// TotalTimeActive reports whether the total-time range constrains results.
func (f *Filters) TotalTimeActive() bool {
	return f.TotalTime != [2]int{} && f.TotalTime != [2]int{0, TotalTimeMax}
}

// AllergiesActive reports whether the allergy exclusion constrains results.
func (f *Filters) AllergiesActive() bool {
	return len(f.Allergies) > 0
}

// IngredientsActive reports whether the available-ingredients filter
// constrains results.
func (f *Filters) IngredientsActive() bool {
	return strings.TrimSpace(f.Ingredients) != ""
}

// ServingsActive reports whether the servings filter constrains results.
func (f *Filters) ServingsActive() bool {
	return f.Servings > 0 && f.Servings != DefaultServings
}

// EffectiveServings returns the servings value to use in prompts, falling back
// to the default when unset.
func (f *Filters) EffectiveServings() int {
	if f.Servings > 0 {
		return f.Servings
	}
	return DefaultServings
}

// IngredientTokens splits the free-text ingredients filter on commas and
// returns the trimmed, lower-cased tokens.
func (f *Filters) IngredientTokens() []string {
	var tokens []string
	for _, part := range strings.Split(f.Ingredients, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// MatchesQuery reports whether the free-text query matches the recipe by
// case-insensitive substring against the name, the description, or any
// ingredient string.
func MatchesQuery(r *Recipe, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// Matches decides whether the recipe passes every active filter. Pure
// conjunction; evaluation order does not affect the result.
func (f *Filters) Matches(r *Recipe) bool {
	switch f.DietType {
	case DietVegan:
		if !r.IsVegan {
			return false
		}
	case DietVegetarian:
		// Vegan recipes pass too: vegan implies vegetarian.
		if !r.IsVegetarian && !r.IsVegan {
			return false
		}
	}

	if f.DifficultyActive() && r.Difficulty != f.Difficulty {
		return false
	}

	if f.WorkTimeActive() && (r.WorkTime < f.WorkTime[0] || r.WorkTime > f.WorkTime[1]) {
		return false
	}
	if f.TotalTimeActive() && (r.TotalTime < f.TotalTime[0] || r.TotalTime > f.TotalTime[1]) {
		return false
	}

	if f.AllergiesActive() {
		for _, allergen := range r.Allergens {
			for _, excluded := range f.Allergies {
				if allergen == excluded {
					return false
				}
			}
		}
	}

	if f.IngredientsActive() {
		tokens := f.IngredientTokens()
		found := false
		for _, ing := range r.Ingredients {
			lowered := strings.ToLower(ing)
			for _, token := range tokens {
				if strings.Contains(lowered, token) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.ServingsActive() && r.Servings < f.Servings {
		return false
	}

	return true
}

// ResultLimit is the maximum number of matches a search returns.
const ResultLimit = 5

// SelectTop filters recipes by query and filter state, preserving dataset
// order and truncating to ResultLimit. A zero-match outcome yields the single
// no-results sentinel, never an empty slice.
func SelectTop(recipes []Recipe, query string, filters Filters) []Recipe {
	var matched []Recipe
	for i := range recipes {
		r := recipes[i]
		if !MatchesQuery(&r, query) {
			continue
		}
		if !filters.Matches(&r) {
			continue
		}
		matched = append(matched, r)
		if len(matched) == ResultLimit {
			break
		}
	}
	if len(matched) == 0 {
		return []Recipe{NoResultsRecipe()}
	}
	return matched
}
