package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soupmate/soupmate-api/internal/config"
	"github.com/soupmate/soupmate-api/internal/errs"
	"github.com/soupmate/soupmate-api/internal/models"
	"github.com/soupmate/soupmate-api/internal/util"
)

// CompletionSearcher implements Searcher by prompting a completion backend
// and parsing its JSON-array reply.
type CompletionSearcher struct {
	completer Completer
	prompts   *config.Prompts
}

// NewCompletionSearcher wires a completer to the search prompt templates.
func NewCompletionSearcher(completer Completer, prompts *config.Prompts) *CompletionSearcher {
	return &CompletionSearcher{
		completer: completer,
		prompts:   prompts,
	}
}

// Search builds the instruction prompt, runs one completion round trip and
// parses the reply into recipes.
func (s *CompletionSearcher) Search(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error) {
	prompt, err := s.BuildPrompt(query, filters)
	if err != nil {
		return nil, err
	}

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseRecipes(reply)
}

// BuildPrompt assembles the German instruction string: the query intro, one
// sentence per active filter, and the JSON reply format. The time-range upper
// bound is described as open-ended ("mehr") when it sits at the slider
// maximum, even though matching treats it as a literal bound.
func (s *CompletionSearcher) BuildPrompt(query string, filters models.Filters) (string, error) {
	intro, err := config.RenderPrompt(s.prompts.Search.Intro, map[string]interface{}{
		"Query": query,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(intro)

	if filters.DietActive() {
		diet := "vegetarische"
		if filters.DietType == models.DietVegan {
			diet = "vegane"
		}
		fmt.Fprintf(&b, " Der Benutzer bevorzugt %s Rezepte.", diet)
	}

	if filters.DifficultyActive() {
		fmt.Fprintf(&b, " Die Schwierigkeit sollte %d Sterne (von 1-5) sein.", filters.Difficulty)
	}

	if filters.WorkTimeActive() {
		maxTime := fmt.Sprintf("%d Minuten", filters.WorkTime[1])
		if filters.WorkTime[1] == models.WorkTimeMax {
			maxTime = "mehr"
		}
		fmt.Fprintf(&b, " Die Arbeitszeit sollte zwischen %d und %s liegen.", filters.WorkTime[0], maxTime)
	}

	if filters.TotalTimeActive() {
		maxTime := fmt.Sprintf("%d Minuten", filters.TotalTime[1])
		if filters.TotalTime[1] == models.TotalTimeMax {
			maxTime = "mehr"
		}
		fmt.Fprintf(&b, " Die Gesamtzeit (inklusive Koch- und Wartezeit) sollte zwischen %d und %s liegen.", filters.TotalTime[0], maxTime)
	}

	if filters.AllergiesActive() {
		fmt.Fprintf(&b, " WICHTIG: Die Rezepte dürfen KEINE der folgenden Allergene enthalten: %s.", strings.Join(filters.Allergies, ", "))
	}

	if filters.IngredientsActive() {
		tokens := filters.IngredientTokens()
		fmt.Fprintf(&b, " Der Benutzer hat folgende Zutaten zu Hause: %s. Bevorzuge Rezepte, die diese Zutaten verwenden.", strings.Join(tokens, ", "))
	}

	// The servings sentence is always present; the reply format embeds the
	// same value so portions line up.
	servings := filters.EffectiveServings()
	fmt.Fprintf(&b, " Die Rezepte sollten für %d Person(en) berechnet sein.", servings)

	format, err := config.RenderPrompt(s.prompts.Search.Format, map[string]interface{}{
		"Servings": servings,
	})
	if err != nil {
		return "", err
	}
	b.WriteString("\n\n")
	b.WriteString(format)

	return b.String(), nil
}

// ParseRecipes strips any code-fence markup from the reply and decodes it as
// a recipe array. A reply that is not valid JSON or not array-shaped is a
// parse error, never coerced to empty results.
func ParseRecipes(reply string) ([]models.Recipe, error) {
	cleaned := util.StripCodeFences(reply)

	// "null" and other non-array JSON unmarshal into a nil slice without
	// error; reject anything that is not array-shaped up front.
	if !strings.HasPrefix(cleaned, "[") {
		return nil, errs.ParseError{Message: "AI reply is not a recipe array"}
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(cleaned), &recipes); err != nil {
		return nil, errs.ParseError{Message: fmt.Sprintf("AI reply is not a recipe array: %v", err)}
	}

	for i := range recipes {
		recipes[i].Normalize()
	}
	return recipes, nil
}
