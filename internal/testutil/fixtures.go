package testutil

import "github.com/soupmate/soupmate-api/internal/models"

// TestRecipe creates a test Recipe with realistic fields.
func TestRecipe() models.Recipe {
	return models.Recipe{
		ID:           "42",
		Name:         "Kartoffelsuppe",
		Description:  "Deftige Kartoffelsuppe mit Lauch und Majoran.",
		Difficulty:   2,
		WorkTime:     20,
		TotalTime:    45,
		Servings:     4,
		Ingredients:  []string{"800g Kartoffeln", "1 Stange Lauch", "1l Gemüsebrühe", "100ml Sahne", "Majoran"},
		Instructions: []string{"Kartoffeln schälen und würfeln", "Lauch in Ringe schneiden", "Alles in Brühe weich kochen", "Pürieren und mit Sahne verfeinern"},
		IsVegan:      false,
		IsVegetarian: true,
		Allergens:    []string{"Laktose"},
	}
}
