package ai

import (
	"context"

	"github.com/soupmate/soupmate-api/internal/models"
)

// LocalSearcher implements Searcher over the built-in demo dataset. It exists
// so the application runs without any completion backend configured and so
// the filter contract has a deterministic reference implementation.
type LocalSearcher struct {
	recipes []models.Recipe
}

// NewLocalSearcher creates a searcher over the demo dataset.
func NewLocalSearcher() *LocalSearcher {
	return &LocalSearcher{recipes: DemoRecipes()}
}

// Search filters the dataset, preserving order and truncating to the result
// limit. Zero matches yield the no-results sentinel.
func (s *LocalSearcher) Search(ctx context.Context, query string, filters models.Filters) ([]models.Recipe, error) {
	return models.SelectTop(s.recipes, query, filters), nil
}

// DemoRecipes returns the six German soup recipes the client ships for
// backend-less operation. Order is significant: results keep dataset order.
func DemoRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:   "1",
			Name: "Cremige Tomatensuppe",
			Description: "Eine klassische, samtige Tomatensuppe mit frischen Kräutern und einem Hauch von Knoblauch. " +
				"Diese Suppe ist perfekt für kalte Tage und wird mit frischen Tomaten zubereitet, die mit aromatischem " +
				"Basilikum und würzigem Knoblauch kombiniert werden. Die cremige Textur wird durch die Zugabe von Sahne " +
				"erreicht, die der Suppe eine seidige Konsistenz verleiht.",
			FullDescription: "Diese cremige Tomatensuppe ist ein zeitloser Klassiker, der sowohl einfach zuzubereiten " +
				"als auch unglaublich schmackhaft ist. Die Kombination aus frischen Tomaten, aromatischem Basilikum und " +
				"einer Prise Knoblauch schafft ein harmonisches Geschmackserlebnis. Nach dem Pürieren wird die Suppe mit " +
				"frischer Sahne verfeinert, die ihr eine luxuriöse, samtige Textur verleiht. Diese Suppe ist perfekt als " +
				"Vorspeise oder als leichtes Hauptgericht und lässt sich wunderbar mit frischem Baguette servieren.",
			Difficulty: 2,
			WorkTime:   15,
			TotalTime:  30,
			Servings:   4,
			Ingredients: []string{
				"400g frische Tomaten", "200ml Sahne", "3 Stängel frisches Basilikum", "2 Knoblauchzehen",
				"1 große Zwiebel", "500ml Gemüsebrühe", "2 EL Olivenöl", "Salz und Pfeffer nach Geschmack", "1 Prise Zucker",
			},
			Instructions: []string{
				"Die Zwiebeln schälen und fein würfeln. Den Knoblauch schälen und fein hacken.",
				"In einem großen Topf das Olivenöl bei mittlerer Hitze erhitzen. Die Zwiebeln darin glasig anschwitzen.",
				"Den gehackten Knoblauch hinzufügen und 1-2 Minuten unter Rühren anschwitzen, bis er duftet.",
				"Die Tomaten grob würfeln und zusammen mit der Gemüsebrühe in den Topf geben. Eine Prise Zucker hinzufügen.",
				"Alles zum Kochen bringen, dann die Suppe bei niedriger Hitze 15 Minuten köcheln lassen.",
				"Die Basilikumblätter zur Suppe geben und alles mit einem Pürierstab fein pürieren.",
				"Die Sahne einrühren und die Suppe nochmals kurz erwärmen, aber nicht mehr kochen lassen.",
				"Mit Salz und Pfeffer abschmecken, mit Basilikum garnieren und heiß servieren.",
			},
			IsVegan:      false,
			IsVegetarian: true,
			Allergens:    []string{"Laktose"},
		},
		{
			ID:   "2",
			Name: "Karottensuppe mit Ingwer",
			Description: "Eine wärmende Karottensuppe mit einem Hauch von frischem Ingwer und Kokosmilch. Diese Suppe " +
				"ist nicht nur köstlich, sondern auch reich an Vitaminen und perfekt für eine gesunde Ernährung.",
			FullDescription: "Diese aromatische Karottensuppe vereint die natürliche Süße von Karotten mit der würzigen " +
				"Schärfe von frischem Ingwer und der Cremigkeit von Kokosmilch. Die Karotten werden mit Zwiebeln und " +
				"Ingwer angebraten, bevor sie in aromatischer Gemüsebrühe gegart werden. Die Zugabe von Kokosmilch am " +
				"Ende verleiht der Suppe eine seidige Textur und einen exotischen Touch.",
			Difficulty: 2,
			WorkTime:   15,
			TotalTime:  35,
			Servings:   4,
			Ingredients: []string{
				"600g Karotten", "1 große Zwiebel", "3cm frischer Ingwer", "400ml Kokosmilch", "600ml Gemüsebrühe",
				"2 EL Olivenöl", "1 Knoblauchzehe", "Salz und Pfeffer", "Frischer Koriander zum Garnieren",
				"Geröstete Kürbiskerne optional",
			},
			Instructions: []string{
				"Die Karotten schälen und in gleichmäßige Stücke schneiden. Die Zwiebel würfeln, den Ingwer fein reiben.",
				"In einem großen Topf das Olivenöl erhitzen. Die Zwiebeln darin 4-5 Minuten glasig anschwitzen.",
				"Ingwer und Knoblauch hinzufügen und 1-2 Minuten anschwitzen, bis der Duft aufsteigt.",
				"Die Karottenstücke hinzufügen und 3-4 Minuten mitbraten.",
				"Mit der Gemüsebrühe ablöschen und die Suppe zugedeckt 20 Minuten köcheln lassen.",
				"Die Kokosmilch hinzufügen und alles mit einem Pürierstab fein pürieren.",
				"Mit Salz und Pfeffer abschmecken.",
				"Mit Koriander bestreuen, optional mit Kürbiskernen garnieren und heiß servieren.",
			},
			IsVegan:      true,
			IsVegetarian: true,
			Allergens:    []string{},
		},
		{
			ID:   "3",
			Name: "Klassische Kürbissuppe",
			Description: "Eine herbstliche Kürbissuppe mit einem Hauch von Muskatnuss und cremiger Kokosmilch. Diese " +
				"Suppe ist perfekt für die kalte Jahreszeit und vereint süßliche und würzige Aromen.",
			FullDescription: "Diese klassische Kürbissuppe ist der Inbegriff von Herbstkomfort. Der Hokkaido-Kürbis " +
				"verleiht der Suppe eine natürliche Süße und eine wunderschöne orange Farbe. Die Kombination aus " +
				"Muskatnuss, Kreuzkümmel und cremiger Kokosmilch schafft ein perfektes Gleichgewicht zwischen süß und " +
				"würzig. Das Rösten des Kürbisses verleiht ihm eine tiefere, karamellisierte Note.",
			Difficulty: 2,
			WorkTime:   20,
			TotalTime:  45,
			Servings:   4,
			Ingredients: []string{
				"1 Hokkaido-Kürbis (ca. 1kg)", "1 große Zwiebel", "2 Knoblauchzehen", "800ml Gemüsebrühe",
				"200ml Kokosmilch", "2 EL Olivenöl", "1/2 TL Muskatnuss", "1/2 TL Kreuzkümmel", "Salz und Pfeffer",
				"Kürbiskerne zum Garnieren", "Petersilie optional",
			},
			Instructions: []string{
				"Den Backofen auf 200°C vorheizen. Den Kürbis halbieren, entkernen und in 3cm große Würfel schneiden.",
				"Die Würfel mit Olivenöl, Salz und Pfeffer vermengen und im Ofen 25-30 Minuten rösten.",
				"Währenddessen die Zwiebel würfeln und den Knoblauch hacken.",
				"Im Topf die Zwiebeln glasig anschwitzen, dann Knoblauch, Muskatnuss und Kreuzkümmel zugeben.",
				"Den gerösteten Kürbis zugeben, mit Gemüsebrühe ablöschen und 10 Minuten köcheln lassen.",
				"Die Kokosmilch hinzufügen und alles fein pürieren.",
				"Mit Salz, Pfeffer und Muskatnuss abschmecken.",
				"Mit Kürbiskernen und Petersilie garnieren und heiß servieren.",
			},
			IsVegan:      true,
			IsVegetarian: true,
			Allergens:    []string{},
		},
		{
			ID:   "4",
			Name: "Französische Zwiebelsuppe",
			Description: "Eine herzhafte französische Zwiebelsuppe mit karamellisierten Zwiebeln und überbackenem Käse. " +
				"Ein klassisches Bistro-Gericht, das warm und sättigend ist.",
			FullDescription: "Die französische Zwiebelsuppe ist ein zeitloser Klassiker der französischen Küche. Das " +
				"Geheimnis liegt in den langsam karamellisierten Zwiebeln, die eine tiefe, süßliche Note entwickeln. " +
				"Die Suppe wird traditionell mit einer Scheibe geröstetem Baguette und reichlich Gruyère-Käse " +
				"überbacken, was ihr eine knusprige, goldene Kruste verleiht.",
			Difficulty: 3,
			WorkTime:   25,
			TotalTime:  50,
			Servings:   4,
			Ingredients: []string{
				"6 große Zwiebeln", "3 EL Butter", "1 EL Zucker", "150ml Weißwein", "1,5L Rinderbrühe oder Gemüsebrühe",
				"2 Lorbeerblätter", "1 TL Thymian", "4 Scheiben Baguette", "200g Gruyère-Käse gerieben",
				"Salz und Pfeffer", "2 Knoblauchzehen",
			},
			Instructions: []string{
				"Die Zwiebeln schälen und in dünne Halbringe schneiden.",
				"In einem ofenfesten Topf die Butter schmelzen, die Zwiebeln mit dem Zucker bestreuen.",
				"Die Zwiebeln unter häufigem Rühren 25-30 Minuten garen, bis sie goldbraun karamellisiert sind.",
				"Den Knoblauch zugeben, mit Weißwein ablöschen und die Flüssigkeit um die Hälfte reduzieren.",
				"Brühe, Lorbeerblätter und Thymian zugeben und 20 Minuten köcheln lassen.",
				"Mit Salz und Pfeffer abschmecken, die Lorbeerblätter entfernen.",
				"Das Baguette toasten, die Suppe in ofenfeste Schalen füllen und mit Baguette und Gruyère belegen.",
				"Unter dem Grill 3-5 Minuten überbacken, bis der Käse goldbraun ist. Heiß servieren.",
			},
			IsVegan:      false,
			IsVegetarian: false,
			Allergens:    []string{"Gluten", "Laktose"},
		},
		{
			ID:   "5",
			Name: "Thailändische Tom Kha Gai Suppe",
			Description: "Eine aromatische thailändische Kokossuppe mit Hühnchen, Galgant und Zitronengras. Diese Suppe " +
				"vereint süße, saure, salzige und scharfe Aromen in perfekter Balance.",
			FullDescription: "Tom Kha Gai ist eine der beliebtesten thailändischen Suppen. Die cremige Kokosmilch wird " +
				"mit Galgant, Zitronengras und Kaffernlimettenblättern verfeinert; das Hühnchen wird sanft in der Suppe " +
				"gegart. Die Kombination aus der Säure des Limettensafts, der Schärfe der Chilischoten und der " +
				"süßlichen Kokosmilch schafft ein perfektes Gleichgewicht.",
			Difficulty: 3,
			WorkTime:   20,
			TotalTime:  35,
			Servings:   4,
			Ingredients: []string{
				"400g Hähnchenbrustfilet", "600ml Kokosmilch", "400ml Hühnerbrühe", "3 Stängel Zitronengras",
				"4cm Galgant (oder Ingwer)", "6 Kaffernlimettenblätter", "200g Champignons", "150g Kirschtomaten",
				"3 Thai-Chilis", "3 EL Fischsauce", "2 EL Zucker", "Saft von 2 Limetten", "Frischer Koriander",
			},
			Instructions: []string{
				"Das Hähnchenbrustfilet in mundgerechte Stücke schneiden.",
				"Das Zitronengras andrücken, den Galgant in Scheiben schneiden, die Limettenblätter einreißen.",
				"Die Hühnerbrühe mit Zitronengras, Galgant und Limettenblättern 5 Minuten köcheln lassen.",
				"Die Kokosmilch hinzufügen und vorsichtig erwärmen, nicht kochen.",
				"Hähnchen und Pilze zugeben und 8-10 Minuten bei niedriger Hitze garen.",
				"Kirschtomaten, Chilis, Fischsauce und Zucker zugeben und 3-4 Minuten köcheln lassen.",
				"Vom Herd nehmen und den Limettensaft einrühren, abschmecken.",
				"Mit Koriander garnieren und mit Jasminreis servieren.",
			},
			IsVegan:      false,
			IsVegetarian: false,
			Allergens:    []string{"Fisch"},
		},
		{
			ID:   "6",
			Name: "Linsensuppe nach Dal-Art",
			Description: "Eine würzige indische Linsensuppe mit Kurkuma, Kreuzkümmel und Kokosmilch. Diese nahrhafte " +
				"Suppe ist reich an Proteinen und voller aromatischer Gewürze.",
			FullDescription: "Diese indisch inspirierte Linsensuppe, auch bekannt als Dal, ist ein Grundnahrungsmittel " +
				"der indischen Küche. Die roten Linsen zerfallen beim Kochen und schaffen eine natürlich cremige " +
				"Textur. Kurkuma, Kreuzkümmel, Koriander und Garam Masala verleihen ihr ein komplexes, wärmendes Aroma; " +
				"Kokosmilch macht die Suppe besonders cremig.",
			Difficulty: 2,
			WorkTime:   15,
			TotalTime:  35,
			Servings:   4,
			Ingredients: []string{
				"250g rote Linsen", "1 große Zwiebel", "3 Knoblauchzehen", "2cm frischer Ingwer", "400ml Kokosmilch",
				"600ml Gemüsebrühe", "2 EL Olivenöl oder Ghee", "1 TL Kurkuma", "1 TL Kreuzkümmel gemahlen",
				"1 TL Koriander gemahlen", "1/2 TL Garam Masala", "1 Dose gehackte Tomaten (400g)", "1 Handvoll Spinat",
				"Salz und Cayennepfeffer", "Frischer Koriander und Limettensaft zum Servieren",
			},
			Instructions: []string{
				"Die roten Linsen gründlich abspülen, bis das Wasser klar ist.",
				"Zwiebel fein würfeln, Knoblauch und Ingwer fein hacken.",
				"Die Zwiebeln im Öl 5-6 Minuten anschwitzen, dann Knoblauch und Ingwer zugeben.",
				"Alle Gewürze zugeben und 30 Sekunden unter Rühren anrösten.",
				"Linsen, Tomaten und Gemüsebrühe zugeben und 20-25 Minuten köcheln lassen.",
				"Die Kokosmilch einrühren und weitere 5 Minuten köcheln lassen.",
				"Den Spinat unterheben, bis er zusammengefallen ist.",
				"Mit Salz und Cayennepfeffer abschmecken, mit Koriander und Limettensaft servieren.",
			},
			IsVegan:      true,
			IsVegetarian: true,
			Allergens:    []string{},
		},
	}
}
