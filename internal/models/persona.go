package models

// Persona is a synthetic consumer profile used as an interview subject.
// IDs are unique within a run's persona collection; sessions and fixed
// interviews reference personas by ID rather than embedding them.
type Persona struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Age                  int    `json:"age"`
	Gender               string `json:"gender"`
	Occupation           string `json:"occupation"`
	HouseholdComposition string `json:"household_composition"`
	IncomeLevel          string `json:"income_level"`
	Lifestyle            string `json:"lifestyle"`
	ShoppingBehavior     string `json:"shopping_behavior"`
	Personality          string `json:"personality"`
	BackgroundStory      string `json:"background_story"`
}
