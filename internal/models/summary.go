package models

// Demographics maps each demographic category value to how many personas
// fall into it. Values are grouped by raw string equality; "Company
// employee" and "company employee" count separately.
type Demographics struct {
	AgeDistribution        map[string]int `json:"age_distribution"`
	GenderDistribution     map[string]int `json:"gender_distribution"`
	OccupationDistribution map[string]int `json:"occupation_distribution"`
}

// InterviewSummary is the aggregated report over everything collected so
// far. A run keeps at most one current summary; regeneration replaces it
// wholesale.
type InterviewSummary struct {
	TotalPersonas       int          `json:"total_personas"`
	TotalInterviews     int          `json:"total_interviews"`
	KeyInsights         []string     `json:"key_insights"`
	QuantitativeResults Demographics `json:"quantitative_results"`
	Recommendations     []string     `json:"recommendations"`
}
