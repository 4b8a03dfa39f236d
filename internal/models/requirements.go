package models

// SurveyRequirements captures what the client wants researched. It is built
// once per workflow run from the five intake answers and never changes
// afterwards.
type SurveyRequirements struct {
	ProductCategory        string   `json:"product_category"`
	TargetAgeRange         string   `json:"target_age_range"`
	TargetGender           string   `json:"target_gender"`
	SurveyPurpose          string   `json:"survey_purpose"`
	KeyQuestions           []string `json:"key_questions"`
	AdditionalRequirements string   `json:"additional_requirements"`
}
