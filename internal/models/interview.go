package models

// FixedInterview holds one persona's answers to a fixed question list.
// Questions and Answers are parallel: Answers[i] responds to Questions[i].
// The record is created atomically once every answer is in and never
// mutated afterwards.
type FixedInterview struct {
	PersonaID string   `json:"persona_id"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
}
