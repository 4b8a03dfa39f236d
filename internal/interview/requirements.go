package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
)

// defaultKeyQuestions backs the fallback path when the model's extraction
// output can't be used.
var defaultKeyQuestions = []string{
	"usage experience",
	"purchase drivers",
	"improvement points",
}

// TemplateQuestions are the five intake questions presented to the human.
// Answers are positionally bound to the requirements fields.
var TemplateQuestions = []string{
	"What product category do you want to research? (e.g. cosmetics, food, household goods)",
	"What age range are you targeting? (e.g. 20-30s, 30-40s)",
	"What gender are you targeting? (male / female / both)",
	"What is the purpose of the survey? (e.g. new product development, brand improvement, market entry)",
	"Anything specific you want to learn or investigate? Free text.",
}

// RequirementsCollector turns the five free-text intake answers into a
// structured SurveyRequirements record.
type RequirementsCollector struct {
	provider llm.Provider
}

func NewRequirementsCollector(provider llm.Provider) *RequirementsCollector {
	return &RequirementsCollector{provider: provider}
}

// Parse asks the model to extract structured requirements from the answers.
// If the model fails or returns something that doesn't deserialize, the
// answers are copied verbatim into the corresponding fields instead — the
// operation never fails on well-formed input.
func (c *RequirementsCollector) Parse(ctx context.Context, answers []string) (*models.SurveyRequirements, error) {
	if len(answers) != len(TemplateQuestions) {
		return nil, preconditionErr("collect requirements",
			fmt.Sprintf("expected %d answers, got %d", len(TemplateQuestions), len(answers)))
	}

	result, err := c.provider.Complete(ctx, extractionSystemPrompt, extractionUserPrompt(answers))
	if err != nil {
		log.Printf("WARN: requirements extraction call failed, using fallback: %v", err)
		return fallbackRequirements(answers), nil
	}

	req, err := decodeRequirements(result)
	if err != nil {
		log.Printf("WARN: requirements extraction unparseable, using fallback: %v", err)
		return fallbackRequirements(answers), nil
	}

	return req, nil
}

const extractionSystemPrompt = "You are a marketing research expert. Organize survey requirements from the user's answers."

func extractionUserPrompt(answers []string) string {
	return fmt.Sprintf(`Analyze the survey requirements from the following answers and output them as JSON:

Answer 1 (product category): %s
Answer 2 (age range): %s
Answer 3 (gender): %s
Answer 4 (purpose): %s
Answer 5 (additional requirements): %s

Output in exactly this format:
{
  "product_category": "product category",
  "target_age_range": "age range",
  "target_gender": "gender",
  "survey_purpose": "survey purpose",
  "key_questions": ["question 1", "question 2", "question 3"],
  "additional_requirements": "additional requirements"
}`,
		answers[0], answers[1], answers[2], answers[3], answers[4])
}

// decodeRequirements deserializes the model output, tolerating markdown
// fences or prose around the JSON object.
func decodeRequirements(text string) (*models.SurveyRequirements, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in output: %w", ErrParseFailure)
	}

	var req models.SurveyRequirements
	if err := json.Unmarshal([]byte(text[start:end+1]), &req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrParseFailure)
	}

	if req.ProductCategory == "" || req.TargetAgeRange == "" || req.TargetGender == "" || req.SurveyPurpose == "" {
		return nil, fmt.Errorf("missing required field: %w", ErrParseFailure)
	}
	if len(req.KeyQuestions) == 0 {
		req.KeyQuestions = append([]string(nil), defaultKeyQuestions...)
	}

	return &req, nil
}

func fallbackRequirements(answers []string) *models.SurveyRequirements {
	return &models.SurveyRequirements{
		ProductCategory:        answers[0],
		TargetAgeRange:         answers[1],
		TargetGender:           answers[2],
		SurveyPurpose:          answers[3],
		KeyQuestions:           append([]string(nil), defaultKeyQuestions...),
		AdditionalRequirements: answers[4],
	}
}
