package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
)

const (
	maxKeyInsights     = 5
	maxRecommendations = 3
)

// Analyzer aggregates everything collected so far into an
// InterviewSummary: demographic frequency counts plus model-extracted
// insights and recommendations.
type Analyzer struct {
	provider llm.Provider
}

func NewAnalyzer(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// GenerateSummary reads the full accumulated state and produces a fresh
// summary. The quantitative step never fails; a provider failure in either
// qualitative step fails the whole operation.
func (a *Analyzer) GenerateSummary(ctx context.Context, state *models.InterviewState) (*models.InterviewSummary, error) {
	insights, err := a.extractInsights(ctx, state)
	if err != nil {
		return nil, err
	}

	recommendations, err := a.generateRecommendations(ctx, state, insights)
	if err != nil {
		return nil, err
	}

	return &models.InterviewSummary{
		TotalPersonas:       len(state.Personas),
		TotalInterviews:     len(state.Sessions) + len(state.FixedInterviews),
		KeyInsights:         insights,
		QuantitativeResults: analyzeDemographics(state.Personas),
		Recommendations:     recommendations,
	}, nil
}

// analyzeDemographics buckets personas by decade age group, raw gender
// string, and raw occupation string. No case or locale normalization: string
// variants count separately.
func analyzeDemographics(personas []models.Persona) models.Demographics {
	demo := models.Demographics{
		AgeDistribution:        make(map[string]int),
		GenderDistribution:     make(map[string]int),
		OccupationDistribution: make(map[string]int),
	}

	for _, p := range personas {
		ageGroup := fmt.Sprintf("%ds", (p.Age/10)*10)
		demo.AgeDistribution[ageGroup]++
		demo.GenderDistribution[p.Gender]++
		demo.OccupationDistribution[p.Occupation]++
	}

	return demo
}

// extractInsights concatenates all assistant-authored chat content and all
// fixed-interview answers into one blob and asks the model for the key
// takeaways. An empty blob yields no insights without touching the provider.
func (a *Analyzer) extractInsights(ctx context.Context, state *models.InterviewState) ([]string, error) {
	var content []string
	for _, session := range state.Sessions {
		for _, turn := range session.Turns {
			if turn.Role == models.RoleAssistant {
				content = append(content, turn.Content)
			}
		}
	}
	for _, iv := range state.FixedInterviews {
		content = append(content, iv.Answers...)
	}

	if len(content) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(`Extract up to %d key insights useful for marketing strategy from the following interview results:

%s

Make each insight specific and actionable. Output one insight per line.`,
		maxKeyInsights, strings.Join(content, "\n"))

	result, err := a.provider.Complete(ctx, insightSystemPrompt, prompt)
	if err != nil {
		return nil, upstreamErr("generate summary (insights)", "", err)
	}

	return nonEmptyLines(result, maxKeyInsights), nil
}

const insightSystemPrompt = "You are a marketing research expert. Extract the key insights from interview results."

func (a *Analyzer) generateRecommendations(ctx context.Context, state *models.InterviewState, insights []string) ([]string, error) {
	if len(insights) == 0 {
		return nil, nil
	}

	category, purpose := "", ""
	if state.Requirements != nil {
		category = state.Requirements.ProductCategory
		purpose = state.Requirements.SurveyPurpose
	}

	prompt := fmt.Sprintf(`Based on the following insights, propose %d concrete recommendations for a CPG manufacturer:

Insights:
%s

Product category: %s
Survey purpose: %s

Make each recommendation specific and executable. Output one recommendation per line.`,
		maxRecommendations, strings.Join(insights, "\n"), category, purpose)

	result, err := a.provider.Complete(ctx, recommendationSystemPrompt, prompt)
	if err != nil {
		return nil, upstreamErr("generate summary (recommendations)", "", err)
	}

	return nonEmptyLines(result, maxRecommendations), nil
}

const recommendationSystemPrompt = "You are a marketing strategy expert. Propose concrete recommendations based on research results."

// nonEmptyLines returns at most limit trimmed, non-empty lines in order. If
// the model returned fewer, fewer are recorded — no padding.
func nonEmptyLines(text string, limit int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == limit {
			break
		}
	}
	return lines
}
