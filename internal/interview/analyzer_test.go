package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryOnEmptyState(t *testing.T) {
	// The provider would fail if called; an empty state must not call it.
	provider := &stubProvider{err: errors.New("no credentials")}
	analyzer := NewAnalyzer(provider)

	summary, err := analyzer.GenerateSummary(context.Background(), models.NewInterviewState())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalPersonas)
	assert.Equal(t, 0, summary.TotalInterviews)
	assert.Empty(t, summary.KeyInsights)
	assert.Empty(t, summary.Recommendations)
	assert.NotNil(t, summary.QuantitativeResults.AgeDistribution)
	assert.NotNil(t, summary.QuantitativeResults.GenderDistribution)
	assert.NotNil(t, summary.QuantitativeResults.OccupationDistribution)
	assert.Zero(t, provider.callCount())
}

func TestAnalyzeDemographicsBuckets(t *testing.T) {
	personas := []models.Persona{
		{Age: 23, Gender: "female", Occupation: "Nurse"},
		{Age: 27, Gender: "female", Occupation: "nurse"},
		{Age: 34, Gender: "male", Occupation: "Engineer"},
		{Age: 30, Gender: "female", Occupation: "Nurse"},
	}

	demo := analyzeDemographics(personas)

	assert.Equal(t, map[string]int{"20s": 2, "30s": 2}, demo.AgeDistribution)
	assert.Equal(t, map[string]int{"female": 3, "male": 1}, demo.GenderDistribution)
	// Raw string equality: case variants count separately.
	assert.Equal(t, map[string]int{"Nurse": 2, "nurse": 1, "Engineer": 1}, demo.OccupationDistribution)
}

func stateWithInterviews() *models.InterviewState {
	state := models.NewInterviewState()
	state.Requirements = &models.SurveyRequirements{
		ProductCategory: "snacks",
		SurveyPurpose:   "new product",
	}
	state.Personas = []models.Persona{
		{ID: "p1", Age: 25, Gender: "female", Occupation: "Nurse"},
		{ID: "p2", Age: 41, Gender: "male", Occupation: "Engineer"},
	}
	state.Sessions = []*models.InterviewSession{{
		SessionID: "chat_p1_x",
		PersonaID: "p1",
		StartTime: time.Now(),
		Turns: []models.ChatTurn{
			{Role: models.RoleUser, Content: "How often do you snack?"},
			{Role: models.RoleAssistant, Content: "Every afternoon at work."},
		},
	}}
	state.FixedInterviews = []models.FixedInterview{{
		PersonaID: "p2",
		Questions: []string{"Q1"},
		Answers:   []string{"I prefer salty snacks."},
	}}
	return state
}

func TestSummaryCountsAndTruncation(t *testing.T) {
	insightLines := "i1\n\ni2\ni3\n i4 \ni5\ni6\ni7"
	recommendationLines := "r1\nr2\nr3\nr4"
	provider := &stubProvider{responses: []string{insightLines, recommendationLines}}
	analyzer := NewAnalyzer(provider)

	summary, err := analyzer.GenerateSummary(context.Background(), stateWithInterviews())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalPersonas)
	assert.Equal(t, 2, summary.TotalInterviews)
	assert.Equal(t, []string{"i1", "i2", "i3", "i4", "i5"}, summary.KeyInsights)
	assert.Equal(t, []string{"r1", "r2", "r3"}, summary.Recommendations)
	assert.Equal(t, 2, provider.callCount())
}

func TestSummaryFewerInsightsThanMax(t *testing.T) {
	provider := &stubProvider{responses: []string{"only one insight", "r1"}}
	analyzer := NewAnalyzer(provider)

	summary, err := analyzer.GenerateSummary(context.Background(), stateWithInterviews())
	require.NoError(t, err)

	// No padding when the model returns fewer lines.
	assert.Equal(t, []string{"only one insight"}, summary.KeyInsights)
	assert.Equal(t, []string{"r1"}, summary.Recommendations)
}

func TestSummaryProviderFailureFailsOperation(t *testing.T) {
	analyzer := NewAnalyzer(&stubProvider{err: errors.New("timeout")})

	_, err := analyzer.GenerateSummary(context.Background(), stateWithInterviews())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

func TestSummaryRecommendationFailureFailsOperation(t *testing.T) {
	// First call (insights) succeeds, second (recommendations) fails.
	provider := &recommendationFailProvider{}
	analyzer := NewAnalyzer(provider)

	_, err := analyzer.GenerateSummary(context.Background(), stateWithInterviews())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "recommendations")
}

type recommendationFailProvider struct {
	calls int
}

func (p *recommendationFailProvider) Complete(_ context.Context, _, _ string) (string, error) {
	p.calls++
	if p.calls == 1 {
		return "an insight", nil
	}
	return "", errors.New("timeout")
}

func TestNonEmptyLines(t *testing.T) {
	lines := nonEmptyLines("  a \n\n\nb\nc\nd", 3)
	assert.Equal(t, []string{"a", "b", "c"}, lines)

	assert.Nil(t, nonEmptyLines("\n \n", 5))
}
