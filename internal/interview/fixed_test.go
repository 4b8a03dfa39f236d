package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoProvider answers every question with its own text so positional
// alignment is observable.
var echoProvider = llm.ProviderFunc(func(_ context.Context, _, userText string) (string, error) {
	return "answer to " + userText, nil
})

func TestFixedRunAlignsAnswersWithQuestions(t *testing.T) {
	runner := NewFixedRunner(echoProvider)
	personas := []models.Persona{
		{ID: "p1", Name: "Mia"},
		{ID: "p2", Name: "Kenji"},
	}
	questions := []string{"Q1", "Q2", "Q3"}

	interviews := runner.Run(context.Background(), personas, questions)
	require.Len(t, interviews, 2)

	for i, iv := range interviews {
		assert.Equal(t, personas[i].ID, iv.PersonaID)
		assert.Equal(t, questions, iv.Questions)
		require.Len(t, iv.Answers, len(questions))
		for j, answer := range iv.Answers {
			assert.Equal(t, "answer to Question: "+questions[j], answer,
				"persona %s answer %d misaligned", iv.PersonaID, j)
		}
	}
}

func TestFixedRunSubstitutesFallbackOnSingleFailure(t *testing.T) {
	provider := llm.ProviderFunc(func(_ context.Context, _, userText string) (string, error) {
		if strings.Contains(userText, "Q2") {
			return "", errors.New("rate limited")
		}
		return "ok: " + userText, nil
	})

	runner := NewFixedRunner(provider)
	personas := []models.Persona{{ID: "p1", Name: "Mia"}}

	interviews := runner.Run(context.Background(), personas, []string{"Q1", "Q2", "Q3"})
	require.Len(t, interviews, 1)
	answers := interviews[0].Answers
	require.Len(t, answers, 3)

	assert.Equal(t, "ok: Question: Q1", answers[0])
	// The failed question carries a marked fallback naming the persona.
	assert.Contains(t, answers[1], "Mia")
	assert.Contains(t, answers[1], "unable to answer")
	assert.Equal(t, "ok: Question: Q3", answers[2])
}

func TestFixedRunAllFailuresStillCompletes(t *testing.T) {
	provider := &stubProvider{err: errors.New("provider down")}
	runner := NewFixedRunner(provider)
	personas := []models.Persona{{ID: "p1", Name: "Mia"}, {ID: "p2", Name: "Kenji"}}

	interviews := runner.Run(context.Background(), personas, []string{"Q1", "Q2"})
	require.Len(t, interviews, 2)
	for _, iv := range interviews {
		require.Len(t, iv.Answers, 2)
		for _, answer := range iv.Answers {
			assert.NotEmpty(t, answer)
		}
	}
}

func TestFixedRunNoPersonas(t *testing.T) {
	runner := NewFixedRunner(echoProvider)
	interviews := runner.Run(context.Background(), nil, []string{"Q1"})
	assert.Empty(t, interviews)
}

func TestFixedRunQuestionListCopied(t *testing.T) {
	runner := NewFixedRunner(echoProvider)
	questions := []string{"Q1"}

	interviews := runner.Run(context.Background(), []models.Persona{{ID: "p1"}}, questions)
	questions[0] = "mutated"

	assert.Equal(t, "Q1", interviews[0].Questions[0])
}
