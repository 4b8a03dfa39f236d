package interview

import (
	"context"
	"fmt"
	"log"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentQuestions bounds in-flight provider calls per persona so a
// large question list doesn't trip provider rate limits.
const maxConcurrentQuestions = 4

// FixedRunner asks every persona the same fixed question list. Each
// (persona, question) call is independent: no conversational context is
// shared between questions.
type FixedRunner struct {
	provider llm.Provider
}

func NewFixedRunner(provider llm.Provider) *FixedRunner {
	return &FixedRunner{provider: provider}
}

// Run produces one FixedInterview per persona, in the given persona order.
// Answers align positionally with questions. A provider failure on a single
// question is substituted with a marked fallback answer instead of aborting
// the persona or the batch.
func (r *FixedRunner) Run(ctx context.Context, personas []models.Persona, questions []string) []models.FixedInterview {
	interviews := make([]models.FixedInterview, 0, len(personas))
	for _, persona := range personas {
		interviews = append(interviews, models.FixedInterview{
			PersonaID: persona.ID,
			Questions: append([]string(nil), questions...),
			Answers:   r.answersFor(ctx, persona, questions),
		})
	}
	return interviews
}

// answersFor queries the questions concurrently; each goroutine writes only
// its own slot, keeping answers positionally aligned regardless of
// completion order.
func (r *FixedRunner) answersFor(ctx context.Context, persona models.Persona, questions []string) []string {
	answers := make([]string, len(questions))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentQuestions)

	for i, question := range questions {
		i, question := i, question
		group.Go(func() error {
			answer, err := r.provider.Complete(ctx, personaContext(persona), "Question: "+question)
			if err != nil {
				log.Printf("WARN: fixed interview question failed for persona %s: %v", persona.ID, err)
				answer = fmt.Sprintf("(%s was unable to answer this question)", persona.Name)
			}
			answers[i] = answer
			return nil
		})
	}

	// Goroutines never return an error; failures become fallback answers.
	_ = group.Wait()
	return answers
}
