package interview

import (
	"context"
	"log"
	"sync"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
)

// Sink receives the full run state for persistence or export. Spreadsheet
// and chart mechanics live behind this interface, outside the core.
type Sink interface {
	Export(state *models.InterviewState) (string, error)
}

// System is the orchestration facade over the whole interview workflow:
// requirements, personas, chat sessions, fixed interviews, summary, export.
// It owns the run state exclusively and serializes all mutation.
type System struct {
	mu sync.Mutex

	collector *RequirementsCollector
	generator *PersonaGenerator
	chat      *ChatManager
	fixed     *FixedRunner
	analyzer  *Analyzer

	state *models.InterviewState
}

func NewSystem(provider llm.Provider) *System {
	return &System{
		collector: NewRequirementsCollector(provider),
		generator: NewPersonaGenerator(provider),
		chat:      NewChatManager(provider),
		fixed:     NewFixedRunner(provider),
		analyzer:  NewAnalyzer(provider),
		state:     models.NewInterviewState(),
	}
}

// CollectRequirements parses the five intake answers into the run's survey
// requirements.
func (s *System) CollectRequirements(ctx context.Context, answers []string) (*models.SurveyRequirements, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.collector.Parse(ctx, answers)
	if err != nil {
		return nil, err
	}

	s.state.Requirements = req
	log.Printf("Collected survey requirements for category %q", req.ProductCategory)
	return req, nil
}

// GeneratePersonas adds count personas to the panel. Requirements must have
// been collected first.
func (s *System) GeneratePersonas(ctx context.Context, count int) ([]models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Requirements == nil {
		return nil, preconditionErr("generate personas", "survey requirements not set")
	}

	existing := make(map[string]bool, len(s.state.Personas))
	for _, p := range s.state.Personas {
		existing[p.ID] = true
	}

	personas, err := s.generator.Generate(ctx, s.state.Requirements, count, existing)
	if err != nil {
		return nil, err
	}

	s.state.Personas = append(s.state.Personas, personas...)
	log.Printf("Generated %d persona(s), panel now has %d", len(personas), len(s.state.Personas))
	return personas, nil
}

// StartSession opens a chat session with one persona.
func (s *System) StartSession(personaID string) (*models.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Personas) == 0 {
		return nil, preconditionErr("start session", "no personas generated")
	}

	persona, ok := s.state.PersonaByID(personaID)
	if !ok {
		return nil, notFoundErr("start session", "persona", personaID)
	}

	session := s.chat.CreateSession(persona)
	s.state.Sessions = append(s.state.Sessions, session)
	log.Printf("Started session %s with persona %s", session.SessionID, personaID)
	return session, nil
}

// SendMessage delivers one user message into a session and returns the
// persona's reply. On success the session gains exactly two turns, user
// first.
func (s *System) SendMessage(ctx context.Context, sessionID, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.state.SessionByID(sessionID)
	if !ok {
		return "", notFoundErr("send message", "session", sessionID)
	}

	persona, ok := s.state.PersonaByID(session.PersonaID)
	if !ok {
		return "", notFoundErr("send message", "persona", session.PersonaID)
	}

	return s.chat.Exchange(ctx, session, persona, message)
}

// EndSession closes a chat session, stamping its end time. Ended sessions
// keep their transcript and still count toward the summary.
func (s *System) EndSession(sessionID string) (*models.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.state.SessionByID(sessionID)
	if !ok {
		return nil, notFoundErr("end session", "session", sessionID)
	}

	s.chat.EndSession(session)
	log.Printf("Ended session %s", sessionID)
	return session, nil
}

// RunFixedInterviews interviews the selected personas with a fixed question
// list. Unmatched ids are excluded, not errored; output order follows the
// requested id order.
func (s *System) RunFixedInterviews(ctx context.Context, personaIDs, questions []string) ([]models.FixedInterview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Personas) == 0 {
		return nil, preconditionErr("run fixed interviews", "no personas generated")
	}

	selected := make([]models.Persona, 0, len(personaIDs))
	for _, id := range personaIDs {
		if persona, ok := s.state.PersonaByID(id); ok {
			selected = append(selected, persona)
		} else {
			log.Printf("WARN: fixed interview skipping unknown persona %q", id)
		}
	}

	interviews := s.fixed.Run(ctx, selected, questions)
	s.state.FixedInterviews = append(s.state.FixedInterviews, interviews...)
	return interviews, nil
}

// GenerateSummary rebuilds the run summary from the full accumulated state,
// replacing any previous one wholesale.
func (s *System) GenerateSummary(ctx context.Context) (*models.InterviewSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.analyzer.GenerateSummary(ctx, s.state)
	if err != nil {
		return nil, err
	}

	s.state.Summary = summary
	log.Printf("Generated summary: %d persona(s), %d interview(s)", summary.TotalPersonas, summary.TotalInterviews)
	return summary, nil
}

// Export hands the current state to the sink and returns whatever locator
// the sink produced (typically a file path).
func (s *System) Export(sink Sink) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sink.Export(s.state)
}

// Requirements returns the collected requirements, or nil.
func (s *System) Requirements() *models.SurveyRequirements {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Requirements
}

// Personas returns a snapshot of the persona panel.
func (s *System) Personas() []models.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Persona(nil), s.state.Personas...)
}

// Sessions returns a snapshot of the chat sessions, turns included.
func (s *System) Sessions() []models.InterviewSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]models.InterviewSession, 0, len(s.state.Sessions))
	for _, sess := range s.state.Sessions {
		copied := *sess
		copied.Turns = append([]models.ChatTurn(nil), sess.Turns...)
		sessions = append(sessions, copied)
	}
	return sessions
}

// Summary returns the current summary, or nil if none has been generated.
func (s *System) Summary() *models.InterviewSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Summary
}
