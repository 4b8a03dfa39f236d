package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/google/uuid"
)

// ChatManager runs open-ended interview sessions: one conversation per
// (persona, session), one provider round-trip per turn exchange.
type ChatManager struct {
	provider llm.Provider
}

func NewChatManager(provider llm.Provider) *ChatManager {
	return &ChatManager{provider: provider}
}

// CreateSession starts a fresh, active session for the persona with zero
// turns.
func (m *ChatManager) CreateSession(persona models.Persona) *models.InterviewSession {
	return &models.InterviewSession{
		SessionID: fmt.Sprintf("chat_%s_%s", persona.ID, uuid.New().String()[:8]),
		PersonaID: persona.ID,
		StartTime: time.Now(),
	}
}

// Exchange sends one user message in the persona's voice and, on success,
// appends the user turn followed by the assistant turn to the session.
// Provider failures propagate; the session is left untouched in that case.
func (m *ChatManager) Exchange(ctx context.Context, session *models.InterviewSession, persona models.Persona, userMessage string) (string, error) {
	response, err := m.provider.Complete(ctx, personaContext(persona), userMessage)
	if err != nil {
		return "", upstreamErr("send message", session.SessionID, err)
	}

	now := time.Now()
	session.Turns = append(session.Turns,
		models.ChatTurn{Role: models.RoleUser, Content: userMessage, Timestamp: now},
		models.ChatTurn{Role: models.RoleAssistant, Content: response, Timestamp: now},
	)

	return response, nil
}

// EndSession marks the session finished. The end time is set at most once.
func (m *ChatManager) EndSession(session *models.InterviewSession) {
	if session.EndTime == nil {
		now := time.Now()
		session.EndTime = &now
	}
}

// personaContext embeds the persona's full attribute set as a behavioral
// constraint for the model.
func personaContext(p models.Persona) string {
	return fmt.Sprintf(`Answer as the following persona:

Name: %s
Age: %d
Gender: %s
Occupation: %s
Household composition: %s
Income level: %s
Lifestyle: %s
Shopping behavior: %s
Personality: %s
Background story: %s

Answer naturally from this persona's point of view, reflecting their
personality and background.`,
		p.Name, p.Age, p.Gender, p.Occupation, p.HouseholdComposition,
		p.IncomeLevel, p.Lifestyle, p.ShoppingBehavior, p.Personality,
		p.BackgroundStory)
}
