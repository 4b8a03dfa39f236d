package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPersona = models.Persona{
	ID:         "persona_1",
	Name:       "Mia Tanaka",
	Age:        27,
	Gender:     "female",
	Occupation: "Nurse",
}

func TestCreateSessionStartsEmpty(t *testing.T) {
	manager := NewChatManager(&stubProvider{})

	session := manager.CreateSession(testPersona)
	assert.True(t, strings.HasPrefix(session.SessionID, "chat_persona_1_"), "session id %s", session.SessionID)
	assert.Equal(t, "persona_1", session.PersonaID)
	assert.Empty(t, session.Turns)
	assert.Nil(t, session.EndTime)
	assert.False(t, session.StartTime.IsZero())
}

func TestCreateSessionIDsAreUnique(t *testing.T) {
	manager := NewChatManager(&stubProvider{})

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		session := manager.CreateSession(testPersona)
		assert.False(t, seen[session.SessionID])
		seen[session.SessionID] = true
	}
}

func TestExchangeAppendsTurnPairs(t *testing.T) {
	provider := &stubProvider{fallback: "I buy snacks every week."}
	manager := NewChatManager(provider)
	session := manager.CreateSession(testPersona)

	for i := 1; i <= 3; i++ {
		message := fmt.Sprintf("question %d", i)
		reply, err := manager.Exchange(context.Background(), session, testPersona, message)
		require.NoError(t, err)
		assert.Equal(t, "I buy snacks every week.", reply)

		require.Len(t, session.Turns, 2*i)
		userTurn := session.Turns[2*i-2]
		assistantTurn := session.Turns[2*i-1]
		assert.Equal(t, models.RoleUser, userTurn.Role)
		assert.Equal(t, message, userTurn.Content)
		assert.Equal(t, models.RoleAssistant, assistantTurn.Role)
	}
}

func TestExchangeProviderFailureLeavesSessionUntouched(t *testing.T) {
	manager := NewChatManager(&stubProvider{err: errors.New("timeout")})
	session := manager.CreateSession(testPersona)

	_, err := manager.Exchange(context.Background(), session, testPersona, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
	assert.Contains(t, err.Error(), session.SessionID)
	assert.Empty(t, session.Turns)
}

func TestEndSessionSetsEndTimeOnce(t *testing.T) {
	manager := NewChatManager(&stubProvider{})
	session := manager.CreateSession(testPersona)

	manager.EndSession(session)
	require.NotNil(t, session.EndTime)
	first := *session.EndTime

	manager.EndSession(session)
	assert.Equal(t, first, *session.EndTime)
}

func TestPersonaContextEmbedsAllAttributes(t *testing.T) {
	p := models.Persona{
		ID: "p", Name: "Kenji Sato", Age: 34, Gender: "male",
		Occupation: "Engineer", HouseholdComposition: "Married, one child",
		IncomeLevel: "$70k-90k", Lifestyle: "Busy",
		ShoppingBehavior: "Buys online in bulk", Personality: "Practical",
		BackgroundStory: "Rarely shops in person.",
	}

	ctx := personaContext(p)
	for _, want := range []string{
		"Kenji Sato", "34", "male", "Engineer", "Married, one child",
		"$70k-90k", "Busy", "Buys online in bulk", "Practical",
		"Rarely shops in person.",
	} {
		assert.Contains(t, ctx, want)
	}
}
