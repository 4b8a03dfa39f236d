package models

// InterviewState is the aggregate for one workflow run: the requirements,
// every persona generated so far, every session and fixed interview, and the
// current summary. Persona, session and interview collections are
// append-only. All mutation funnels through the orchestrator.
type InterviewState struct {
	Requirements    *SurveyRequirements `json:"survey_requirements,omitempty"`
	Personas        []Persona           `json:"personas"`
	Sessions        []*InterviewSession `json:"chat_sessions"`
	FixedInterviews []FixedInterview    `json:"fixed_interviews"`
	Summary         *InterviewSummary   `json:"summary,omitempty"`
}

// NewInterviewState returns an empty aggregate.
func NewInterviewState() *InterviewState {
	return &InterviewState{}
}

// PersonaByID returns the persona with the given id, or false if none
// matches.
func (s *InterviewState) PersonaByID(id string) (Persona, bool) {
	for _, p := range s.Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// SessionByID returns the session with the given id, or false if none
// matches.
func (s *InterviewState) SessionByID(id string) (*InterviewSession, bool) {
	for _, sess := range s.Sessions {
		if sess.SessionID == id {
			return sess, true
		}
	}
	return nil, false
}
