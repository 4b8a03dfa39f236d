package api

import "github.com/BerylCAtieno/virtual-interview-agent/internal/models"

// Request models
type CollectRequirementsRequest struct {
	Answers []string `json:"answers"`
}

type GeneratePersonasRequest struct {
	Count int `json:"count"`
}

type StartSessionRequest struct {
	PersonaID string `json:"persona_id"`
}

type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type EndSessionRequest struct {
	SessionID string `json:"session_id"`
}

type FixedInterviewRequest struct {
	PersonaIDs []string `json:"persona_ids"`
	Questions  []string `json:"questions"`
}

// Response models
type RequirementsResponse struct {
	Requirements *models.SurveyRequirements `json:"requirements"`
}

type PersonasResponse struct {
	Personas []models.Persona `json:"personas"`
}

type SessionResponse struct {
	Session SessionView `json:"session"`
}

// SessionView is the session projection returned on session start and in
// listings: persona summary plus timing, without the full turn log.
type SessionView struct {
	SessionID    string         `json:"session_id"`
	Persona      PersonaSummary `json:"persona"`
	MessageCount int            `json:"message_count"`
	StartTime    string         `json:"start_time"`
	EndTime      *string        `json:"end_time,omitempty"`
}

type PersonaSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Occupation      string `json:"occupation"`
	BackgroundStory string `json:"background_story,omitempty"`
}

type ChatMessageResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type FixedInterviewsResponse struct {
	Interviews []FixedInterviewView `json:"interviews"`
}

type FixedInterviewView struct {
	Persona   PersonaSummary `json:"persona"`
	Questions []string       `json:"questions"`
	Answers   []string       `json:"answers"`
}

type SummaryResponse struct {
	Summary *models.InterviewSummary `json:"summary"`
	Charts  map[string]string        `json:"charts"`
}

type ExportResponse struct {
	FilePath string `json:"file_path"`
	Message  string `json:"message"`
}

type TemplateQuestionsResponse struct {
	Questions []string `json:"questions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
