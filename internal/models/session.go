package models

import "time"

// Chat turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in an interview session. Turns are immutable once
// appended and strictly ordered within their session.
type ChatTurn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// InterviewSession is an open-ended, multi-turn conversation with a single
// persona. A session is active from creation; EndTime is set at most once.
type InterviewSession struct {
	SessionID string     `json:"session_id"`
	PersonaID string     `json:"persona_id"`
	Turns     []ChatTurn `json:"turns"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}
