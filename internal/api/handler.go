package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/export"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/interview"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/gin-gonic/gin"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler maps the REST surface onto the interview orchestrator.
type Handler struct {
	system *interview.System
	sink   *export.ExcelSink
}

func NewHandler(system *interview.System, sink *export.ExcelSink) *Handler {
	return &Handler{system: system, sink: sink}
}

// Register wires every endpoint onto the router.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/template-questions", h.TemplateQuestions)
	router.POST("/collect-requirements", h.CollectRequirements)
	router.POST("/generate-personas", h.GeneratePersonas)
	router.POST("/start-chat-session", h.StartChatSession)
	router.POST("/send-chat-message", h.SendChatMessage)
	router.POST("/end-chat-session", h.EndChatSession)
	router.POST("/conduct-fixed-interviews", h.ConductFixedInterviews)
	router.POST("/generate-summary", h.GenerateSummary)
	router.POST("/export-excel", h.ExportExcel)
	router.GET("/download-excel/:filename", h.DownloadExcel)
	router.GET("/get-personas", h.GetPersonas)
	router.GET("/get-chat-sessions", h.GetChatSessions)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Virtual Interview System API v2.0.0"})
}

func (h *Handler) TemplateQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, TemplateQuestionsResponse{Questions: interview.TemplateQuestions})
}

func (h *Handler) CollectRequirements(c *gin.Context) {
	var req CollectRequirementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ERROR: Invalid collect-requirements request: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	requirements, err := h.system.CollectRequirements(c.Request.Context(), req.Answers)
	if err != nil {
		h.sendError(c, "collect-requirements", err)
		return
	}

	c.JSON(http.StatusOK, RequirementsResponse{Requirements: requirements})
}

func (h *Handler) GeneratePersonas(c *gin.Context) {
	req := GeneratePersonasRequest{Count: 5}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("ERROR: Invalid generate-personas request: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Count <= 0 {
		req.Count = 5
	}

	personas, err := h.system.GeneratePersonas(c.Request.Context(), req.Count)
	if err != nil {
		h.sendError(c, "generate-personas", err)
		return
	}

	c.JSON(http.StatusOK, PersonasResponse{Personas: personas})
}

func (h *Handler) StartChatSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The original API also accepted the persona id as a query
		// parameter.
		req.PersonaID = c.Query("persona_id")
	}
	if req.PersonaID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "persona_id is required"})
		return
	}

	session, err := h.system.StartSession(req.PersonaID)
	if err != nil {
		h.sendError(c, "start-chat-session", err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Session: h.sessionView(*session, true)})
}

func (h *Handler) SendChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ERROR: Invalid send-chat-message request: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	response, err := h.system.SendMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		h.sendError(c, "send-chat-message", err)
		return
	}

	c.JSON(http.StatusOK, ChatMessageResponse{Response: response, SessionID: req.SessionID})
}

func (h *Handler) EndChatSession(c *gin.Context) {
	var req EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ERROR: Invalid end-chat-session request: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	session, err := h.system.EndSession(req.SessionID)
	if err != nil {
		h.sendError(c, "end-chat-session", err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Session: h.sessionView(*session, true)})
}

func (h *Handler) ConductFixedInterviews(c *gin.Context) {
	var req FixedInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ERROR: Invalid conduct-fixed-interviews request: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	interviews, err := h.system.RunFixedInterviews(c.Request.Context(), req.PersonaIDs, req.Questions)
	if err != nil {
		h.sendError(c, "conduct-fixed-interviews", err)
		return
	}

	views := make([]FixedInterviewView, 0, len(interviews))
	for _, iv := range interviews {
		views = append(views, FixedInterviewView{
			Persona:   h.personaSummary(iv.PersonaID, false),
			Questions: iv.Questions,
			Answers:   iv.Answers,
		})
	}

	c.JSON(http.StatusOK, FixedInterviewsResponse{Interviews: views})
}

func (h *Handler) GenerateSummary(c *gin.Context) {
	summary, err := h.system.GenerateSummary(c.Request.Context())
	if err != nil {
		h.sendError(c, "generate-summary", err)
		return
	}

	charts, err := export.DemographicsCharts(summary)
	if err != nil {
		log.Printf("WARN: Chart rendering incomplete: %v", err)
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: summary, Charts: charts})
}

func (h *Handler) ExportExcel(c *gin.Context) {
	filename, err := h.system.Export(h.sink)
	if err != nil {
		h.sendError(c, "export-excel", err)
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		FilePath: filename,
		Message:  "Excel file exported successfully",
	})
}

func (h *Handler) DownloadExcel(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.sink.Dir, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "file not found"})
		return
	}

	c.Header("Content-Type", excelContentType)
	c.FileAttachment(path, filename)
}

func (h *Handler) GetPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, PersonasResponse{Personas: h.system.Personas()})
}

func (h *Handler) GetChatSessions(c *gin.Context) {
	sessions := h.system.Sessions()
	views := make([]SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, h.sessionView(session, false))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": views})
}

func (h *Handler) sessionView(session models.InterviewSession, includeBackground bool) SessionView {
	view := SessionView{
		SessionID:    session.SessionID,
		Persona:      h.personaSummary(session.PersonaID, includeBackground),
		MessageCount: len(session.Turns),
		StartTime:    session.StartTime.Format("2006-01-02T15:04:05Z07:00"),
	}
	if session.EndTime != nil {
		formatted := session.EndTime.Format("2006-01-02T15:04:05Z07:00")
		view.EndTime = &formatted
	}
	return view
}

func (h *Handler) personaSummary(personaID string, includeBackground bool) PersonaSummary {
	for _, p := range h.system.Personas() {
		if p.ID != personaID {
			continue
		}
		summary := PersonaSummary{
			ID:         p.ID,
			Name:       p.Name,
			Age:        p.Age,
			Gender:     p.Gender,
			Occupation: p.Occupation,
		}
		if includeBackground {
			summary.BackgroundStory = p.BackgroundStory
		}
		return summary
	}
	return PersonaSummary{ID: personaID}
}

func (h *Handler) sendError(c *gin.Context, operation string, err error) {
	log.Printf("ERROR: %s failed: %v", operation, err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, interview.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, interview.ErrPreconditionFailed):
		status = http.StatusBadRequest
	case errors.Is(err, interview.ErrUpstreamFailure):
		status = http.StatusBadGateway
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}
