package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExcelSink writes a full interview run into an .xlsx workbook, one sheet
// per record family. Sheets for data the run doesn't have yet are omitted.
type ExcelSink struct {
	// Dir is where workbooks are written. Created on first export.
	Dir string
}

func NewExcelSink(dir string) *ExcelSink {
	if dir == "" {
		dir = "output"
	}
	return &ExcelSink{Dir: dir}
}

// Export writes the workbook and returns its file name (relative to Dir).
func (e *ExcelSink) Export(state *models.InterviewState) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	wrote := false
	if state.Requirements != nil {
		if err := writeRequirementsSheet(f, state.Requirements); err != nil {
			return "", err
		}
		wrote = true
	}
	if len(state.Personas) > 0 {
		if err := writePersonaSheet(f, state.Personas); err != nil {
			return "", err
		}
		wrote = true
	}
	if len(state.Sessions) > 0 {
		if err := writeChatSheet(f, state); err != nil {
			return "", err
		}
		wrote = true
	}
	if len(state.FixedInterviews) > 0 {
		if err := writeFixedSheet(f, state); err != nil {
			return "", err
		}
		wrote = true
	}
	if state.Summary != nil {
		if err := writeSummarySheets(f, state.Summary); err != nil {
			return "", err
		}
		wrote = true
	}

	if wrote {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return "", err
		}
	}

	filename := fmt.Sprintf("virtual_interview_results_%s.xlsx", time.Now().Format("20060102_150405"))
	if err := f.SaveAs(filepath.Join(e.Dir, filename)); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return filename, nil
}

func writeRequirementsSheet(f *excelize.File, req *models.SurveyRequirements) error {
	const sheet = "Survey Requirements"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Item", "Value"},
		{"Product category", req.ProductCategory},
		{"Target age range", req.TargetAgeRange},
		{"Target gender", req.TargetGender},
		{"Survey purpose", req.SurveyPurpose},
		{"Additional requirements", req.AdditionalRequirements},
	}
	for _, q := range req.KeyQuestions {
		rows = append(rows, []any{"Key question", q})
	}
	return writeRows(f, sheet, rows)
}

func writePersonaSheet(f *excelize.File, personas []models.Persona) error {
	const sheet = "Personas"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{{
		"ID", "Name", "Age", "Gender", "Occupation", "Household composition",
		"Income level", "Lifestyle", "Shopping behavior", "Personality",
		"Background story",
	}}
	for _, p := range personas {
		rows = append(rows, []any{
			p.ID, p.Name, p.Age, p.Gender, p.Occupation,
			p.HouseholdComposition, p.IncomeLevel, p.Lifestyle,
			p.ShoppingBehavior, p.Personality, p.BackgroundStory,
		})
	}
	return writeRows(f, sheet, rows)
}

func writeChatSheet(f *excelize.File, state *models.InterviewState) error {
	const sheet = "Chat Interviews"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{{"Session ID", "Persona", "Role", "Message", "Timestamp"}}
	for _, session := range state.Sessions {
		name := personaName(state, session.PersonaID)
		for _, turn := range session.Turns {
			rows = append(rows, []any{
				session.SessionID, name, turn.Role, turn.Content,
				turn.Timestamp.Format("2006-01-02 15:04:05"),
			})
		}
	}
	return writeRows(f, sheet, rows)
}

func writeFixedSheet(f *excelize.File, state *models.InterviewState) error {
	const sheet = "Fixed Interviews"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{{"Persona", "Question #", "Question", "Answer"}}
	for _, iv := range state.FixedInterviews {
		name := personaName(state, iv.PersonaID)
		for i, question := range iv.Questions {
			answer := ""
			if i < len(iv.Answers) {
				answer = iv.Answers[i]
			}
			rows = append(rows, []any{name, i + 1, question, answer})
		}
	}
	return writeRows(f, sheet, rows)
}

func writeSummarySheets(f *excelize.File, summary *models.InterviewSummary) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]any{
		{"Item", "Count"},
		{"Total personas", summary.TotalPersonas},
		{"Total interviews", summary.TotalInterviews},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet("Key Insights"); err != nil {
		return err
	}
	insightRows := [][]any{{"Insight"}}
	for _, insight := range summary.KeyInsights {
		insightRows = append(insightRows, []any{insight})
	}
	if err := writeRows(f, "Key Insights", insightRows); err != nil {
		return err
	}

	if _, err := f.NewSheet("Recommendations"); err != nil {
		return err
	}
	recRows := [][]any{{"Recommendation"}}
	for _, rec := range summary.Recommendations {
		recRows = append(recRows, []any{rec})
	}
	return writeRows(f, "Recommendations", recRows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func personaName(state *models.InterviewState, id string) string {
	if p, ok := state.PersonaByID(id); ok {
		return p.Name
	}
	return id
}
