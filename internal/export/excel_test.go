package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fullState() *models.InterviewState {
	state := models.NewInterviewState()
	state.Requirements = &models.SurveyRequirements{
		ProductCategory: "snacks",
		TargetAgeRange:  "20s",
		TargetGender:    "female",
		SurveyPurpose:   "new product",
		KeyQuestions:    []string{"usage experience", "purchase drivers"},
	}
	state.Personas = []models.Persona{{
		ID: "p1", Name: "Mia Tanaka", Age: 27, Gender: "female",
		Occupation: "Nurse", HouseholdComposition: "Single",
		IncomeLevel: "$40k-60k", Lifestyle: "Health conscious",
		ShoppingBehavior: "Weekly grocery runs", Personality: "Curious",
		BackgroundStory: "Works night shifts.",
	}}
	state.Sessions = []*models.InterviewSession{{
		SessionID: "chat_p1_abc",
		PersonaID: "p1",
		StartTime: time.Now(),
		Turns: []models.ChatTurn{
			{Role: models.RoleUser, Content: "Hi", Timestamp: time.Now()},
			{Role: models.RoleAssistant, Content: "Hello!", Timestamp: time.Now()},
		},
	}}
	state.FixedInterviews = []models.FixedInterview{{
		PersonaID: "p1",
		Questions: []string{"Q1", "Q2"},
		Answers:   []string{"A1", "A2"},
	}}
	state.Summary = &models.InterviewSummary{
		TotalPersonas:   1,
		TotalInterviews: 2,
		KeyInsights:     []string{"insight one"},
		Recommendations: []string{"recommendation one"},
	}
	return state
}

func TestExportWritesAllSheets(t *testing.T) {
	dir := t.TempDir()
	sink := NewExcelSink(dir)

	filename, err := sink.Export(fullState())
	require.NoError(t, err)
	require.NotEmpty(t, filename)

	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{
		"Survey Requirements", "Personas", "Chat Interviews",
		"Fixed Interviews", "Summary", "Key Insights", "Recommendations",
	} {
		assert.Contains(t, sheets, want)
	}
	assert.NotContains(t, sheets, "Sheet1")
}

func TestExportPersonaSheetHasAllFields(t *testing.T) {
	dir := t.TempDir()
	sink := NewExcelSink(dir)

	filename, err := sink.Export(fullState())
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Personas")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"ID", "Name", "Age", "Gender", "Occupation", "Household composition",
		"Income level", "Lifestyle", "Shopping behavior", "Personality",
		"Background story",
	}, rows[0])
	assert.Equal(t, "p1", rows[1][0])
	assert.Equal(t, "Works night shifts.", rows[1][10])
}

func TestExportFixedSheetPreservesQuestionOrder(t *testing.T) {
	dir := t.TempDir()
	sink := NewExcelSink(dir)

	filename, err := sink.Export(fullState())
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Fixed Interviews")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Mia Tanaka", "1", "Q1", "A1"}, rows[1])
	assert.Equal(t, []string{"Mia Tanaka", "2", "Q2", "A2"}, rows[2])
}

func TestExportEmptyState(t *testing.T) {
	dir := t.TempDir()
	sink := NewExcelSink(dir)

	filename, err := sink.Export(models.NewInterviewState())
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	// Nothing to export leaves just the default sheet.
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}
