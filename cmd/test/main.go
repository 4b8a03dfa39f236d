package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the interview server")
	testType := flag.String("test", "all", "Test type: all, health, questions, workflow")
	category := flag.String("category", "snack foods", "Product category for the workflow test")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("Virtual Interview System - Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests(*category)
	case "health":
		client.testHealthCheck()
	case "questions":
		client.testTemplateQuestions()
	case "workflow":
		client.testWorkflow(*category)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, questions, workflow")
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests(category string) {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Template Questions", tc.testTemplateQuestions},
		{"Interview Workflow", func() bool { return tc.testWorkflow(category) }},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testTemplateQuestions() bool {
	printTestHeader("Testing Template Questions Endpoint")

	url := fmt.Sprintf("%s/template-questions", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var payload struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if len(payload.Questions) != 5 {
		printError(fmt.Sprintf("Expected 5 template questions, got %d", len(payload.Questions)))
		return false
	}

	printSuccess("Template questions are valid")
	printJSON(body)
	return true
}

// testWorkflow drives the full pipeline: requirements, personas, one chat
// exchange, fixed interviews, summary, export.
func (tc *TestClient) testWorkflow(category string) bool {
	printTestHeader("Testing Interview Workflow")

	answers := []string{
		category,
		"20-30s",
		"female",
		"new product development",
		"focus on purchase drivers",
	}

	var reqResp struct {
		Requirements map[string]interface{} `json:"requirements"`
	}
	if !tc.post("/collect-requirements", map[string]interface{}{"answers": answers}, &reqResp) {
		return false
	}
	printSuccess("Requirements collected")

	var personasResp struct {
		Personas []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"personas"`
	}
	if !tc.post("/generate-personas", map[string]interface{}{"count": 3}, &personasResp) {
		return false
	}
	if len(personasResp.Personas) != 3 {
		printError(fmt.Sprintf("Expected 3 personas, got %d", len(personasResp.Personas)))
		return false
	}
	printSuccess(fmt.Sprintf("Generated %d personas", len(personasResp.Personas)))

	firstID := personasResp.Personas[0].ID

	var sessionResp struct {
		Session struct {
			SessionID string `json:"session_id"`
		} `json:"session"`
	}
	if !tc.post("/start-chat-session", map[string]interface{}{"persona_id": firstID}, &sessionResp) {
		return false
	}
	printSuccess(fmt.Sprintf("Started session %s", sessionResp.Session.SessionID))

	var chatResp struct {
		Response string `json:"response"`
	}
	if !tc.post("/send-chat-message", map[string]interface{}{
		"session_id": sessionResp.Session.SessionID,
		"message":    "How often do you buy products in this category?",
	}, &chatResp) {
		return false
	}
	printSuccess("Chat message exchanged")
	fmt.Printf("%sPersona said:%s %s\n", colorGreen, colorReset, truncate(chatResp.Response, 200))

	if !tc.post("/end-chat-session", map[string]interface{}{
		"session_id": sessionResp.Session.SessionID,
	}, nil) {
		return false
	}
	printSuccess("Chat session ended")

	ids := make([]string, 0, len(personasResp.Personas))
	for _, p := range personasResp.Personas {
		ids = append(ids, p.ID)
	}

	var fixedResp struct {
		Interviews []struct {
			Answers []string `json:"answers"`
		} `json:"interviews"`
	}
	if !tc.post("/conduct-fixed-interviews", map[string]interface{}{
		"persona_ids": ids,
		"questions":   []string{"What do you value most when choosing this product?", "What would make you switch brands?"},
	}, &fixedResp) {
		return false
	}
	if len(fixedResp.Interviews) != len(ids) {
		printError(fmt.Sprintf("Expected %d interviews, got %d", len(ids), len(fixedResp.Interviews)))
		return false
	}
	printSuccess(fmt.Sprintf("Conducted %d fixed interviews", len(fixedResp.Interviews)))

	var summaryResp struct {
		Summary struct {
			TotalPersonas   int      `json:"total_personas"`
			TotalInterviews int      `json:"total_interviews"`
			KeyInsights     []string `json:"key_insights"`
		} `json:"summary"`
		Charts map[string]string `json:"charts"`
	}
	if !tc.post("/generate-summary", map[string]interface{}{}, &summaryResp) {
		return false
	}
	printSuccess(fmt.Sprintf("Summary generated: %d personas, %d interviews, %d insight(s), %d chart(s)",
		summaryResp.Summary.TotalPersonas, summaryResp.Summary.TotalInterviews,
		len(summaryResp.Summary.KeyInsights), len(summaryResp.Charts)))

	var exportResp struct {
		FilePath string `json:"file_path"`
	}
	if !tc.post("/export-excel", map[string]interface{}{}, &exportResp) {
		return false
	}
	printSuccess(fmt.Sprintf("Exported workbook: %s", exportResp.FilePath))

	return true
}

func (tc *TestClient) post(path string, payload interface{}, out interface{}) bool {
	url := tc.baseURL + path
	fmt.Printf("POST %s\n", url)

	jsonData, _ := json.Marshal(payload)
	resp, err := tc.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			printError(fmt.Sprintf("Invalid JSON response: %v", err))
			return false
		}
	}

	return true
}

func truncate(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
