package main

import (
	"log"
	"os"
	"strconv"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/api"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/export"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/interview"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	modelName := os.Getenv("GEMINI_MODEL")
	temperature := float32(0.7)
	if raw := os.Getenv("GEMINI_TEMPERATURE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			log.Fatalf("Invalid GEMINI_TEMPERATURE %q: %v", raw, err)
		}
		temperature = float32(parsed)
	}

	// Initialize Gemini client
	geminiClient, err := llm.NewGeminiClient(apiKey, modelName, temperature)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()

	system := interview.NewSystem(geminiClient)
	sink := export.NewExcelSink(os.Getenv("EXPORT_DIR"))
	handler := api.NewHandler(system, sink)

	router := gin.Default()
	router.Use(cors.Default())
	handler.Register(router)

	// server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Virtual Interview System starting on port %s", port)
	log.Printf("Template questions available at: http://localhost:%s/template-questions", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
