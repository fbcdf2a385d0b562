package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/client"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/config"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/handler"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/service"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize document QA client; the model may still be loading,
	// requests get 503 until it responds to health checks.
	qaClient := client.NewLayoutLMClient(cfg.DocQAServiceURL, cfg.DocQATimeout)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := qaClient.Ping(ctx); err != nil {
		log.Printf("Warning: document QA model not reachable at startup: %v", err)
	} else {
		log.Println("Document QA model is available")
	}
	cancel()

	// Initialize Tesseract client for scanned-page OCR fallback
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize service layer
	renderer := service.NewPageRenderer(tesseractClient)
	extractor := service.NewFieldExtractor(qaClient, cfg.ConfidenceThreshold)
	generator := service.NewFormGenerator(cfg.UploadDir)
	taxService := service.NewTaxService(qaClient, renderer, extractor, generator, cfg.UploadDir)

	// Initialize handler layer
	taxHandler := handler.NewTaxHandler(taxService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = cfg.MaxFileSize

	// CORS for the Expo/React Native frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// API routes
	router.GET("/", taxHandler.Root)
	router.POST("/upload-tax-documents", taxHandler.UploadTaxDocuments)
	router.GET("/download-summary/:reference", taxHandler.DownloadSummary)

	// Start server
	log.Printf("Starting AI Tax Agent backend on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
