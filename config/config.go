package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort          string
	DocQAServiceURL     string
	DocQATimeout        time.Duration
	ConfidenceThreshold float64
	TesseractDataPath   string
	UploadDir           string
	AllowedOrigins      []string
	MaxFileSize         int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8000"
	}

	docQAURL := os.Getenv("DOC_QA_SERVICE_URL")
	if docQAURL == "" {
		docQAURL = "http://localhost:8501"
	}

	// Provisional calibration; most answers pass at 0.1, so keep it
	// tunable without a rebuild.
	threshold := 0.1
	if v := os.Getenv("CONFIDENCE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			threshold = parsed
		}
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "temp_uploads"
	}

	origins := []string{"http://localhost:8081", "http://127.0.0.1:8081", "http://localhost:19006"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = splitCSV(v)
	}

	return &Config{
		ServerPort:          serverPort,
		DocQAServiceURL:     docQAURL,
		DocQATimeout:        60 * time.Second,
		ConfidenceThreshold: threshold,
		TesseractDataPath:   tesseractDataPath,
		UploadDir:           uploadDir,
		AllowedOrigins:      origins,
		MaxFileSize:         32 * 1024 * 1024, // 32 MB
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
