package main

import (
	"context"
	"fmt"
	"os"

	"gemini-relay/config"
	configGemini "gemini-relay/config/gemini"
	_ "gemini-relay/docs" // Import swagger docs
	"gemini-relay/internal/httpserver"
	"gemini-relay/pkg/log"
	"gemini-relay/pkg/metrics"
)

// @title       Gemini Relay API
// @description Relays chat prompts, conversation history and inline images to Google Gemini generateContent.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads .env, relay-config.yaml and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	if cfg.Gemini.APIKey == "" {
		logger.Warnf(ctx, "GEMINI_API_KEY is not set; /api/generate will answer 500 until it is configured")
	}

	// 3. Initialize metrics
	m := metrics.New()

	// 4. Initialize Gemini client
	geminiClient, err := configGemini.Connect(cfg.Gemini)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Gemini client: %v", err)
	}
	logger.Infof(ctx, "Gemini client initialized for model %s at %s", cfg.Gemini.Model, cfg.Gemini.BaseURL)

	// 5. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Relay Configuration
		Config: cfg,
		Gemini: geminiClient,

		// Monitoring Configuration
		Metrics: m,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	if err := httpServer.Run(); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}
}
