package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"paddy/internal/agent"
	"paddy/internal/api"
	"paddy/internal/config"
	"paddy/internal/llm"
	"paddy/internal/service"
)

// Run wires the application together and serves HTTP until the process is
// stopped. It returns a process exit code so main stays a one-liner.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	slog.Info("Starting application",
		"app_name", cfg.AppName,
		"version", cfg.Version,
		"environment", cfg.Environment,
		"model", cfg.ModelName(),
	)
	slog.Info("Vault configuration validated", "vault_path", cfg.ObsidianVaultPath)

	// Tool registration is explicit: the whole capability table is built
	// here and handed to the agent runtime.
	tools := agent.DefaultTools()
	vaultAgent := llm.NewOpenAIAgent(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.SystemPrompt, tools)

	chatService := service.NewChatService(vaultAgent, cfg.ObsidianVaultPath)

	chatHandler := api.NewChatHandler(chatService, cfg)
	healthHandler := api.NewHealthHandler(cfg)
	router := api.NewRouter(cfg, chatHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Agent runs may hold the connection open for a long time.
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
