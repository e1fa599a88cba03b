package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	// This blank import is required by swaggo to find the API definitions.
	_ "paddy/docs"

	"paddy/internal/config"
)

// NewRouter creates and configures a chi router with all the application's routes.
func NewRouter(cfg *config.Config, chatHandler *ChatHandler, healthHandler *HealthHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Obsidian Copilot calls the API from inside the Obsidian app, so the
	// allow-list defaults to the app:// and capacitor:// origins it uses.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", healthHandler.HandleRoot)
	r.Get("/health", healthHandler.HandleHealth)
	r.Get("/docs/*", httpSwagger.WrapHandler)

	// The completions route deliberately has no timeout middleware: the
	// agent run holds the request open for as long as the provider takes.
	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat/completions", chatHandler.HandleChatCompletions)
	})

	return r
}
