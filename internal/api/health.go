package api

import (
	"net/http"

	"paddy/internal/config"
)

// HealthHandler serves the unauthenticated service-information endpoints.
type HealthHandler struct {
	appName string
	version string
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{appName: cfg.AppName, version: cfg.Version}
}

// HandleHealth godoc
// @Summary      Health check
// @Description  Basic liveness probe for container orchestration.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "paddy",
		Version: h.version,
	})
}

// HandleRoot godoc
// @Summary      API information
// @Description  Returns the application name, version, and docs location.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  RootResponse
// @Router       / [get]
func (h *HealthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, RootResponse{
		Message: h.appName,
		Version: h.version,
		Docs:    "/docs",
	})
}
