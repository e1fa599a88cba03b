package main

import (
	"os"

	"paddy/internal/app"
)

// @title        Paddy API
// @version      0.1.0
// @description  OpenAI-compatible chat completions backend for Obsidian Copilot.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	os.Exit(app.Run())
}
