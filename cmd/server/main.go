package main

import (
	"os"

	_ "portfolio-ai/backend/docs"
	"portfolio-ai/backend/internal/app"
)

// @title           Portfolio AI API
// @version         1.0
// @description     Chat assistant, accounts and site storage for the portfolio website.
// @host            localhost:8000
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
