package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/intellcap/association-api/cmd/app"
)

// @title           Association Platform API
// @description     REST API for the association's public website and admin backend.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
