package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/sponsorapp/sponsor-api/cmd/app"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by /auth/login or /auth/passcode
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
