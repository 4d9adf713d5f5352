package main

import (
	"github.com/joho/godotenv"

	"github.com/mcoot/hangmanbot/internal/cli"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	cli.Execute()
}
