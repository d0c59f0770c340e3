package main

import (
	"github.com/joho/godotenv"

	"github.com/mquinn/rpsduel-go/internal/cli"
)

func main() {
	// Optional .env for RPSDUEL_* settings; absence is fine
	_ = godotenv.Load()

	cli.Execute()
}
