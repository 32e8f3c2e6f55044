package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"epms/internal/app/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}
	server.Run()
}
