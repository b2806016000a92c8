package main

import (
	"os"

	"github.com/esathi/engineersathi/internal/pkg/logger"
	"github.com/esathi/engineersathi/internal/server"
)

// @title Engineer Sathi API
// @version 1.0
// @description Backend API for the Engineer Sathi study notes platform

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for the admin API

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
