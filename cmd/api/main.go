package main

import (
	"os"

	"github.com/stapro/nfc-attendance/internal/pkg/logger"
)

// @title NFC Attendance API
// @version 1.0
// @description Attendance backend for NFC card terminals, synced with the staffing system

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
