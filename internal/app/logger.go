package app

import (
	"github.com/gridfall/progression/internal/config"
	"github.com/gridfall/progression/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
