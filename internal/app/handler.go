package app

import (
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/http/handlers"
	"github.com/gridfall/progression/internal/infrastructure/logger"
)

func (a *application) InitProgressionHandler(uc domain.PlayerUseCase, log *logger.Logger) *handlers.ProgressionHandler {
	return handlers.NewProgressionHandler(uc, log)
}
