package app

import (
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"github.com/gridfall/progression/internal/transport"
)

func (a *application) InitTransportHandler(uc domain.PlayerUseCase, log *logger.Logger) *transport.Handler {
	return transport.NewHandler(uc, log)
}
