package app

import (
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/lock"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"github.com/gridfall/progression/internal/usecase/player"
	"gorm.io/gorm"
)

func (a *application) InitPlayerUseCase(
	playerRepo domain.PlayerRepository,
	outboxRepo domain.OutboxRepository,
	lockManager *lock.PlayerLockManager,
	db *gorm.DB,
	log *logger.Logger,
) domain.PlayerUseCase {
	return player.NewPlayerUseCase(playerRepo, outboxRepo, lockManager, db, log)
}
