package app

import (
	"github.com/gridfall/progression/internal/infrastructure/lock"
	"github.com/gridfall/progression/internal/infrastructure/logger"
)

func (a *application) InitPlayerLockManager(log *logger.Logger) *lock.PlayerLockManager {
	return lock.NewPlayerLockManager(log)
}
