package app

import (
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.PlayerRepository, domain.OutboxRepository) {
	return repository.NewPlayerRepository(db), repository.NewOutboxRepository(db)
}
