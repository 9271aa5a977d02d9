package player

import (
	"context"

	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/progression"
	"go.uber.org/zap"
)

// ReportGameResult applies a win or loss to the player's profile and persists
// the updated state. The per-player lock serializes concurrent reports for the
// same id so neither clobbers the other's write.
func (uc *PlayerUseCase) ReportGameResult(id int64, outcome domain.GameOutcome) (*domain.Player, error) {
	if !outcome.Valid() {
		uc.logger.Warn("Rejected game result with invalid outcome",
			zap.Int64("playerID", id), zap.String("outcome", string(outcome)))
		return nil, domain.NewAppError(domain.ErrCodeInvalidResult, "Result must be 'win' or 'loss'", 400, nil)
	}

	if err := uc.lockManager.Lock(context.Background(), id); err != nil {
		return nil, domain.NewInternalError("Failed to acquire player lock", err)
	}
	defer uc.lockManager.Unlock(id)

	player, err := uc.getPlayer(id)
	if err != nil {
		return nil, err
	}

	if err := uc.applyOutcome(player, outcome); err != nil {
		return nil, err
	}

	return player, nil
}

// ApplyGameResultByIDs records a win for winnerID and a loss for loserID. The
// two updates are independent: an unknown id is logged and skipped, and a
// failure on one side never prevents the other from being applied. This path
// serves the live game feed and prioritizes availability.
func (uc *PlayerUseCase) ApplyGameResultByIDs(winnerID, loserID int64) {
	uc.applyOutcomeByID(winnerID, domain.GameOutcomeWin)
	uc.applyOutcomeByID(loserID, domain.GameOutcomeLoss)
}

func (uc *PlayerUseCase) applyOutcomeByID(id int64, outcome domain.GameOutcome) {
	if err := uc.lockManager.Lock(context.Background(), id); err != nil {
		uc.logger.Error("Skipping game result, could not acquire player lock",
			zap.Int64("playerID", id), zap.Error(err))
		return
	}
	defer uc.lockManager.Unlock(id)

	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Skipping game result, player lookup failed",
			zap.Int64("playerID", id), zap.Error(err))
		return
	}
	if player == nil {
		uc.logger.Warn("Skipping game result for unknown player", zap.Int64("playerID", id))
		return
	}

	if err := uc.applyOutcome(player, outcome); err != nil {
		uc.logger.Error("Failed to apply game result",
			zap.Int64("playerID", id), zap.String("outcome", string(outcome)), zap.Error(err))
	}
}

// applyOutcome runs the engine on an already-loaded profile and persists the
// result. Level-ups additionally enqueue a level_up outbox event in the same
// database transaction as the profile save.
func (uc *PlayerUseCase) applyOutcome(player *domain.Player, outcome domain.GameOutcome) error {
	var levelsGained int
	if outcome == domain.GameOutcomeWin {
		levelsGained = progression.RecordWin(player)
	} else {
		levelsGained = progression.RecordLoss(player)
	}

	if levelsGained == 0 {
		if err := uc.playerRepo.Update(player); err != nil {
			uc.logger.Error("Failed to persist game result",
				zap.Int64("playerID", player.ID), zap.Error(err))
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err)
		}
		return nil
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	if err := uc.playerRepo.WithTransaction(tx).Update(player); err != nil {
		tx.Rollback()
		uc.logger.Error("Failed to persist game result",
			zap.Int64("playerID", player.ID), zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err)
	}

	event := domain.NewLevelUpEvent(newEventID(), player, levelsGained)
	if err := uc.outboxRepo.WithTransaction(tx).Save(event); err != nil {
		tx.Rollback()
		uc.logger.Error("Failed to enqueue level_up event",
			zap.Int64("playerID", player.ID), zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to enqueue level_up event", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Player leveled up",
		zap.Int64("playerID", player.ID),
		zap.Int("level", player.Level),
		zap.Int("levelsGained", levelsGained))
	return nil
}
