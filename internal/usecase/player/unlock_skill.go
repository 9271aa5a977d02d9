package player

import (
	"context"

	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/progression"
	"go.uber.org/zap"
)

// UnlockSkill unlocks skillID for unitType on the player's profile and spends
// one skill point, persisting once the whole sequence succeeds. Both business
// preconditions are checked against the state read at the start of the call,
// under the per-player lock.
func (uc *PlayerUseCase) UnlockSkill(id int64, unitType, skillID string) (*domain.Player, error) {
	if unitType == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Unit type is required", 400, nil)
	}
	if skillID == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Skill id is required", 400, nil)
	}

	if err := uc.lockManager.Lock(context.Background(), id); err != nil {
		return nil, domain.NewInternalError("Failed to acquire player lock", err)
	}
	defer uc.lockManager.Unlock(id)

	player, err := uc.getPlayer(id)
	if err != nil {
		return nil, err
	}

	if player.UnlockedSkills.Contains(unitType, skillID) {
		uc.logger.Warn("Skill already unlocked",
			zap.Int64("playerID", id),
			zap.String("unitType", unitType),
			zap.String("skillID", skillID))
		return nil, domain.NewAppError(domain.ErrCodeSkillAlreadyUnlocked, "Skill already unlocked", 400, nil)
	}

	if player.SkillPoints <= 0 {
		uc.logger.Warn("Not enough skill points",
			zap.Int64("playerID", id),
			zap.String("unitType", unitType),
			zap.String("skillID", skillID))
		return nil, domain.NewAppError(domain.ErrCodeInsufficientSkillPoints, "Not enough skill points", 400, nil)
	}

	progression.UnlockSkill(player, unitType, skillID)
	if !progression.SpendSkillPoint(player) {
		// Unreachable given the precondition check above.
		return nil, domain.NewInternalError("Skill point spend failed after precondition check", nil)
	}

	if err := uc.playerRepo.Update(player); err != nil {
		uc.logger.Error("Failed to persist skill unlock",
			zap.Int64("playerID", id), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err)
	}

	uc.logger.Info("Skill unlocked",
		zap.Int64("playerID", id),
		zap.String("unitType", unitType),
		zap.String("skillID", skillID),
		zap.Int("skillPointsLeft", player.SkillPoints))
	return player, nil
}
