package player

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/lock"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlayerUseCase implements domain.PlayerUseCase. It is the gateway between
// external triggers (HTTP, transport messages) and the progression engine:
// load profile, apply engine, persist, map outcomes to typed errors.
type PlayerUseCase struct {
	playerRepo  domain.PlayerRepository
	outboxRepo  domain.OutboxRepository
	lockManager *lock.PlayerLockManager
	db          *gorm.DB
	logger      *logger.Logger
}

// NewPlayerUseCase creates a new player use case
func NewPlayerUseCase(
	playerRepo domain.PlayerRepository,
	outboxRepo domain.OutboxRepository,
	lockManager *lock.PlayerLockManager,
	db *gorm.DB,
	logger *logger.Logger,
) domain.PlayerUseCase {
	return &PlayerUseCase{
		playerRepo:  playerRepo,
		outboxRepo:  outboxRepo,
		lockManager: lockManager,
		db:          db,
		logger:      logger,
	}
}

// Login looks up a profile by username, creating one with default stats on
// first sight. Idempotent per username; a lost create race falls back to the
// winner's row via the store's unique index.
func (uc *PlayerUseCase) Login(username string) (*domain.Player, error) {
	if username == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Username is required", 400, nil)
	}

	player, err := uc.playerRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get player by username",
			zap.String("username", username), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player != nil {
		uc.logger.Debug("Existing player logged in",
			zap.Int64("playerID", player.ID), zap.String("username", username))
		return player, nil
	}

	player = domain.NewPlayer(username)
	if err := uc.playerRepo.Create(player); err != nil {
		// A concurrent login may have created the row first; the unique
		// index on username rejects ours, so take theirs.
		existing, lookupErr := uc.playerRepo.GetByUsername(username)
		if lookupErr == nil && existing != nil {
			uc.logger.Warn("Lost player create race, using existing profile",
				zap.String("username", username), zap.Int64("playerID", existing.ID))
			return existing, nil
		}
		uc.logger.Error("Failed to create player",
			zap.String("username", username), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player", 500, err)
	}

	uc.logger.Info("Created new player",
		zap.Int64("playerID", player.ID), zap.String("username", username))
	return player, nil
}

// GetProfile retrieves a player profile by ID
func (uc *PlayerUseCase) GetProfile(id int64) (*domain.Player, error) {
	return uc.getPlayer(id)
}

// getPlayer loads a player and maps a missing row to a typed not-found error
func (uc *PlayerUseCase) getPlayer(id int64) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get player from database",
			zap.Int64("playerID", id), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		uc.logger.Warn("Player not found", zap.Int64("playerID", id))
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// newEventID generates a unique outbox event id
func newEventID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
