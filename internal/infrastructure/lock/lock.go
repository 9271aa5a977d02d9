package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gridfall/progression/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PlayerLockManager serializes in-process read-modify-write cycles per player
// id. Two concurrent updates for the same player are applied one after the
// other instead of clobbering each other's store write.
type PlayerLockManager struct {
	locks  sync.Map // map[int64]*sync.Mutex
	logger *logger.Logger
}

// NewPlayerLockManager creates a new lock manager
func NewPlayerLockManager(log *logger.Logger) *PlayerLockManager {
	return &PlayerLockManager{
		logger: log,
	}
}

// Lock acquires the lock for the given playerID with timeout
func (m *PlayerLockManager) Lock(ctx context.Context, playerID int64) error {
	mu := m.getOrCreateMutex(playerID)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		return nil
	case <-ctx.Done():
		m.logger.Error("Failed to acquire player lock: context cancelled",
			zap.Int64("playerID", playerID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for player %d: %w", playerID, ctx.Err())
	case <-time.After(5 * time.Second):
		m.logger.Error("Failed to acquire player lock: timeout",
			zap.Int64("playerID", playerID))
		return fmt.Errorf("failed to acquire lock for player %d: timeout", playerID)
	}
}

// Unlock releases the lock for the given playerID
func (m *PlayerLockManager) Unlock(playerID int64) {
	muInterface, ok := m.locks.Load(playerID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("playerID", playerID))
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

// TryLock attempts to acquire the lock without blocking
func (m *PlayerLockManager) TryLock(playerID int64) bool {
	return m.getOrCreateMutex(playerID).TryLock()
}

func (m *PlayerLockManager) getOrCreateMutex(playerID int64) *sync.Mutex {
	mu, ok := m.locks.Load(playerID)
	if ok {
		return mu.(*sync.Mutex)
	}

	actual, _ := m.locks.LoadOrStore(playerID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
