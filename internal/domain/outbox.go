package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// JSONB is a type for handle JSONB field that GORM can automatically marshal/unmarshal JSONB fields.
type JSONB map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

// Value implements the driver.Valuer interface
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Outbox event lifecycle states
const (
	EventStatusPending   = "PENDING"
	EventStatusProcessed = "PROCESSED"
	EventStatusFailed    = "FAILED"
)

// EventTypeLevelUp is emitted when a game result pushes a player across one or
// more level thresholds. The payload carries the post-update progression stats.
const EventTypeLevelUp = "level_up"

// OutboxEvent represents a progression event stored in the outbox
type OutboxEvent struct {
	ID          string     `json:"id" gorm:"primaryKey;column:id;type:varchar(64)"`
	Type        string     `json:"type" gorm:"type:varchar(64);not null"`
	Data        JSONB      `json:"data" gorm:"type:jsonb"`
	Status      string     `json:"status" gorm:"type:varchar(16);not null;default:'PENDING'"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	Error       *string    `json:"error,omitempty"`
	RetryCount  int        `json:"retry_count" gorm:"default:0"`
}

// TableName specifies the table name for OutboxEvent
func (o OutboxEvent) TableName() string {
	return "outbox_events"
}

// NewLevelUpEvent builds a pending level_up event for a player
func NewLevelUpEvent(eventID string, player *Player, levelsGained int) *OutboxEvent {
	return &OutboxEvent{
		ID:     eventID,
		Type:   EventTypeLevelUp,
		Status: EventStatusPending,
		Data: JSONB{
			"player_id":     player.ID,
			"username":      player.Username,
			"level":         player.Level,
			"levels_gained": levelsGained,
			"skill_points":  player.SkillPoints,
		},
		CreatedAt: time.Now(),
	}
}

// OutboxRepository defines the interface for outbox persistence
type OutboxRepository interface {
	Save(event *OutboxEvent) error
	GetPendingEvents(limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(eventID string) error
	MarkAsFailed(eventID string, errMsg string) error
	IncrementRetryCount(eventID string) error
	WithTransaction(tx *gorm.DB) OutboxRepository
}

// EventPublisher delivers processed outbox events to interested peers. The
// transport layer implements it; delivery is best effort.
type EventPublisher interface {
	Publish(event *OutboxEvent) error
}

// OutboxProcessor defines the interface for processing outbox events
type OutboxProcessor interface {
	Start(interval time.Duration)
	Stop()
	ProcessEvents() error
}
