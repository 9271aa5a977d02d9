package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GameOutcome represents the result of a finished match from one player's perspective
type GameOutcome string

const (
	GameOutcomeWin  GameOutcome = "win"
	GameOutcomeLoss GameOutcome = "loss"
)

// Valid reports whether the outcome is one of the known values
func (o GameOutcome) Valid() bool {
	return o == GameOutcomeWin || o == GameOutcomeLoss
}

// SkillSet maps a unit type to the skill ids unlocked for it. It is stored as a
// JSONB column so GORM can marshal/unmarshal it transparently.
type SkillSet map[string][]string

// Scan implements the sql.Scanner interface
func (s *SkillSet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal SkillSet value: %v", value)
	}
	return json.Unmarshal(bytes, s)
}

// Value implements the driver.Valuer interface
func (s SkillSet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Contains reports whether skillID is already unlocked for unitType
func (s SkillSet) Contains(unitType, skillID string) bool {
	for _, id := range s[unitType] {
		if id == skillID {
			return true
		}
	}
	return false
}

// Progression defaults for a freshly created player
const (
	DefaultLevel            = 1
	DefaultExperienceToNext = 100
	DefaultSkillPoints      = 3
)

// DefaultSkillSet returns the starter skills granted per unit type. A fresh map is
// built on every call so new players never share the same underlying containers.
func DefaultSkillSet() SkillSet {
	return SkillSet{
		"Vanguard":   {"slash", "dash"},
		"Coreframe":  {"slash", "dash"},
		"Sentinel":   {"slash", "shove"},
		"Arcanist":   {"slash"},
		"Phantom":    {"dash"},
		"Fabricator": {"shove"},
	}
}

// Player represents a player's persistent progression record
type Player struct {
	ID               int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Username         string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Level            int       `json:"level" gorm:"not null;default:1"`
	Experience       int       `json:"xp" gorm:"column:experience;not null;default:0"`
	ExperienceToNext int       `json:"xp_to_next_level" gorm:"column:experience_to_next;not null;default:100"`
	SkillPoints      int       `json:"skill_points" gorm:"not null;default:3"`
	Wins             int       `json:"wins" gorm:"not null;default:0"`
	Losses           int       `json:"losses" gorm:"not null;default:0"`
	UnlockedSkills   SkillSet  `json:"unlocked_skills" gorm:"type:jsonb"`
	CreatedAt        time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// NewPlayer creates a player with default progression stats and starter skills
func NewPlayer(username string) *Player {
	return &Player{
		Username:         username,
		Level:            DefaultLevel,
		Experience:       0,
		ExperienceToNext: DefaultExperienceToNext,
		SkillPoints:      DefaultSkillPoints,
		UnlockedSkills:   DefaultSkillSet(),
	}
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByID(id int64) (*Player, error)
	GetByUsername(username string) (*Player, error)
	Create(player *Player) error
	Update(player *Player) error
	WithTransaction(tx *gorm.DB) PlayerRepository
}

// PlayerUseCase defines the interface for progression business logic
type PlayerUseCase interface {
	Login(username string) (*Player, error)
	GetProfile(id int64) (*Player, error)
	ReportGameResult(id int64, outcome GameOutcome) (*Player, error)
	UnlockSkill(id int64, unitType, skillID string) (*Player, error)
	ApplyGameResultByIDs(winnerID, loserID int64)
}
