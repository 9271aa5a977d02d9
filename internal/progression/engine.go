// Package progression holds the pure state-transition logic for player
// progression. Functions here mutate a Player value in memory and never touch
// the database; the player usecase is responsible for loading and persisting.
package progression

import (
	"math"

	"github.com/gridfall/progression/internal/domain"
)

// Experience awarded per game outcome
const (
	WinExperience  = 50
	LossExperience = 20
)

// SkillPointsPerLevel is granted on every level gained
const SkillPointsPerLevel = 2

// ExperienceToNext returns the experience required to clear the given level,
// following the exponential curve 100 * 1.5^(level-1) truncated to an integer.
func ExperienceToNext(level int) int {
	return int(100 * math.Pow(1.5, float64(level-1)))
}

// AwardExperience adds amount to the player's experience and normalizes the
// profile, carrying overflow across as many level thresholds as it crosses.
// A non-positive amount is a no-op. Returns the number of levels gained.
func AwardExperience(p *domain.Player, amount int) int {
	if amount > 0 {
		p.Experience += amount
	}

	gained := 0
	for p.Experience >= p.ExperienceToNext {
		p.Experience -= p.ExperienceToNext
		p.Level++
		p.SkillPoints += SkillPointsPerLevel
		p.ExperienceToNext = ExperienceToNext(p.Level)
		gained++
	}
	return gained
}

// RecordWin increments the win counter and awards the win experience.
// Returns the number of levels gained.
func RecordWin(p *domain.Player) int {
	p.Wins++
	return AwardExperience(p, WinExperience)
}

// RecordLoss increments the loss counter and awards the loss experience.
// Returns the number of levels gained.
func RecordLoss(p *domain.Player) int {
	p.Losses++
	return AwardExperience(p, LossExperience)
}

// UnlockSkill adds skillID to the player's unlocked set for unitType. Unknown
// unit types get an empty set first; unlocking an already-unlocked skill is a
// no-op. Skill points are not touched here, spending is a separate step.
func UnlockSkill(p *domain.Player, unitType, skillID string) {
	if p.UnlockedSkills == nil {
		p.UnlockedSkills = domain.SkillSet{}
	}
	if _, ok := p.UnlockedSkills[unitType]; !ok {
		p.UnlockedSkills[unitType] = []string{}
	}
	if p.UnlockedSkills.Contains(unitType, skillID) {
		return
	}
	p.UnlockedSkills[unitType] = append(p.UnlockedSkills[unitType], skillID)
}

// SpendSkillPoint consumes one skill point. It reports false and leaves the
// player unchanged when no points are available; this is a normal outcome,
// not an error.
func SpendSkillPoint(p *domain.Player) bool {
	if p.SkillPoints <= 0 {
		return false
	}
	p.SkillPoints--
	return true
}
