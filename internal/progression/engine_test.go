package progression

import (
	"testing"

	"github.com/gridfall/progression/internal/domain"
	"github.com/stretchr/testify/assert"
)

func freshPlayer() *domain.Player {
	p := domain.NewPlayer("test_player")
	p.ID = 123
	return p
}

func TestExperienceToNext(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 506},
		{6, 759},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExperienceToNext(tt.level), "level %d", tt.level)
	}
}

func TestAwardExperience(t *testing.T) {
	tests := []struct {
		name           string
		amount         int
		wantLevel      int
		wantExperience int
		wantToNext     int
		wantPoints     int
		wantGained     int
	}{
		{
			name:           "Zero_Amount_NoOp",
			amount:         0,
			wantLevel:      1,
			wantExperience: 0,
			wantToNext:     100,
			wantPoints:     3,
			wantGained:     0,
		},
		{
			name:           "Below_Threshold",
			amount:         99,
			wantLevel:      1,
			wantExperience: 99,
			wantToNext:     100,
			wantPoints:     3,
			wantGained:     0,
		},
		{
			name:           "Exact_Threshold_Single_LevelUp",
			amount:         100,
			wantLevel:      2,
			wantExperience: 0,
			wantToNext:     150,
			wantPoints:     5,
			wantGained:     1,
		},
		{
			name:           "Overflow_Carries_Into_Next_Level",
			amount:         130,
			wantLevel:      2,
			wantExperience: 30,
			wantToNext:     150,
			wantPoints:     5,
			wantGained:     1,
		},
		{
			// 100 + 150 + 225 + 337 + 506 = 1318 clears five thresholds exactly
			name:           "Large_Amount_Cascades_Five_Levels",
			amount:         1318,
			wantLevel:      6,
			wantExperience: 0,
			wantToNext:     759,
			wantPoints:     13,
			wantGained:     5,
		},
		{
			name:           "Negative_Amount_NoOp",
			amount:         -50,
			wantLevel:      1,
			wantExperience: 0,
			wantToNext:     100,
			wantPoints:     3,
			wantGained:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := freshPlayer()
			gained := AwardExperience(p, tt.amount)

			assert.Equal(t, tt.wantGained, gained)
			assert.Equal(t, tt.wantLevel, p.Level)
			assert.Equal(t, tt.wantExperience, p.Experience)
			assert.Equal(t, tt.wantToNext, p.ExperienceToNext)
			assert.Equal(t, tt.wantPoints, p.SkillPoints)
			assert.Less(t, p.Experience, p.ExperienceToNext)
		})
	}
}

func TestAwardExperience_DecompositionEquivalence(t *testing.T) {
	// One large award must land on the same state as the same total split
	// into sequential awards.
	single := freshPlayer()
	AwardExperience(single, 1318)

	split := freshPlayer()
	for _, amount := range []int{100, 150, 225, 337, 506} {
		AwardExperience(split, amount)
	}

	assert.Equal(t, single.Level, split.Level)
	assert.Equal(t, single.Experience, split.Experience)
	assert.Equal(t, single.ExperienceToNext, split.ExperienceToNext)
	assert.Equal(t, single.SkillPoints, split.SkillPoints)
}

func TestAwardExperience_InvariantHolds(t *testing.T) {
	p := freshPlayer()
	for _, amount := range []int{1, 49, 50, 99, 100, 101, 149, 250, 333, 1000, 7, 0, 5000} {
		AwardExperience(p, amount)
		assert.Less(t, p.Experience, p.ExperienceToNext, "after awarding %d", amount)
		assert.GreaterOrEqual(t, p.Experience, 0)
	}
}

func TestRecordWin_FreshProfile(t *testing.T) {
	p := freshPlayer()
	gained := RecordWin(p)

	assert.Equal(t, 0, gained)
	assert.Equal(t, 1, p.Wins)
	assert.Equal(t, 50, p.Experience)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 100, p.ExperienceToNext)
}

func TestRecordLoss_FreshProfile(t *testing.T) {
	p := freshPlayer()
	gained := RecordLoss(p)

	assert.Equal(t, 0, gained)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 20, p.Experience)
	assert.Equal(t, 1, p.Level)
}

func TestRecordWin_TenConsecutiveWins(t *testing.T) {
	// 500 total experience: level up at 100 (level 2, next 150), at 150
	// (level 3, next 225) and at 225 (level 4, next 337), leaving 25 over.
	p := freshPlayer()
	for i := 0; i < 10; i++ {
		RecordWin(p)
	}

	assert.Equal(t, 10, p.Wins)
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 25, p.Experience)
	assert.Equal(t, 337, p.ExperienceToNext)
	assert.Equal(t, 9, p.SkillPoints)
}

func TestUnlockSkill(t *testing.T) {
	t.Run("New_Skill_Added_Once", func(t *testing.T) {
		p := freshPlayer()
		UnlockSkill(p, "Vanguard", "overdrive")

		assert.ElementsMatch(t, []string{"slash", "dash", "overdrive"}, p.UnlockedSkills["Vanguard"])
	})

	t.Run("Already_Unlocked_Is_NoOp", func(t *testing.T) {
		p := freshPlayer()
		UnlockSkill(p, "Vanguard", "slash")

		assert.ElementsMatch(t, []string{"slash", "dash"}, p.UnlockedSkills["Vanguard"])
	})

	t.Run("Unknown_UnitType_Creates_Set", func(t *testing.T) {
		p := freshPlayer()
		UnlockSkill(p, "Warden", "bulwark")

		assert.Equal(t, []string{"bulwark"}, p.UnlockedSkills["Warden"])
	})

	t.Run("Nil_SkillSet_Is_Safe", func(t *testing.T) {
		p := &domain.Player{}
		UnlockSkill(p, "Phantom", "dash")

		assert.Equal(t, []string{"dash"}, p.UnlockedSkills["Phantom"])
	})

	t.Run("Does_Not_Touch_SkillPoints", func(t *testing.T) {
		p := freshPlayer()
		UnlockSkill(p, "Arcanist", "barrier")

		assert.Equal(t, domain.DefaultSkillPoints, p.SkillPoints)
	})
}

func TestSpendSkillPoint(t *testing.T) {
	t.Run("Decrements_When_Available", func(t *testing.T) {
		p := freshPlayer()
		ok := SpendSkillPoint(p)

		assert.True(t, ok)
		assert.Equal(t, 2, p.SkillPoints)
	})

	t.Run("Fails_At_Zero_Without_Mutation", func(t *testing.T) {
		p := freshPlayer()
		p.SkillPoints = 0
		ok := SpendSkillPoint(p)

		assert.False(t, ok)
		assert.Equal(t, 0, p.SkillPoints)
	})
}
