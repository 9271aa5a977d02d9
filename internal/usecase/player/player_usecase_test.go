package player

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/domain/mocks"
	"github.com/gridfall/progression/internal/infrastructure/lock"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestUseCase(t *testing.T) (*PlayerUseCase, *mocks.MockPlayerRepository, *mocks.MockOutboxRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockPlayerRepo := mocks.NewMockPlayerRepository(ctrl)
	mockOutboxRepo := mocks.NewMockOutboxRepository(ctrl)
	newLogger := logger.NewLogger("test", "debug")

	uc := &PlayerUseCase{
		playerRepo:  mockPlayerRepo,
		outboxRepo:  mockOutboxRepo,
		lockManager: lock.NewPlayerLockManager(newLogger),
		db:          nil,
		logger:      newLogger,
	}
	return uc, mockPlayerRepo, mockOutboxRepo
}

func createTestPlayer() *domain.Player {
	p := domain.NewPlayer("test_player")
	p.ID = 123
	return p
}

func TestLogin(t *testing.T) {
	t.Run("Existing_Player_Returned", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		existing := createTestPlayer()
		mockRepo.EXPECT().GetByUsername("test_player").Return(existing, nil)

		player, err := uc.Login("test_player")

		assert.NoError(t, err)
		assert.Equal(t, existing, player)
	})

	t.Run("New_Player_Created_With_Defaults", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByUsername("newcomer").Return(nil, nil)
		mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
			p.ID = 7
			return nil
		})

		player, err := uc.Login("newcomer")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), player.ID)
		assert.Equal(t, 1, player.Level)
		assert.Equal(t, 0, player.Experience)
		assert.Equal(t, 100, player.ExperienceToNext)
		assert.Equal(t, 3, player.SkillPoints)
		assert.ElementsMatch(t, []string{"slash", "dash"}, player.UnlockedSkills["Vanguard"])
		assert.Equal(t, []string{"shove"}, player.UnlockedSkills["Fabricator"])
	})

	t.Run("Lost_Create_Race_Falls_Back_To_Existing", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		winner := createTestPlayer()
		gomock.InOrder(
			mockRepo.EXPECT().GetByUsername("test_player").Return(nil, nil),
			mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("duplicate key value violates unique constraint")),
			mockRepo.EXPECT().GetByUsername("test_player").Return(winner, nil),
		)

		player, err := uc.Login("test_player")

		assert.NoError(t, err)
		assert.Equal(t, winner, player)
	})

	t.Run("Empty_Username_Rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		player, err := uc.Login("")

		assert.Nil(t, player)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		existing := createTestPlayer()
		mockRepo.EXPECT().GetByID(int64(123)).Return(existing, nil)

		player, err := uc.GetProfile(123)

		assert.NoError(t, err)
		assert.Equal(t, existing, player)
	})

	t.Run("Not_Found", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByID(int64(404)).Return(nil, nil)

		player, err := uc.GetProfile(404)

		assert.Nil(t, player)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}

func TestReportGameResult(t *testing.T) {
	t.Run("Win_Updates_Record_And_Experience", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		existing := createTestPlayer()
		mockRepo.EXPECT().GetByID(int64(123)).Return(existing, nil)
		mockRepo.EXPECT().Update(existing).Return(nil)

		player, err := uc.ReportGameResult(123, domain.GameOutcomeWin)

		assert.NoError(t, err)
		assert.Equal(t, 1, player.Wins)
		assert.Equal(t, 50, player.Experience)
		assert.Equal(t, 1, player.Level)
	})

	t.Run("Loss_Updates_Record_And_Experience", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		existing := createTestPlayer()
		mockRepo.EXPECT().GetByID(int64(123)).Return(existing, nil)
		mockRepo.EXPECT().Update(existing).Return(nil)

		player, err := uc.ReportGameResult(123, domain.GameOutcomeLoss)

		assert.NoError(t, err)
		assert.Equal(t, 1, player.Losses)
		assert.Equal(t, 20, player.Experience)
	})

	t.Run("Invalid_Outcome_Rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		player, err := uc.ReportGameResult(123, domain.GameOutcome("draw"))

		assert.Nil(t, player)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidResult, appErr.Code)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})

	t.Run("Unknown_Player_Rejected", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByID(int64(404)).Return(nil, nil)

		player, err := uc.ReportGameResult(404, domain.GameOutcomeWin)

		assert.Nil(t, player)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
	})
}

func TestUnlockSkill(t *testing.T) {
	t.Run("Success_Spends_One_Point", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		existing := createTestPlayer()
		mockRepo.EXPECT().GetByID(int64(123)).Return(existing, nil)
		mockRepo.EXPECT().Update(existing).Return(nil)

		player, err := uc.UnlockSkill(123, "Arcanist", "barrier")

		assert.NoError(t, err)
		assert.Equal(t, 2, player.SkillPoints)
		assert.ElementsMatch(t, []string{"slash", "barrier"}, player.UnlockedSkills["Arcanist"])
	})

	t.Run("Already_Unlocked_Leaves_Points_Unchanged", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		existing := createTestPlayer()
		mockRepo.EXPECT().GetByID(int64(123)).Return(existing, nil)

		player, err := uc.UnlockSkill(123, "Vanguard", "slash")

		assert.Nil(t, player)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeSkillAlreadyUnlocked, appErr.Code)
		assert.Equal(t, 3, existing.SkillPoints)
	})

	t.Run("Insufficient_Points_Leaves_Skills_Unchanged", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		existing := createTestPlayer()
		existing.SkillPoints = 0
		mockRepo.EXPECT().GetByID(int64(123)).Return(existing, nil)

		player, err := uc.UnlockSkill(123, "Phantom", "blink")

		assert.Nil(t, player)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInsufficientSkillPoints, appErr.Code)
		assert.Equal(t, []string{"dash"}, existing.UnlockedSkills["Phantom"])
	})

	t.Run("Unknown_Player_Rejected", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByID(int64(404)).Return(nil, nil)

		player, err := uc.UnlockSkill(404, "Vanguard", "overdrive")

		assert.Nil(t, player)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
	})

	t.Run("Missing_Fields_Rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		_, err := uc.UnlockSkill(123, "", "overdrive")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)

		_, err = uc.UnlockSkill(123, "Vanguard", "")
		appErr, ok = domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)
	})
}

func TestApplyGameResultByIDs(t *testing.T) {
	t.Run("Both_Known_Updates_Both", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		winner := createTestPlayer()
		loser := domain.NewPlayer("loser_player")
		loser.ID = 456

		mockRepo.EXPECT().GetByID(int64(123)).Return(winner, nil)
		mockRepo.EXPECT().Update(winner).Return(nil)
		mockRepo.EXPECT().GetByID(int64(456)).Return(loser, nil)
		mockRepo.EXPECT().Update(loser).Return(nil)

		uc.ApplyGameResultByIDs(123, 456)

		assert.Equal(t, 1, winner.Wins)
		assert.Equal(t, 50, winner.Experience)
		assert.Equal(t, 1, loser.Losses)
		assert.Equal(t, 20, loser.Experience)
	})

	t.Run("Unknown_Loser_Still_Updates_Winner", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		winner := createTestPlayer()

		mockRepo.EXPECT().GetByID(int64(123)).Return(winner, nil)
		mockRepo.EXPECT().Update(winner).Return(nil)
		mockRepo.EXPECT().GetByID(int64(999)).Return(nil, nil)

		uc.ApplyGameResultByIDs(123, 999)

		assert.Equal(t, 1, winner.Wins)
	})

	t.Run("Winner_Lookup_Failure_Does_Not_Block_Loser", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		loser := createTestPlayer()

		mockRepo.EXPECT().GetByID(int64(777)).Return(nil, errors.New("connection reset"))
		mockRepo.EXPECT().GetByID(int64(123)).Return(loser, nil)
		mockRepo.EXPECT().Update(loser).Return(nil)

		uc.ApplyGameResultByIDs(777, 123)

		assert.Equal(t, 1, loser.Losses)
	})
}
