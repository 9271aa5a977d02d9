package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/domain/mocks"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockPlayerUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gin.SetMode(gin.TestMode)
	mockUseCase := mocks.NewMockPlayerUseCase(ctrl)
	handler := NewProgressionHandler(mockUseCase, logger.NewLogger("test", "debug"))

	router := gin.New()
	router.POST("/progression/login", handler.Login)
	router.GET("/progression/:id", handler.GetProfile)
	router.POST("/progression/:id/game-result", handler.ReportGameResult)
	router.POST("/progression/:id/unlock-skill", handler.UnlockSkill)
	return router, mockUseCase
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Returns_Profile", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		player := domain.NewPlayer("ada")
		player.ID = 1
		mockUseCase.EXPECT().Login("ada").Return(player, nil)

		w := performRequest(router, http.MethodPost, "/progression/login", gin.H{"username": "ada"})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp PlayerResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "ada", resp.Username)
		assert.Equal(t, 1, resp.Level)
		assert.Equal(t, 100, resp.ExperienceToNext)
	})

	t.Run("Missing_Username_Is_Bad_Request", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := performRequest(router, http.MethodPost, "/progression/login", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProfileEndpoint(t *testing.T) {
	t.Run("Unknown_Player_Is_Not_Found", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		mockUseCase.EXPECT().GetProfile(int64(404)).Return(nil,
			domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", http.StatusNotFound, nil))

		w := performRequest(router, http.MethodGet, "/progression/404", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Non_Numeric_ID_Is_Bad_Request", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := performRequest(router, http.MethodGet, "/progression/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportGameResultEndpoint(t *testing.T) {
	t.Run("Win_Returns_Updated_Profile", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		player := domain.NewPlayer("ada")
		player.ID = 1
		player.Wins = 1
		player.Experience = 50
		mockUseCase.EXPECT().ReportGameResult(int64(1), domain.GameOutcomeWin).Return(player, nil)

		w := performRequest(router, http.MethodPost, "/progression/1/game-result", gin.H{"result": "win"})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp PlayerResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Wins)
		assert.Equal(t, 50, resp.Experience)
	})

	t.Run("Invalid_Result_Is_Bad_Request", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		mockUseCase.EXPECT().ReportGameResult(int64(1), domain.GameOutcome("draw")).Return(nil,
			domain.NewAppError(domain.ErrCodeInvalidResult, "Result must be win or loss", http.StatusBadRequest, nil))

		w := performRequest(router, http.MethodPost, "/progression/1/game-result", gin.H{"result": "draw"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUnlockSkillEndpoint(t *testing.T) {
	t.Run("Already_Unlocked_Is_Bad_Request", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		mockUseCase.EXPECT().UnlockSkill(int64(1), "Vanguard", "slash").Return(nil,
			domain.NewAppError(domain.ErrCodeSkillAlreadyUnlocked, "Skill already unlocked", http.StatusBadRequest, nil))

		w := performRequest(router, http.MethodPost, "/progression/1/unlock-skill",
			gin.H{"unit_type": "Vanguard", "skill_id": "slash"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing_Fields_Is_Bad_Request", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := performRequest(router, http.MethodPost, "/progression/1/unlock-skill",
			gin.H{"unit_type": "Vanguard"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
