package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ProgressionHandler handles HTTP requests for player progression operations
type ProgressionHandler struct {
	playerUseCase domain.PlayerUseCase
	logger        *logger.Logger
}

// NewProgressionHandler creates a new progression handler
func NewProgressionHandler(playerUseCase domain.PlayerUseCase, logger *logger.Logger) *ProgressionHandler {
	return &ProgressionHandler{
		playerUseCase: playerUseCase,
		logger:        logger,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ada"`
}

// GameResultRequest represents the game result request body
type GameResultRequest struct {
	Result string `json:"result" binding:"required" example:"win"`
}

// UnlockSkillRequest represents the unlock skill request body
type UnlockSkillRequest struct {
	UnitType string `json:"unit_type" binding:"required" example:"Vanguard"`
	SkillID  string `json:"skill_id" binding:"required" example:"overdrive"`
}

// PlayerResponse represents a player profile response body
type PlayerResponse struct {
	ID               int64               `json:"id" example:"123"`
	Username         string              `json:"username" example:"ada"`
	Level            int                 `json:"level" example:"4"`
	Experience       int                 `json:"experience" example:"25"`
	ExperienceToNext int                 `json:"experience_to_next" example:"337"`
	SkillPoints      int                 `json:"skill_points" example:"9"`
	Wins             int                 `json:"wins" example:"10"`
	Losses           int                 `json:"losses" example:"0"`
	UnlockedSkills   map[string][]string `json:"unlocked_skills"`
}

// createPlayerResponse creates a standardized player profile response
func (h *ProgressionHandler) createPlayerResponse(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:               player.ID,
		Username:         player.Username,
		Level:            player.Level,
		Experience:       player.Experience,
		ExperienceToNext: player.ExperienceToNext,
		SkillPoints:      player.SkillPoints,
		Wins:             player.Wins,
		Losses:           player.Losses,
		UnlockedSkills:   player.UnlockedSkills,
	}
}

// getPlayerID extracts and validates the player ID path parameter
func (h *ProgressionHandler) getPlayerID(c *gin.Context) (int64, bool) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || playerID <= 0 {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
			domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid player ID", http.StatusBadRequest, err)))
		return 0, false
	}
	return playerID, true
}

// respondError writes an error response with the status the error carries
func (h *ProgressionHandler) respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(
		domain.NewInternalError("", err)))
}

// Login handles player login
// @Summary Player login
// @Description Return the profile for a username, creating it with starting values on first login
// @Tags progression
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login details"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /progression/login [post]
func (h *ProgressionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
			domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err)))
		return
	}

	player, err := h.playerUseCase.Login(req.Username)
	if err != nil {
		h.logger.Error("Login failed", zap.String("username", req.Username), zap.Error(err))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.createPlayerResponse(player))
}

// GetProfile handles getting a player profile
// @Summary Get player profile
// @Description Get the full progression profile for a player
// @Tags progression
// @Accept json
// @Produce json
// @Param id path int true "Player ID" example(123)
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /progression/{id} [get]
func (h *ProgressionHandler) GetProfile(c *gin.Context) {
	playerID, ok := h.getPlayerID(c)
	if !ok {
		return
	}

	player, err := h.playerUseCase.GetProfile(playerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.createPlayerResponse(player))
}

// ReportGameResult handles reporting a single game result
// @Summary Report game result
// @Description Record a win or loss for a player and apply the experience it awards
// @Tags progression
// @Accept json
// @Produce json
// @Param id path int true "Player ID" example(123)
// @Param request body GameResultRequest true "Game result"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /progression/{id}/game-result [post]
func (h *ProgressionHandler) ReportGameResult(c *gin.Context) {
	playerID, ok := h.getPlayerID(c)
	if !ok {
		return
	}

	var req GameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
			domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err)))
		return
	}

	player, err := h.playerUseCase.ReportGameResult(playerID, domain.GameOutcome(req.Result))
	if err != nil {
		h.logger.Error("Report game result failed",
			zap.Int64("playerID", playerID), zap.String("result", req.Result), zap.Error(err))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.createPlayerResponse(player))
}

// UnlockSkill handles unlocking a skill for a unit type
// @Summary Unlock skill
// @Description Spend one skill point to unlock a skill on one of the player's unit types
// @Tags progression
// @Accept json
// @Produce json
// @Param id path int true "Player ID" example(123)
// @Param request body UnlockSkillRequest true "Skill to unlock"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /progression/{id}/unlock-skill [post]
func (h *ProgressionHandler) UnlockSkill(c *gin.Context) {
	playerID, ok := h.getPlayerID(c)
	if !ok {
		return
	}

	var req UnlockSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
			domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err)))
		return
	}

	player, err := h.playerUseCase.UnlockSkill(playerID, req.UnitType, req.SkillID)
	if err != nil {
		h.logger.Error("Unlock skill failed",
			zap.Int64("playerID", playerID), zap.String("unitType", req.UnitType),
			zap.String("skillID", req.SkillID), zap.Error(err))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.createPlayerResponse(player))
}
