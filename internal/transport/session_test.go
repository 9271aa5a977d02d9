package transport

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gridfall/progression/internal/domain/mocks"
	"github.com/gridfall/progression/internal/infrastructure/logger"
)

func newTestSession(t *testing.T) (*Session, *mocks.MockPlayerUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUseCase := mocks.NewMockPlayerUseCase(ctrl)
	session := NewSession(nil, mockUseCase, logger.NewLogger("test", "debug"))
	return session, mockUseCase
}

func TestHandleFrame(t *testing.T) {
	t.Run("Game_Result_Dispatched", func(t *testing.T) {
		session, mockUseCase := newTestSession(t)
		mockUseCase.EXPECT().ApplyGameResultByIDs(int64(5), int64(9))

		session.handleFrame([]byte(`{"type":"game_result","winner_id":5,"loser_id":9}`))
	})

	t.Run("Unrecognized_Type_Ignored", func(t *testing.T) {
		session, _ := newTestSession(t)

		session.handleFrame([]byte(`{"type":"chat","text":"gg"}`))
	})

	t.Run("Malformed_Frame_Skipped", func(t *testing.T) {
		session, _ := newTestSession(t)

		session.handleFrame([]byte(`{"type":"game_result","winner_id":`))
		session.handleFrame([]byte(`not json at all`))
	})

	t.Run("Missing_Player_IDs_Skipped", func(t *testing.T) {
		session, _ := newTestSession(t)

		session.handleFrame([]byte(`{"type":"game_result","winner_id":5}`))
		session.handleFrame([]byte(`{"type":"game_result","loser_id":9}`))
		session.handleFrame([]byte(`{"type":"game_result"}`))
	})

	t.Run("Wrong_Field_Type_Skipped", func(t *testing.T) {
		session, _ := newTestSession(t)

		session.handleFrame([]byte(`{"type":"game_result","winner_id":"five","loser_id":9}`))
	})
}
