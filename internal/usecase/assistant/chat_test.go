//go:build unit

package assistant_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/assistant"
	"saba-booking/internal/usecase/shared"
	assistantmock "saba-booking/tests/mock/assistant"
	sharedmock "saba-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var chatNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

type chatFixture struct {
	model *sharedmock.MockAssistantModel
	tools *assistantmock.MockTools
	store *sharedmock.MockConversationStore
	chat  assistant.Chat
}

func newChatFixture(t *testing.T, maxSteps int) *chatFixture {
	ctrl := gomock.NewController(t)
	f := &chatFixture{
		model: sharedmock.NewMockAssistantModel(ctrl),
		tools: assistantmock.NewMockTools(ctrl),
		store: sharedmock.NewMockConversationStore(ctrl),
	}
	f.tools.EXPECT().Specs().Return([]shared.ToolSpec{{Name: assistant.ToolViewCart}}).AnyTimes()
	f.chat = assistant.NewChat(f.model, f.tools, f.store, maxSteps, clock.NewMockClock(chatNow), slog.Default())
	return f
}

func TestChat_Send(t *testing.T) {
	ctx := context.Background()
	convID := uuid.New()

	t.Run("tool results are fed back until the model answers", func(t *testing.T) {
		f := newChatFixture(t, 10)
		prior := []shared.ChatTurn{
			{Role: shared.ChatRoleUser, Text: "hi"},
			{Role: shared.ChatRoleModel, Text: "Hello!"},
		}

		f.store.EXPECT().Load(ctx, convID).Return(prior, nil)
		gomock.InOrder(
			f.model.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, instruction string, history []shared.ChatTurn, _ []shared.ToolSpec) (shared.ChatTurn, error) {
					assert.Contains(t, instruction, "20260201")
					require.Len(t, history, 3)
					assert.Equal(t, "what is in my cart?", history[2].Text)
					return shared.ChatTurn{ToolCalls: []shared.ToolCall{{Name: assistant.ToolViewCart, Args: map[string]any{}}}}, nil
				}),
			f.model.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, history []shared.ChatTurn, _ []shared.ToolSpec) (shared.ChatTurn, error) {
					require.Len(t, history, 5)
					last := history[4]
					assert.Equal(t, shared.ChatRoleUser, last.Role)
					require.Len(t, last.ToolResults, 1)
					assert.Equal(t, "$300.00", last.ToolResults[0].Result["total"])
					return shared.ChatTurn{Text: "One dive, $300.00."}, nil
				}),
		)
		f.tools.EXPECT().Invoke(ctx, assistant.ToolViewCart, "sess-1", gomock.Any()).
			Return(&assistant.Outcome{Result: map[string]any{"total": "$300.00"}, SessionID: "sess-1"}, nil)
		f.store.EXPECT().Append(ctx, convID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, turns ...shared.ChatTurn) error {
				assert.Len(t, turns, 4)
				return nil
			})

		reply, err := f.chat.Send(ctx, convID, "sess-1", "  what is in my cart?  ")
		require.NoError(t, err)
		assert.Equal(t, "One dive, $300.00.", reply.Reply)
		assert.Equal(t, 2, reply.Steps)
		assert.Equal(t, "sess-1", reply.SessionID)
		assert.Len(t, reply.ToolResults, 1)
	})

	t.Run("tool errors are returned to the model", func(t *testing.T) {
		f := newChatFixture(t, 10)
		f.store.EXPECT().Load(ctx, convID).Return(nil, nil)
		gomock.InOrder(
			f.model.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
				Return(shared.ChatTurn{ToolCalls: []shared.ToolCall{{Name: assistant.ToolViewCart}}}, nil),
			f.model.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
				Return(shared.ChatTurn{Text: "The cart could not be loaded."}, nil),
		)
		f.tools.EXPECT().Invoke(ctx, assistant.ToolViewCart, "sess-1", gomock.Any()).
			Return(nil, errors.New("reservation API unavailable"))
		f.store.EXPECT().Append(ctx, convID, gomock.Any()).Return(nil)

		reply, err := f.chat.Send(ctx, convID, "sess-1", "cart?")
		require.NoError(t, err)
		require.Len(t, reply.ToolResults, 1)
		assert.Equal(t, "reservation API unavailable", reply.ToolResults[0].Result["error"])
		assert.Equal(t, "sess-1", reply.SessionID)
	})

	t.Run("stops after the step limit", func(t *testing.T) {
		f := newChatFixture(t, 3)
		f.store.EXPECT().Load(ctx, gomock.Any()).Return(nil, nil)
		f.model.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.ChatTurn{ToolCalls: []shared.ToolCall{{Name: assistant.ToolViewCart}}}, nil).
			Times(3)
		f.tools.EXPECT().Invoke(ctx, assistant.ToolViewCart, "", gomock.Any()).
			Return(&assistant.Outcome{Result: map[string]any{}}, nil).
			Times(3)
		f.store.EXPECT().Append(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		reply, err := f.chat.Send(ctx, uuid.Nil, "", "loop")
		require.NoError(t, err)
		assert.Equal(t, 3, reply.Steps)
		assert.Empty(t, reply.Reply)
		assert.NotEqual(t, uuid.Nil, reply.ConversationID)
	})

	t.Run("model failure is returned", func(t *testing.T) {
		f := newChatFixture(t, 10)
		f.store.EXPECT().Load(ctx, convID).Return(nil, nil)
		f.model.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.ChatTurn{}, errors.New("quota exceeded"))

		_, err := f.chat.Send(ctx, convID, "", "hello")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "quota exceeded"))
	})

	t.Run("empty message", func(t *testing.T) {
		f := newChatFixture(t, 10)
		_, err := f.chat.Send(ctx, convID, "", "   ")
		assert.True(t, errs.Is(err, assistant.ErrEmptyMessage))
	})

	t.Run("disabled without a model", func(t *testing.T) {
		chat := assistant.NewChat(nil, nil, nil, 10, clock.NewMockClock(chatNow), slog.Default())
		_, err := chat.Send(ctx, convID, "", "hello")
		assert.True(t, errs.Is(err, assistant.ErrAssistantDisabled))
	})
}
