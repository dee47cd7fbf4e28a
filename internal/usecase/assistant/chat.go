package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAssistantDisabled = errs.New("assistant is not configured")
	ErrEmptyMessage      = errs.New("message must not be empty")
)

type ChatReply struct {
	ConversationID uuid.UUID
	Reply          string
	// ToolResults are the results of every tool run while answering.
	ToolResults []shared.ToolResult
	SessionID   string
	Steps       int
}

type Chat interface {
	Send(ctx context.Context, conversationID uuid.UUID, sessionID, message string) (*ChatReply, error)
}

type chatImpl struct {
	model    shared.AssistantModel
	tools    Tools
	store    shared.ConversationStore
	maxSteps int
	clock    clock.Clock
	logger   *slog.Logger
}

// NewChat returns a Chat that fails with ErrAssistantDisabled when model is nil.
func NewChat(
	model shared.AssistantModel,
	tools Tools,
	store shared.ConversationStore,
	maxSteps int,
	clk clock.Clock,
	logger *slog.Logger,
) Chat {
	if maxSteps <= 0 {
		maxSteps = 10
	}
	return &chatImpl{
		model:    model,
		tools:    tools,
		store:    store,
		maxSteps: maxSteps,
		clock:    clk,
		logger:   logger,
	}
}

// Send runs the tool-calling loop for one user message. The model may call
// tools up to maxSteps times before it has to answer.
func (c *chatImpl) Send(ctx context.Context, conversationID uuid.UUID, sessionID, message string) (*ChatReply, error) {
	if c.model == nil {
		return nil, ErrAssistantDisabled
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if conversationID == uuid.Nil {
		conversationID = uuid.New()
	}

	history, err := c.store.Load(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	reply := &ChatReply{ConversationID: conversationID, SessionID: sessionID}
	turns := []shared.ChatTurn{{Role: shared.ChatRoleUser, Text: message, At: c.clock.Now()}}
	instruction := c.instruction()

	for reply.Steps < c.maxSteps {
		reply.Steps++
		turn, err := c.model.Generate(ctx, instruction, slices.Concat(history, turns), c.tools.Specs())
		if err != nil {
			return nil, errs.Wrap(err, "assistant model")
		}
		turn.Role = shared.ChatRoleModel
		turn.At = c.clock.Now()
		turns = append(turns, turn)

		if len(turn.ToolCalls) == 0 {
			reply.Reply = turn.Text
			break
		}

		results := make([]shared.ToolResult, 0, len(turn.ToolCalls))
		for _, call := range turn.ToolCalls {
			result := c.runTool(ctx, call, reply)
			results = append(results, result)
			reply.ToolResults = append(reply.ToolResults, result)
		}
		turns = append(turns, shared.ChatTurn{Role: shared.ChatRoleUser, ToolResults: results, At: c.clock.Now()})
	}
	if reply.Reply == "" {
		c.logger.Warn("assistant stopped without a reply",
			"conversation_id", conversationID,
			"steps", reply.Steps)
	}

	if err := c.store.Append(ctx, conversationID, turns...); err != nil {
		c.logger.Warn("failed to store conversation", "conversation_id", conversationID, "error", err.Error())
	}
	return reply, nil
}

// runTool turns tool failures into an error result so the model can react to them.
func (c *chatImpl) runTool(ctx context.Context, call shared.ToolCall, reply *ChatReply) shared.ToolResult {
	args, err := json.Marshal(call.Args)
	if err != nil {
		return shared.ToolResult{Name: call.Name, Result: map[string]any{"error": "invalid arguments"}}
	}
	out, err := c.tools.Invoke(ctx, call.Name, reply.SessionID, args)
	if err != nil {
		c.logger.Info("assistant tool failed", "tool", call.Name, "error", err.Error())
		return shared.ToolResult{Name: call.Name, Result: map[string]any{"error": err.Error()}}
	}
	reply.SessionID = out.SessionID
	return shared.ToolResult{Name: call.Name, Result: out.Result}
}

func (c *chatImpl) instruction() string {
	today := clock.Today(c.clock, booking.OperatorLocation)
	return "You are the booking assistant of a dive operator. " +
		"Use the tools to find activities, price them, add them to the cart and book. " +
		"Confirm certification before adding a certified dive and the guest minimum before adding a cruise. " +
		"Requests that cannot be booked online go to prepareContactRequest, and the operator is reachable on WhatsApp at " + catalog.OperatorWhatsApp + ". " +
		"Today is " + caldate.Format(today) + ". Dates are YYYYMMDD and end dates are inclusive."
}
