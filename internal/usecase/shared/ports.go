package shared

import (
	"context"
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/cart"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"

	"github.com/google/uuid"
)

// ReservationGateway is the only path to the external reservation API.
// Implementations return infra errors classified by kind.
type ReservationGateway interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	ListItems(ctx context.Context, q catalog.ItemQuery) ([]catalog.Item, error)
	GetItem(ctx context.Context, id catalog.ItemID, q *catalog.ItemQuery) (*catalog.Item, error)
	GetCalendar(ctx context.Context, id catalog.ItemID, span caldate.Range) (*catalog.Calendar, error)
	CreateOrExtendSession(ctx context.Context, tokens []string, sessionID string) (*cart.Snapshot, error)
	GetSession(ctx context.Context, sessionID string) (*cart.Snapshot, error)
	AlterSession(ctx context.Context, sessionID string, alter map[string]int) (*cart.Snapshot, error)
	ClearSession(ctx context.Context, sessionID string) error
	GetBookingForm(ctx context.Context) (*booking.FormSchema, error)
	CreateBooking(ctx context.Context, sessionID string, fields map[string]string) (*booking.Confirmation, error)
}

// IntentStore persists booking intents with optimistic versioning: Save
// fails with a conflict when the stored version differs from intent.Version().
type IntentStore interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Intent, error)
	Save(ctx context.Context, intent *booking.Intent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InFlightGuard marks a submission as running so a second identical one is
// rejected instead of duplicating gateway writes.
type InFlightGuard interface {
	Acquire(ctx context.Context, key string) (release func(context.Context), err error)
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatTurn is one stored message of an assistant conversation.
type ChatTurn struct {
	Role        ChatRole     `json:"role"`
	Text        string       `json:"text,omitempty"`
	ToolCalls   []ToolCall   `json:"tool_calls,omitempty"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
	At          time.Time    `json:"at"`
}

type ToolCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

type ToolResult struct {
	Name   string         `json:"name"`
	Result map[string]any `json:"result"`
}

type ConversationStore interface {
	Load(ctx context.Context, id uuid.UUID) ([]ChatTurn, error)
	Append(ctx context.Context, id uuid.UUID, turns ...ChatTurn) error
}

type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamObject  ParamType = "object"
)

// ToolParam describes one argument of an assistant tool. Object params list
// their known keys in Properties.
type ToolParam struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Enum        []string
	Properties  []ToolParam
}

type ToolSpec struct {
	Name        string
	Description string
	Params      []ToolParam
}

// AssistantModel produces the next model turn for a conversation. A turn
// either carries text for the user or tool calls to run.
type AssistantModel interface {
	Generate(ctx context.Context, instruction string, history []ChatTurn, tools []ToolSpec) (ChatTurn, error)
}
