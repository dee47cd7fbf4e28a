package response

import (
	"saba-booking/internal/usecase/assistant"
	"saba-booking/internal/usecase/shared"
)

type ToolParamResponse struct {
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Required    bool                `json:"required"`
	Enum        []string            `json:"enum,omitempty"`
	Properties  []ToolParamResponse `json:"properties,omitempty"`
}

type ToolSpecResponse struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Params      []ToolParamResponse `json:"params"`
}

func FromToolSpecs(specs []shared.ToolSpec) []ToolSpecResponse {
	out := make([]ToolSpecResponse, 0, len(specs))
	for _, s := range specs {
		out = append(out, ToolSpecResponse{Name: s.Name, Description: s.Description, Params: fromToolParams(s.Params)})
	}
	return out
}

func fromToolParams(ps []shared.ToolParam) []ToolParamResponse {
	out := make([]ToolParamResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToolParamResponse{
			Name:        p.Name,
			Type:        string(p.Type),
			Description: p.Description,
			Required:    p.Required,
			Enum:        p.Enum,
			Properties:  fromToolParams(p.Properties),
		})
	}
	return out
}

type ToolResultResponse struct {
	Result    map[string]any `json:"result"`
	SessionID string         `json:"session_id,omitempty"`
}

type ToolCallResultResponse struct {
	Name   string         `json:"name"`
	Result map[string]any `json:"result"`
}

type ChatResponse struct {
	ConversationID string                   `json:"conversation_id"`
	Reply          string                   `json:"reply"`
	ToolResults    []ToolCallResultResponse `json:"tool_results"`
	Steps          int                      `json:"steps"`
}

func FromChatReply(r *assistant.ChatReply) ChatResponse {
	res := ChatResponse{
		ConversationID: r.ConversationID.String(),
		Reply:          r.Reply,
		ToolResults:    make([]ToolCallResultResponse, 0, len(r.ToolResults)),
		Steps:          r.Steps,
	}
	for _, tr := range r.ToolResults {
		res.ToolResults = append(res.ToolResults, ToolCallResultResponse{Name: tr.Name, Result: tr.Result})
	}
	return res
}
