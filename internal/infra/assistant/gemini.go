package assistant

import (
	"context"
	"log/slog"
	"strings"

	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/shared"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

var errNoCandidates = errs.New("model returned no candidates")

// GeminiModel runs assistant turns on the Gemini API with function calling.
type GeminiModel struct {
	client    *genai.Client
	modelName string
	logger    *slog.Logger
}

// NewGeminiModel returns nil without an API key; the assistant is then disabled.
func NewGeminiModel(ctx context.Context, cfg config.AssistantConfig, logger *slog.Logger) (*GeminiModel, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create Gemini client")
	}
	return &GeminiModel{
		client:    client,
		modelName: cfg.Model,
		logger:    logger,
	}, nil
}

func (g *GeminiModel) Close() error {
	return g.client.Close()
}

func (g *GeminiModel) Generate(ctx context.Context, instruction string, history []shared.ChatTurn, tools []shared.ToolSpec) (shared.ChatTurn, error) {
	contents := toContents(history)
	if len(contents) == 0 {
		return shared.ChatTurn{}, errs.New("conversation has no user turn")
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(instruction)}}
	model.Tools = []*genai.Tool{{FunctionDeclarations: toDeclarations(tools)}}

	cs := model.StartChat()
	cs.History = contents[:len(contents)-1]
	resp, err := cs.SendMessage(ctx, contents[len(contents)-1].Parts...)
	if err != nil {
		return shared.ChatTurn{}, infra.WrapErr(g.logger, infra.KindUpstream, "gemini generate", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return shared.ChatTurn{}, infra.WrapErr(g.logger, infra.KindUpstream, "gemini generate", errNoCandidates)
	}

	turn := shared.ChatTurn{Role: shared.ChatRoleModel}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			turn.ToolCalls = append(turn.ToolCalls, shared.ToolCall{Name: p.Name, Args: p.Args})
		}
	}
	turn.Text = sb.String()
	return turn, nil
}

// toContents maps stored turns to Gemini contents. Leading turns that are
// not user text are dropped, since trimming can cut a tool exchange in half.
func toContents(history []shared.ChatTurn) []*genai.Content {
	start := 0
	for start < len(history) && (history[start].Role != shared.ChatRoleUser || history[start].Text == "") {
		start++
	}

	contents := make([]*genai.Content, 0, len(history)-start)
	for _, t := range history[start:] {
		c := &genai.Content{Role: roleUser}
		if t.Role == shared.ChatRoleModel {
			c.Role = roleModel
		}
		if t.Text != "" {
			c.Parts = append(c.Parts, genai.Text(t.Text))
		}
		for _, call := range t.ToolCalls {
			c.Parts = append(c.Parts, genai.FunctionCall{Name: call.Name, Args: call.Args})
		}
		for _, res := range t.ToolResults {
			c.Parts = append(c.Parts, genai.FunctionResponse{Name: res.Name, Response: res.Result})
		}
		if len(c.Parts) > 0 {
			contents = append(contents, c)
		}
	}
	return contents
}

func toDeclarations(tools []shared.ToolSpec) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decl := &genai.FunctionDeclaration{Name: t.Name, Description: t.Description}
		if len(t.Params) > 0 {
			decl.Parameters = objectSchema("", t.Params)
		}
		decls = append(decls, decl)
	}
	return decls
}

func objectSchema(description string, params []shared.ToolParam) *genai.Schema {
	s := &genai.Schema{
		Type:        genai.TypeObject,
		Description: description,
		Properties:  make(map[string]*genai.Schema, len(params)),
	}
	for _, p := range params {
		s.Properties[p.Name] = toSchema(p)
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

func toSchema(p shared.ToolParam) *genai.Schema {
	switch p.Type {
	case shared.ParamObject:
		return objectSchema(p.Description, p.Properties)
	case shared.ParamInteger:
		return &genai.Schema{Type: genai.TypeInteger, Description: p.Description}
	default:
		s := &genai.Schema{Type: genai.TypeString, Description: p.Description, Enum: p.Enum}
		if len(p.Enum) > 0 {
			s.Format = "enum"
		}
		return s
	}
}
