//go:build unit

package api_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"saba-booking/internal/handler/api"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/pkg/jwt"
	"saba-booking/internal/usecase/assistant"
	"saba-booking/internal/usecase/shared"
	"saba-booking/tests/common/httptest"
	assistantmock "saba-booking/tests/mock/assistant"
	commandsmock "saba-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssistantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockTools    *assistantmock.MockTools
	mockChat     *assistantmock.MockChat
	mockContacts *commandsmock.MockContactCommands
}

func (s *AssistantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTools = assistantmock.NewMockTools(s.mockCtrl)
	s.mockChat = assistantmock.NewMockChat(s.mockCtrl)
	s.mockContacts = commandsmock.NewMockContactCommands(s.mockCtrl)
	h := api.NewAssistantHandler(s.mockTools, s.mockChat, cfg.Cookie)
	contact := api.NewContactHandler(s.mockContacts)

	resume := jwt.NewService(cfg.Resume.Secret, time.Hour)
	g := s.router.Group("/api", middleware.NewSessionMiddleware(resume, slog.Default()).ResolveSession())
	g.GET("/assistant/tools", h.ListTools)
	g.POST("/assistant/tools/:name", h.InvokeTool)
	g.POST("/assistant/chat", h.Chat)
	g.POST("/contact", contact.Submit)
}

func (s *AssistantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssistantHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssistantHandlerTestSuite))
}

func (s *AssistantHandlerTestSuite) TestListTools() {
	s.mockTools.EXPECT().Specs().Return([]shared.ToolSpec{{Name: assistant.ToolViewCart, Description: "Shows the cart"}})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/assistant/tools", nil)

	var body struct {
		Tools []resdto.ToolSpecResponse `json:"tools"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Tools, 1)
	s.Equal(assistant.ToolViewCart, body.Tools[0].Name)
}

func (s *AssistantHandlerTestSuite) TestInvokeTool() {
	s.Run("success: raw arguments and the cookie session reach the tool", func() {
		args := []byte(`{"tokens":["slip-1"]}`)
		s.mockTools.EXPECT().Invoke(gomock.Any(), assistant.ToolAddToSession, "sess-1", json.RawMessage(args)).
			Return(&assistant.Outcome{Result: map[string]any{"unit_count": 1}, SessionID: "sess-1"}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost,
			"/api/assistant/tools/"+assistant.ToolAddToSession, args, sessionCookie("sess-1"))

		var body resdto.ToolResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sess-1", body.SessionID)
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName), "unchanged session is not re-set")
	})

	s.Run("success: a new session is adopted", func() {
		s.mockTools.EXPECT().Invoke(gomock.Any(), assistant.ToolAddToSession, "", gomock.Any()).
			Return(&assistant.Outcome{Result: map[string]any{}, SessionID: "sess-new"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/assistant/tools/"+assistant.ToolAddToSession, []byte(`{}`))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("sess-new", httptest.ExtractCookie(rec, cookie.SessionCookieName).Value)
	})

	s.Run("success: a finished booking drops the session", func() {
		s.mockTools.EXPECT().Invoke(gomock.Any(), assistant.ToolCreateBooking, "sess-1", gomock.Any()).
			Return(&assistant.Outcome{Result: map[string]any{"booking_id": "SABA-1"}}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost,
			"/api/assistant/tools/"+assistant.ToolCreateBooking, []byte(`{}`), sessionCookie("sess-1"))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Less(httptest.ExtractCookie(rec, cookie.SessionCookieName).MaxAge, 0)
	})

	s.Run("error: unknown tool", func() {
		s.mockTools.EXPECT().Invoke(gomock.Any(), "nope", "", gomock.Any()).Return(nil, assistant.ErrUnknownTool)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/assistant/tools/nope", []byte(`{}`))

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "unknown_tool")
	})

	s.Run("error: invalid arguments", func() {
		s.mockTools.EXPECT().Invoke(gomock.Any(), assistant.ToolRateItem, "", gomock.Any()).Return(nil, assistant.ErrInvalidArgs)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/assistant/tools/"+assistant.ToolRateItem, []byte(`{"item_id":"x"}`))

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_arguments")
	})
}

func (s *AssistantHandlerTestSuite) TestChat() {
	convID := uuid.New()

	s.Run("success: reply with tool results", func() {
		s.mockChat.EXPECT().Send(gomock.Any(), convID, "", "what dives are there?").Return(&assistant.ChatReply{
			ConversationID: convID,
			Reply:          "Two dives are available.",
			ToolResults:    []shared.ToolResult{{Name: assistant.ToolSearchItems, Result: map[string]any{"count": 2}}},
			Steps:          2,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/assistant/chat",
			map[string]any{"conversation_id": convID, "message": "what dives are there?"})

		var body resdto.ChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(convID.String(), body.ConversationID)
		s.Equal("Two dives are available.", body.Reply)
		s.Len(body.ToolResults, 1)
	})

	s.Run("error: assistant disabled maps to 503", func() {
		s.mockChat.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assistant.ErrAssistantDisabled)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/assistant/chat", map[string]any{"message": "hi"})

		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, "assistant_disabled")
	})

	s.Run("error: 400 without a message", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/assistant/chat", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AssistantHandlerTestSuite) TestContact() {
	valid := map[string]any{
		"name":         "Ana Diver",
		"email":        "ana@example.com",
		"subject":      "Private charter",
		"message":      "Twelve guests on March 3rd",
		"request_type": "private_charter",
		"guest_count":  12,
	}

	s.Run("success: 201 with the WhatsApp contact", func() {
		id := uuid.New()
		s.mockContacts.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/contact", valid)

		var body resdto.ContactResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body.RequestID)
		s.Equal("received", body.Status)
		s.NotEmpty(body.WhatsApp)
	})

	s.Run("error: unknown request type", func() {
		body := map[string]any{}
		for k, v := range valid {
			body[k] = v
		}
		body["request_type"] = "spaceflight"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/contact", body)

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "unknown_request_type")
	})

	s.Run("error: invalid email is rejected by binding", func() {
		body := map[string]any{}
		for k, v := range valid {
			body[k] = v
		}
		body["email"] = "not-an-email"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/contact", body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
