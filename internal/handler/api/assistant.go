package api

import (
	"io"
	"net/http"

	reqdto "saba-booking/internal/handler/dto/request"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/httperr"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/usecase/assistant"

	"github.com/gin-gonic/gin"
)

const maxToolBody = 64 << 10

type AssistantHandler struct {
	tools     assistant.Tools
	chat      assistant.Chat
	cookieCfg config.CookieConfig
}

func NewAssistantHandler(tools assistant.Tools, chat assistant.Chat, cookieCfg config.CookieConfig) *AssistantHandler {
	return &AssistantHandler{tools: tools, chat: chat, cookieCfg: cookieCfg}
}

// @Summary List assistant tools
// @Tags assistant
// @Produce json
// @Success 200 {array} resdto.ToolSpecResponse
// @Router /api/assistant/tools [get]
func (h *AssistantHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": resdto.FromToolSpecs(h.tools.Specs())})
}

// @Summary Invoke an assistant tool
// @Description Runs one tool with a JSON object of arguments. The cart session follows the same cookie as the guided flow.
// @Tags assistant
// @Accept json
// @Produce json
// @Param name path string true "Tool name"
// @Success 200 {object} resdto.ToolResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/assistant/tools/{name} [post]
func (h *AssistantHandler) InvokeTool(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxToolBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sessionID := middleware.GetSessionID(c)
	out, err := h.tools.Invoke(c.Request.Context(), c.Param("name"), sessionID, body)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	h.syncSession(c, sessionID, out.SessionID)
	c.JSON(http.StatusOK, resdto.ToolResultResponse{Result: out.Result, SessionID: out.SessionID})
}

// @Summary Chat with the assistant
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body reqdto.ChatRequest true "Message"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sessionID := middleware.GetSessionID(c)
	reply, err := h.chat.Send(c.Request.Context(), req.ConversationID, sessionID, req.Message)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	h.syncSession(c, sessionID, reply.SessionID)
	c.JSON(http.StatusOK, resdto.FromChatReply(reply))
}

func (h *AssistantHandler) syncSession(c *gin.Context, before, after string) {
	switch {
	case after != "" && after != before:
		cookie.SetSessionCookie(c, h.cookieCfg, after)
	case after == "" && before != "":
		cookie.ClearSessionCookie(c, h.cookieCfg)
	}
}
