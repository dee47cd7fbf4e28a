package api

import (
	"net/http"
	"net/url"

	reqdto "saba-booking/internal/handler/dto/request"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/httperr"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/pkg/jwt"
	"saba-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var (
	errNoCartChange = errs.New("tokens or alter is required")
	errShareEmpty   = errs.New("cannot share an empty cart")
)

type CartHandler struct {
	sessions  commands.SessionSync
	resume    *jwt.Service
	cookieCfg config.CookieConfig
	resumeCfg config.ResumeConfig
}

func NewCartHandler(sessions commands.SessionSync, resume *jwt.Service, cookieCfg config.CookieConfig, resumeCfg config.ResumeConfig) *CartHandler {
	return &CartHandler{
		sessions:  sessions,
		resume:    resume,
		cookieCfg: cookieCfg,
		resumeCfg: resumeCfg,
	}
}

// @Summary Get cart
// @Description Reconciled cart of the current session. A session given by query or resume token is adopted into the cookie.
// @Tags cart
// @Produce json
// @Param session_id query string false "Session ID"
// @Param resume query string false "Resume token"
// @Success 200 {object} resdto.CartResponse
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.sessions.Refresh(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	syncSessionCookie(c, h.cookieCfg, view)
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Update session
// @Description Adds rated slips to the session, or alters line quantities (0 removes a line).
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SessionRequest true "Tokens or alter map"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/session [post]
func (h *CartHandler) Session(c *gin.Context) {
	var req reqdto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.Empty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoCartChange, "Invalid request", nil)
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.GetSessionID(c)
	var (
		view *commands.CartView
		err  error
	)
	if len(req.Tokens) > 0 {
		view, err = h.sessions.AddTokens(ctx, sessionID, req.Tokens)
	} else {
		view, err = h.sessions.Alter(ctx, sessionID, req.Alter)
	}
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	syncSessionCookie(c, h.cookieCfg, view)
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart unit
// @Description Removes a primary activity and its add-ons.
// @Tags cart
// @Produce json
// @Param token path string true "Primary line token"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cart/units/{token} [delete]
func (h *CartHandler) RemoveUnit(c *gin.Context) {
	view, err := h.sessions.RemoveUnit(c.Request.Context(), middleware.GetSessionID(c), c.Param("token"))
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	syncSessionCookie(c, h.cookieCfg, view)
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/clear [post]
func (h *CartHandler) Clear(c *gin.Context) {
	view, err := h.sessions.Clear(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Share cart
// @Description Signed link that reopens the current cart session.
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.ShareResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/share [post]
func (h *CartHandler) Share(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		httperr.AbortWithMappedError(c, commands.ErrNoSession)
		return
	}
	view, err := h.sessions.Refresh(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	if view.Expired {
		cookie.ClearSessionCookie(c, h.cookieCfg)
		httperr.AbortWithMappedError(c, commands.ErrCartExpired)
		return
	}
	if view.Empty {
		httperr.AbortWithError(c, http.StatusBadRequest, errShareEmpty, "Your cart is empty", nil)
		return
	}

	token, expiresAt, err := h.resume.GenerateToken(sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ShareResponse{
		URL:       h.resumeCfg.BaseURL + "?resume=" + url.QueryEscape(token),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// syncSessionCookie keeps the session cookie pointed at the session the view
// describes and drops it once the reservation API has forgotten the session.
func syncSessionCookie(c *gin.Context, cfg config.CookieConfig, view *commands.CartView) {
	switch {
	case view.Expired:
		if cookie.GetSessionID(c) != "" {
			cookie.ClearSessionCookie(c, cfg)
		}
	case view.SessionID != "":
		// also refreshes the max-age
		cookie.SetSessionCookie(c, cfg, view.SessionID)
	}
}
