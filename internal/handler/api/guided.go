package api

import (
	"context"
	"net/http"

	reqdto "saba-booking/internal/handler/dto/request"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/httperr"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GuidedHandler serves the step-by-step booking flow. The intent id travels
// in the booking_intent cookie.
type GuidedHandler struct {
	cmds      commands.GuidedCommands
	cookieCfg config.CookieConfig
}

func NewGuidedHandler(cmds commands.GuidedCommands, cookieCfg config.CookieConfig) *GuidedHandler {
	return &GuidedHandler{cmds: cmds, cookieCfg: cookieCfg}
}

type guidedAction func(ctx context.Context, id uuid.UUID) (*commands.GuidedState, error)

// @Summary Start guided booking
// @Description Starts a new booking intent, adopting the current cart session when it is still alive.
// @Tags guided
// @Produce json
// @Success 201 {object} resdto.GuidedResponse
// @Router /api/guided [post]
func (h *GuidedHandler) Start(c *gin.Context) {
	state, err := h.cmds.Start(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	cookie.SetIntentCookie(c, h.cookieCfg, state.Intent.ID().String())
	h.respond(c, http.StatusCreated, state)
}

// @Summary Get guided booking
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Failure 404 {object} httperr.Response
// @Router /api/guided [get]
func (h *GuidedHandler) Get(c *gin.Context) {
	h.run(c, h.cmds.Get)
}

// @Summary Update guided booking
// @Description Applies the given answers. Changing activity, dates or guests discards the current price.
// @Tags guided
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateGuidedRequest true "Answers"
// @Success 200 {object} resdto.GuidedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/guided [patch]
func (h *GuidedHandler) Update(c *gin.Context) {
	var req reqdto.UpdateGuidedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	h.run(c, func(ctx context.Context, id uuid.UUID) (*commands.GuidedState, error) {
		return h.cmds.Update(ctx, id, p)
	})
}

// @Summary Next step
// @Description Moves forward when the current step's gate passes; otherwise returns the violations.
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Router /api/guided/advance [post]
func (h *GuidedHandler) Advance(c *gin.Context) { h.run(c, h.cmds.Advance) }

// @Summary Previous step
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Router /api/guided/retreat [post]
func (h *GuidedHandler) Retreat(c *gin.Context) { h.run(c, h.cmds.Retreat) }

// @Summary Restart guided booking
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Router /api/guided/reset [post]
func (h *GuidedHandler) Reset(c *gin.Context) { h.run(c, h.cmds.Reset) }

// @Summary Confirm certification
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Router /api/guided/certification [post]
func (h *GuidedHandler) ConfirmCertification(c *gin.Context) { h.run(c, h.cmds.ConfirmCertification) }

// @Summary Switch to the alternative activity
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/guided/alternative [post]
func (h *GuidedHandler) SwitchToAlternative(c *gin.Context) { h.run(c, h.cmds.SwitchToAlternative) }

// @Summary Price the selection
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Failure 429 {object} httperr.Response
// @Router /api/guided/rate [post]
func (h *GuidedHandler) Rate(c *gin.Context) { h.run(c, h.cmds.Rate) }

// @Summary Add the priced activity to the cart
// @Description Adds the activity and its add-ons. Retrying after a partial failure only adds what is missing.
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/guided/cart [post]
func (h *GuidedHandler) AddToCart(c *gin.Context) { h.run(c, h.cmds.AddToCart) }

// @Summary Book another activity
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Failure 403 {object} httperr.Response
// @Router /api/guided/another [post]
func (h *GuidedHandler) AddAnother(c *gin.Context) { h.run(c, h.cmds.AddAnother) }

// @Summary Checkout
// @Description Creates the booking for the cart session and completes the intent.
// @Tags guided
// @Produce json
// @Success 200 {object} resdto.GuidedResponse
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/guided/checkout [post]
func (h *GuidedHandler) Checkout(c *gin.Context) {
	id, ok := h.intentID(c)
	if !ok {
		return
	}
	state, err := h.cmds.Checkout(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err)
		return
	}
	if state.Intent.IsComplete() {
		cookie.ClearSessionCookie(c, h.cookieCfg)
	}
	h.respond(c, http.StatusOK, state)
}

func (h *GuidedHandler) run(c *gin.Context, action guidedAction) {
	id, ok := h.intentID(c)
	if !ok {
		return
	}
	state, err := action(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err)
		return
	}
	if state.Intent.SessionID() != "" {
		cookie.SetSessionCookie(c, h.cookieCfg, state.Intent.SessionID())
	}
	h.respond(c, http.StatusOK, state)
}

func (h *GuidedHandler) intentID(c *gin.Context) (uuid.UUID, bool) {
	raw := cookie.GetIntentID(c)
	if raw == "" {
		httperr.AbortWithMappedError(c, commands.ErrIntentNotFound)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		cookie.ClearIntentCookie(c, h.cookieCfg)
		httperr.AbortWithMappedError(c, errs.Mark(err, commands.ErrIntentNotFound))
		return uuid.Nil, false
	}
	return id, true
}

func (h *GuidedHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrIntentNotFound):
		cookie.ClearIntentCookie(c, h.cookieCfg)
	case errs.Is(err, commands.ErrCartExpired):
		cookie.ClearSessionCookie(c, h.cookieCfg)
	}
	httperr.AbortWithMappedError(c, err)
}

func (h *GuidedHandler) respond(c *gin.Context, status int, state *commands.GuidedState) {
	res, err := resdto.FromGuidedState(state)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(status, res)
}
