package api

import (
	"net/http"

	reqdto "saba-booking/internal/handler/dto/request"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/httperr"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/commands"
	"saba-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds      commands.BookingCommands
	q         queries.BookingQueries
	cookieCfg config.CookieConfig
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, cookieCfg config.CookieConfig) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, cookieCfg: cookieCfg}
}

// @Summary Create booking
// @Description Books the cart session. Missing or invalid customer fields come back as violations with status 200.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Customer fields"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/booking/create [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = middleware.GetSessionID(c)
	}

	res, err := h.cmds.Create(c.Request.Context(), sessionID, req.Fields)
	if err != nil {
		if errs.Is(err, commands.ErrCartExpired) {
			cookie.ClearSessionCookie(c, h.cookieCfg)
		}
		httperr.AbortWithMappedError(c, err)
		return
	}
	if len(res.Violations) > 0 {
		c.JSON(http.StatusOK, resdto.CreateBookingResponse{Violations: resdto.FromViolations(res.Violations)})
		return
	}

	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Header("Location", "/api/bookings/"+res.Confirmation.BookingID)
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{Booking: resdto.FromConfirmation(res.Confirmation)})
}

// @Summary Get booking
// @Description Booking as recorded in the local ledger.
// @Tags bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
