package httperr

import (
	"math"
	"net/http"
	"strconv"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/assistant"
	"saba-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	code   string
	msg    string
}

var mappings = []mapping{
	{commands.ErrNoSession, http.StatusNotFound, "no_session", "No cart session"},
	{commands.ErrCartExpired, http.StatusGone, "cart_expired", "Your cart has expired"},
	{commands.ErrCartEmpty, http.StatusBadRequest, "cart_empty", "Your cart is empty"},
	{commands.ErrUnitNotFound, http.StatusNotFound, "unit_not_found", "Cart item not found"},
	{commands.ErrIntentNotFound, http.StatusNotFound, "intent_not_found", "Booking not found"},
	{commands.ErrStaleIntent, http.StatusConflict, "stale_intent", "Booking changed, please retry"},
	{commands.ErrSubmissionInFlight, http.StatusConflict, "in_flight", "This request is already being processed"},
	{commands.ErrNotRated, http.StatusBadRequest, "not_rated", "Nothing has been priced yet"},
	{commands.ErrAddOnFailed, http.StatusBadGateway, "add_on_failed", "Activity added but its add-ons could not be added"},
	{booking.ErrIntentCompleted, http.StatusConflict, "intent_completed", "Booking is already complete"},
	{booking.ErrInvalidPatch, http.StatusBadRequest, "invalid_update", "Invalid update"},
	{booking.ErrNotAtCheckout, http.StatusConflict, "not_at_checkout", "Booking is not ready for checkout"},
	{booking.ErrAddAnotherDisabled, http.StatusForbidden, "add_another_disabled", "Adding another activity is disabled"},
	{booking.ErrNothingInCart, http.StatusBadRequest, "nothing_in_cart", "No activity has been added yet"},
	{booking.ErrNoAlternative, http.StatusBadRequest, "no_alternative", "This activity has no alternative"},
	{booking.ErrUnknownStep, http.StatusBadRequest, "unknown_step", "Unknown step"},
	{catalog.ErrUnknownParam, http.StatusBadRequest, "unknown_param", "Unknown booking parameter"},
	{catalog.ErrNegativeQuantity, http.StatusBadRequest, "invalid_quantity", "Quantities must not be negative"},
	{caldate.ErrInvalidDate, http.StatusBadRequest, "invalid_date", "Invalid date"},
	{caldate.ErrInvertedSpan, http.StatusBadRequest, "invalid_date", "End date is before start date"},
	{contact.ErrNameRequired, http.StatusBadRequest, "name_required", "Name is required"},
	{contact.ErrEmailInvalid, http.StatusBadRequest, "invalid_email", "A valid email is required"},
	{contact.ErrSubjectRequired, http.StatusBadRequest, "subject_required", "Subject is required"},
	{contact.ErrMessageRequired, http.StatusBadRequest, "message_required", "Message is required"},
	{contact.ErrUnknownType, http.StatusBadRequest, "unknown_request_type", "Unknown request type"},
	{assistant.ErrUnknownTool, http.StatusNotFound, "unknown_tool", "Unknown tool"},
	{assistant.ErrInvalidArgs, http.StatusBadRequest, "invalid_arguments", "Invalid tool arguments"},
	{assistant.ErrEmptyMessage, http.StatusBadRequest, "empty_message", "Message must not be empty"},
	{assistant.ErrAssistantDisabled, http.StatusServiceUnavailable, "assistant_disabled", "The assistant is not available"},
}

// AbortWithMappedError picks the status for a use case error. Rate limits
// carry Retry-After; upstream 4xx statuses pass through, other upstream
// failures become 502.
func AbortWithMappedError(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			abortWithCode(c, m.status, err, m.code, m.msg)
			return
		}
	}

	if ie, ok := infra.AsError(err); ok {
		switch ie.Kind {
		case infra.KindRateLimited:
			if ie.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(ie.RetryAfter.Seconds()))))
			}
			abortWithCode(c, http.StatusTooManyRequests, err, "rate_limited", "Too many requests, please retry shortly")
			return
		case infra.KindUpstream:
			status := http.StatusBadGateway
			if ie.Status >= 400 && ie.Status < 500 {
				status = ie.Status
			}
			abortWithCode(c, status, err, "upstream", "The reservation system rejected the request")
			return
		case infra.KindTransport, infra.KindDecode:
			abortWithCode(c, http.StatusBadGateway, err, "upstream", "The reservation system is unavailable")
			return
		case infra.KindNotFound:
			abortWithCode(c, http.StatusNotFound, err, "not_found", "Not found")
			return
		case infra.KindConflict, infra.KindLocked:
			abortWithCode(c, http.StatusConflict, err, "conflict", "Request conflicts with another one, please retry")
			return
		}
	}

	abortWithCode(c, http.StatusInternalServerError, err, "internal", "Internal error")
}

func abortWithCode(c *gin.Context, status int, err error, code, msg string) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
