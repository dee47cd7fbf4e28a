package api

import (
	"net/http"

	"saba-booking/internal/domain/catalog"
	reqdto "saba-booking/internal/handler/dto/request"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/httperr"
	"saba-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Contact the operator
// @Description Stores a contact request for requests that cannot be booked online.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact request"
// @Success 201 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	id, err := h.cmds.Submit(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ContactResponse{
		RequestID: id.String(),
		Status:    "received",
		WhatsApp:  catalog.OperatorWhatsApp,
	})
}
