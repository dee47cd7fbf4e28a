package api

import (
	"net/http"
	"strconv"

	"saba-booking/internal/domain/catalog"
	reqdto "saba-booking/internal/handler/dto/request"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/httperr"
	"saba-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	cats, err := h.q.Categories(c.Request.Context())
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromCategories(cats)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": res})
}

// @Summary List items
// @Description Lists bookable items. With start_date, end_date and param[<key>]=<n> each item carries a rate.
// @Tags catalog
// @Produce json
// @Param category_id query int false "Category ID"
// @Param item_id query []int false "Item IDs"
// @Param keyword query string false "Keyword"
// @Param start_date query string false "Start date (YYYYMMDD)"
// @Param end_date query string false "End date (YYYYMMDD, inclusive)"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/items [get]
func (h *CatalogHandler) Items(c *gin.Context) {
	var req reqdto.ItemsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := bindParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid param quantity", nil)
		return
	}
	req.Params = params
	q, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	items, err := h.q.Items(c.Request.Context(), q)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": resdto.FromItems(items)})
}

// @Summary Get item
// @Tags catalog
// @Produce json
// @Param id path int true "Item ID"
// @Param start_date query string false "Start date (YYYYMMDD)"
// @Param end_date query string false "End date (YYYYMMDD, inclusive)"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id} [get]
func (h *CatalogHandler) Item(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req reqdto.ItemsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := bindParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid param quantity", nil)
		return
	}
	req.Params = params
	q, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}

	var query *catalog.ItemQuery
	if q.Rated() {
		q.ItemIDs = []catalog.ItemID{id}
		query = &q
	}
	item, err := h.q.Item(c.Request.Context(), id, query)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItem(*item))
}

// @Summary Item calendar
// @Description Stock per date. Without dates the next 30 days are returned.
// @Tags catalog
// @Produce json
// @Param id path int true "Item ID"
// @Param start_date query string false "Start date (YYYYMMDD)"
// @Param end_date query string false "End date (YYYYMMDD, inclusive)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/items/{id}/calendar [get]
func (h *CatalogHandler) Calendar(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	span, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	cal, err := h.q.Calendar(c.Request.Context(), id, span)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(cal))
}

// @Summary Booking form
// @Description Customer fields of the booking form in display order.
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.FormResponse
// @Router /api/booking/form [get]
func (h *CatalogHandler) BookingForm(c *gin.Context) {
	form, err := h.q.BookingForm(c.Request.Context())
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromForm(form)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func itemID(c *gin.Context) (catalog.ItemID, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return 0, false
	}
	return catalog.ItemID(id), true
}

// bindParams reads param[<key>]=<n> query pairs.
func bindParams(c *gin.Context) (map[string]int, error) {
	raw := c.QueryMap("param")
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]int, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			if err == nil {
				err = catalog.ErrNegativeQuantity
			}
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}
