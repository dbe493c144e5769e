package api

import (
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UnitHandler struct {
	q queries.CatalogQueries
}

func NewUnitHandler(q queries.CatalogQueries) *UnitHandler {
	return &UnitHandler{q: q}
}

// @Summary List units
// @Description List bookable units with live availability
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param kind query string false "table or ticket_pool"
// @Param zone query string false "Zone"
// @Param event_date query string false "Event date (YYYY-MM-DD)"
// @Param include_inactive query bool false "Include closed units"
// @Success 200 {array} resdto.UnitResponse
// @Failure 400 {object} httperr.Response
// @Router /units [get]
func (h *UnitHandler) List(c *gin.Context) {
	var q reqdto.ListUnitsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalid(c, err, "Invalid query")
		return
	}

	views, err := h.q.ListUnits(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromUnitViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get unit
// @Description Get a unit with its live availability
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} resdto.UnitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}

	view, err := h.q.GetUnit(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromUnitView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
