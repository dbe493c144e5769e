package api

import (
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order hold
// @Description Reserve units for the caller. Priced orders stay pending until paid; zero-total orders are paid at once.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order lines"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateHold(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/orders/"+result.OrderID.String())
	c.JSON(http.StatusCreated, resdto.FromHoldResult(result))
}

// @Summary Get order status
// @Description Get an order with its lines. Lapsed holds are reported as expired.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}

	view, err := h.q.GetStatus(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List the caller's orders, pending first, then paid, expired and cancelled, newest first within each.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param owner_id query string false "Owner ID (admins only)"
// @Param limit query int false "Max results (default 50, max 100)"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var q reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalid(c, err, "Invalid query")
		return
	}

	views, err := h.q.ListForOwner(c.Request.Context(), actor, q.Owner(actor.UserID), q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Confirm payment
// @Description Submit a payment proof for a pending order.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Payment proof"
// @Success 200 {object} resdto.OrderStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders/{id}/payment [post]
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}
	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalid(c, bindErr, "Invalid request")
		return
	}

	result, err := h.cmds.ConfirmPayment(c.Request.Context(), actor, req.ToCommand(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderState(result))
}

// @Summary Cancel order
// @Description Cancel a pending order. Owners cancel their own; admins may cancel any.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderState(result))
}

// @Summary Transfer order
// @Description Hand a paid order to another user.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.TransferOrderRequest true "Transfer request"
// @Success 200 {object} resdto.OrderStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/transfer [post]
func (h *OrderHandler) Transfer(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}
	var req reqdto.TransferOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalid(c, bindErr, "Invalid request")
		return
	}

	result, err := h.cmds.Transfer(c.Request.Context(), actor, req.ToCommand(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderState(result))
}
