package api

import (
	"log/slog"
	"net/http"

	"booking-core/internal/domain/order"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.OrderCommands
}

func NewAdminHandler(cmds commands.OrderCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Expire stale holds
// @Description Expire every pending order whose hold window has passed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/orders/expire-stale [post]
func (h *AdminHandler) ExpireStale(c *gin.Context) {
	n, err := h.cmds.ExpireStale(c.Request.Context(), order.GlobalScope())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	slog.Info("manual expiry sweep",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.Int("expired", n))
	c.JSON(http.StatusOK, resdto.SweepResponse{Affected: n})
}

// @Summary Reconcile inventory ledger
// @Description Recompute committed quantities from paid orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/units/reconcile [post]
func (h *AdminHandler) ReconcileLedger(c *gin.Context) {
	n, err := h.cmds.ReconcileLedger(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	slog.Info("manual ledger reconcile",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.Int("adjusted", n))
	c.JSON(http.StatusOK, resdto.SweepResponse{Affected: n})
}
