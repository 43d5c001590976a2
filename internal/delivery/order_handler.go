package delivery

import (
	"net/http"
	"shop_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase domain.OrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc domain.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	orders := router.Group("/orders")
	{
		orders.POST("", h.PlaceOrder)
	}
}

// PlaceOrder handles POST /api/v1/orders. The gateway authenticates the
// caller and forwards the resolved customer id in the X-User-ID header.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	customerID := c.GetHeader("X-User-ID")
	if customerID == "" {
		h.log.Error("X-User-ID header is missing")
		ErrorResponse(c, http.StatusUnauthorized, "unauthenticated", "User identification missing")
		return
	}
	h.log.Infof("Processing order submission for user %s", customerID)

	var submission domain.OrderSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		h.log.Warnf("Failed to bind order submission for user %s: %v", customerID, err)
		ErrorResponse(c, http.StatusBadRequest, string(domain.KindValidation), "fields incorrect")
		return
	}

	confirmation, err := h.useCase.PlaceOrder(c.Request.Context(), customerID, submission)
	if err != nil {
		h.log.Warnf("Order placement failed for user %s: %v", customerID, err)
		FailFromError(c, err)
		return
	}

	h.log.Infof("Order %s placed successfully for user %s", confirmation.OrderID, customerID)
	SuccessResponse(c, http.StatusOK, "order created successfully", confirmation)
}
