package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetcrumb/bakeshop/internal/domain/errors"
	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	"github.com/sweetcrumb/bakeshop/internal/server/http/dto"
)

// OrderHandler processes order placement and management.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.Name, req.Phone, req.Items, req.Notes)
	if err != nil {
		writeError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success: true,
		Message: "Order created successfully",
		OrderID: order.ID,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch orders")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.OrderFromModel(order))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	status, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		writeError(c, domainErrors.ErrInvalidStatus, "")
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), id, status); err != nil {
		writeError(c, err, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Order status updated",
	})
}
