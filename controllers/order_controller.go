package controllers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
	users  *services.UserService
}

func NewOrderController(orders *services.OrderService, users *services.UserService) *OrderController {
	return &OrderController{orders: orders, users: users}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

// Checkout godoc
// @Summary Checkout
// @Description Create a pending order from the current cart; the cart is cleared on success
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	customerName := ""
	if user, err := ctrl.users.FindByID(userID); err == nil {
		customerName = user.FullName()
	}

	order, err := ctrl.orders.Checkout(userID, customerName, req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Order created successfully", Data: order})
}

// GetOrder godoc
// @Summary Track order
// @Description Get an order with its status step indicator
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	tracking, err := ctrl.orders.Tracking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderFetchTimeout) {
			c.JSON(504, gin.H{"success": false, "message": "Order lookup timed out, please retry"})
			return
		}
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order retrieved successfully", Data: tracking})
}

// GetHistory godoc
// @Summary Get order history
// @Description Get the current user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetHistory(c *gin.Context) {
	orders := ctrl.orders.History(c.GetInt("user_id"), strings.TrimSpace(c.Query("status")))
	c.JSON(200, models.Response{Success: true, Message: "Orders retrieved successfully", Data: orders})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order id or customer"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := ctrl.getPaginationParams(c, 10)

	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))

	orders := ctrl.orders.ListAll(status, search)
	total := len(orders)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders[offset:end],
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get order details (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderFetchTimeout) {
			c.JSON(504, gin.H{"success": false, "message": "Order lookup timed out, please retry"})
			return
		}
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order retrieved successfully", Data: order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Move an order one step forward, or cancel it while non-terminal (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Param("id"), models.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status))))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(400, gin.H{"success": false, "message": "Unknown order status"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(409, gin.H{"success": false, "message": "Invalid status transition"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		}
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Order status updated successfully",
		Data: gin.H{
			"id":     order.ID,
			"status": order.Status,
		},
	})
}
