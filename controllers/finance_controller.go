package controllers

import (
	"time"

	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	finances *services.FinanceService
}

func NewFinanceController(finances *services.FinanceService) *FinanceController {
	return &FinanceController{finances: finances}
}

// GetTransactions godoc
// @Summary Get transactions
// @Description List the transaction ledger (Admin)
// @Tags Admin - Finances
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/finances/transactions [get]
func (ctrl *FinanceController) GetTransactions(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Transactions retrieved successfully",
		Data:    ctrl.finances.List(),
	})
}

// CreateTransaction godoc
// @Summary Record transaction
// @Description Record a manual revenue or expense entry (Admin)
// @Tags Admin - Finances
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateTransactionRequest true "Transaction"
// @Success 201 {object} models.Response
// @Router /admin/finances/transactions [post]
func (ctrl *FinanceController) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	txn := ctrl.finances.Add(req)
	c.JSON(201, models.Response{Success: true, Message: "Transaction recorded successfully", Data: txn})
}

// GetSummary godoc
// @Summary Get financial summary
// @Description Revenue, expenses, net profit, and the next-month projection (Admin)
// @Tags Admin - Finances
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/finances/summary [get]
func (ctrl *FinanceController) GetSummary(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Financial summary retrieved successfully",
		Data: gin.H{
			"summary":    ctrl.finances.Summary(),
			"projection": ctrl.finances.Projection(time.Now()),
		},
	})
}
