package controllers

import (
	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type LoyaltyController struct {
	loyalty *services.LoyaltyService
}

func NewLoyaltyController(loyalty *services.LoyaltyService) *LoyaltyController {
	return &LoyaltyController{loyalty: loyalty}
}

// GetLoyaltyStatus godoc
// @Summary Get loyalty status
// @Description Points earned from completed orders, current tier, and progress to the next
// @Tags Loyalty
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /loyalty [get]
func (ctrl *LoyaltyController) GetLoyaltyStatus(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Loyalty status retrieved successfully",
		Data:    ctrl.loyalty.Status(c.GetInt("user_id")),
	})
}
