package controllers

import (
	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// GetSettings godoc
// @Summary Get restaurant settings
// @Description Branding profile the storefront uses for theming
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Response
// @Router /settings [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Settings retrieved successfully",
		Data:    ctrl.settings.Get(),
	})
}

// UpdateSettings godoc
// @Summary Update restaurant settings
// @Tags Admin - Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /admin/settings [patch]
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	settings := ctrl.settings.Update(req)
	c.JSON(200, models.Response{Success: true, Message: "Settings updated successfully", Data: settings})
}
