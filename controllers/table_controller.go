package controllers

import (
	"errors"
	"strconv"

	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{tables: tables}
}

// GetTables godoc
// @Summary Get tables
// @Tags Admin - Tables
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/tables [get]
func (ctrl *TableController) GetTables(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Tables retrieved successfully",
		Data:    ctrl.tables.List(),
	})
}

// CreateTable godoc
// @Summary Create table
// @Tags Admin - Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateTableRequest true "Table data"
// @Success 201 {object} models.Response
// @Router /admin/tables [post]
func (ctrl *TableController) CreateTable(c *gin.Context) {
	var req models.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	table, err := ctrl.tables.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrTableNumberTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Table number already in use"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create table"})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Table created successfully", Data: table})
}

// UpdateTable godoc
// @Summary Update table
// @Tags Admin - Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param request body models.UpdateTableRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/tables/{id} [patch]
func (ctrl *TableController) UpdateTable(c *gin.Context) {
	var req models.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	table, err := ctrl.tables.Update(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Table not found"})
		case errors.Is(err, services.ErrTableNumberTaken):
			c.JSON(400, gin.H{"success": false, "message": "Table number already in use"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update table"})
		}
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Table updated successfully", Data: table})
}

// DeleteTable godoc
// @Summary Delete table
// @Tags Admin - Tables
// @Security BearerAuth
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/tables/{id} [delete]
func (ctrl *TableController) DeleteTable(c *gin.Context) {
	if err := ctrl.tables.Delete(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Table not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Table deleted successfully"})
}

// GetTableQRCode godoc
// @Summary Get table QR code
// @Description PNG QR code linking customers to the menu with the table preselected (Admin)
// @Tags Admin - Tables
// @Security BearerAuth
// @Produce png
// @Param id path string true "Table ID"
// @Param size query int false "Image size in pixels"
// @Success 200 {string} binary "PNG image"
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/tables/{id}/qrcode [get]
func (ctrl *TableController) GetTableQRCode(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))

	png, err := ctrl.tables.QRCode(c.Param("id"), size)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Table not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate QR code"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(200, "image/png", png)
}
