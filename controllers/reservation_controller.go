package controllers

import (
	"errors"
	"strings"

	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	reservations *services.ReservationService
	users        *services.UserService
}

func NewReservationController(reservations *services.ReservationService, users *services.UserService) *ReservationController {
	return &ReservationController{reservations: reservations, users: users}
}

// CreateReservation godoc
// @Summary Make reservation
// @Description Book a table for a date, time, and party size
// @Tags Reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateReservationRequest true "Reservation details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reservations [post]
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	userID := c.GetInt("user_id")
	customerName := ""
	if user, err := ctrl.users.FindByID(userID); err == nil {
		customerName = user.FullName()
	}

	reservation := ctrl.reservations.Create(userID, customerName, req)
	c.JSON(201, models.Response{Success: true, Message: "Reservation submitted successfully", Data: reservation})
}

// GetReservations godoc
// @Summary Get my reservations
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /reservations [get]
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Reservations retrieved successfully",
		Data:    ctrl.reservations.ListByUser(c.GetInt("user_id")),
	})
}

// GetAllReservations godoc
// @Summary Get all reservations
// @Description List every booking (Admin)
// @Tags Admin - Reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/reservations [get]
func (ctrl *ReservationController) GetAllReservations(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Reservations retrieved successfully",
		Data:    ctrl.reservations.List(),
	})
}

// UpdateReservationStatus godoc
// @Summary Update reservation status
// @Description Confirm or cancel a booking (Admin)
// @Tags Admin - Reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body models.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/reservations/{id}/status [patch]
func (ctrl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var req models.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	status := models.ReservationStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	reservation, err := ctrl.reservations.UpdateStatus(c.Param("id"), status)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Reservation not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update reservation"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Reservation updated successfully", Data: reservation})
}
