package controllers

import (
	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
	users   *services.UserService
}

func NewReviewController(reviews *services.ReviewService, users *services.UserService) *ReviewController {
	return &ReviewController{reviews: reviews, users: users}
}

// GetReviews godoc
// @Summary Get reviews
// @Description Get the review feed, newest first, with the aggregate rating
// @Tags Reviews
// @Produce json
// @Success 200 {object} models.Response
// @Router /reviews [get]
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Reviews retrieved successfully",
		Data: gin.H{
			"reviews": ctrl.reviews.List(),
			"rating":  ctrl.reviews.Rating(),
		},
	})
}

// CreateReview godoc
// @Summary Submit review
// @Description Leave a 1-5 star rating with an optional comment
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Rating must be between 1 and 5"})
		return
	}

	userID := c.GetInt("user_id")
	username := ""
	if user, err := ctrl.users.FindByID(userID); err == nil {
		username = user.FullName()
	}

	review := ctrl.reviews.Add(userID, username, req)
	c.JSON(201, models.Response{Success: true, Message: "Review submitted successfully", Data: review})
}
