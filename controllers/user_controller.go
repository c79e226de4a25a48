package controllers

import (
	"errors"
	"strconv"

	"table-tap/models"
	"table-tap/services"
	"table-tap/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetAllUsers godoc
// @Summary Get all users
// @Description List the staff directory and customers (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    ctrl.users.List(),
	})
}

// GetUserByID godoc
// @Summary Get user by ID
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	user, err := ctrl.users.FindByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "User retrieved successfully", Data: user})
}

// CreateUser godoc
// @Summary Create user
// @Description Create a staff or customer account (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User data"
// @Success 201 {object} models.Response
// @Router /admin/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create user"})
		return
	}

	user, err := ctrl.users.Create(models.User{
		Email:      req.Email,
		Password:   hash,
		Role:       req.Role,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		HireDate:   req.HireDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Email already exists"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create user"})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "User created successfully", Data: user})
}

// UpdateUser godoc
// @Summary Update user
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [patch]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.users.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(400, gin.H{"success": false, "message": "Email already exists"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update user"})
		}
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "User updated successfully", Data: user})
}

// DeleteUser godoc
// @Summary Delete user
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctrl.users.Delete(id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "User deleted successfully"})
}
