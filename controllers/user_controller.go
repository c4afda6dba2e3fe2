package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/middleware"
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/store"
)

// UserController exposes staff user management and customer profile
// editing.
type UserController struct {
	Store    *store.Store
	Sessions *services.SessionManager
}

// CreateStaffRequest represents the request body for creating a staff user
type CreateStaffRequest struct {
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Name     string      `json:"name" binding:"omitempty"`
	Role     models.Role `json:"role" binding:"required"`
}

// UpdateProfileRequest represents the request body for editing a profile
type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"omitempty"`
	Mobile string `json:"mobile" binding:"omitempty"`
	Avatar string `json:"avatar" binding:"omitempty"`
}

// ListUsers handles GET /api/v1/users - lists every account (staff only)
func (ctl *UserController) ListUsers(c *gin.Context) {
	users := ctl.Store.ListUsers()
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = sanitizeUser(u)
	}
	respondData(c, http.StatusOK, out)
}

// CreateStaff handles POST /api/v1/users/staff - creates a pre-approved
// account with a staff role
func (ctl *UserController) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email, password and role are required")
		return
	}

	user, err := ctl.Sessions.CreateStaff(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, sanitizeUser(user))
}

// ApproveUser handles POST /api/v1/users/:id/approve - unlocks a pending
// customer account
func (ctl *UserController) ApproveUser(c *gin.Context) {
	user, ok := ctl.Store.GetUser(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	user.Approved = true
	if err := ctl.Store.UpdateUser(user); err != nil {
		respondServiceError(c, err)
		return
	}
	ctl.Sessions.Refresh(user)
	respondData(c, http.StatusOK, sanitizeUser(user))
}

// UpdateProfile handles PUT /api/v1/users/me - edits the session user's
// own profile
func (ctl *UserController) UpdateProfile(c *gin.Context) {
	current, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	user, ok := ctl.Store.GetUser(current.ID)
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if err := ctl.Store.UpdateUser(user); err != nil {
		respondServiceError(c, err)
		return
	}
	ctl.Sessions.Refresh(user)
	respondData(c, http.StatusOK, sanitizeUser(user))
}

// DeleteUser handles DELETE /api/v1/users/:id - removes an account. The
// deletion is rejected while the user still owns orders; order history is
// never cascaded away.
func (ctl *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if ctl.Store.UserOwnsOrders(id) {
		respondError(c, http.StatusConflict, "CONSTRAINT_VIOLATION", "Cannot delete a user who owns orders")
		return
	}
	if err := ctl.Store.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

// sanitizeUser strips the password secret before a user leaves the API.
func sanitizeUser(user models.User) models.User {
	user.Password = ""
	return user
}
