package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/services"
)

// AuthController exposes login, registration and session inspection.
type AuthController struct {
	Sessions *services.SessionManager
}

// CredentialsRequest represents the request body for login and register
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	user, err := ctl.Sessions.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"user":  sanitizeUser(user),
		"state": ctl.Sessions.State(),
	})
}

// Register handles POST /api/v1/auth/register - creates an unapproved
// customer account. The caller is routed to the pending-approval view,
// not logged in.
func (ctl *AuthController) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	user, err := ctl.Sessions.Register(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, sanitizeUser(user))
}

// Logout handles POST /api/v1/auth/logout - clears the session
// unconditionally and is safe to call when already anonymous.
func (ctl *AuthController) Logout(c *gin.Context) {
	ctl.Sessions.Logout()
	respondData(c, http.StatusOK, gin.H{"state": services.StateAnonymous})
}

// Session handles GET /api/v1/auth/session - reports the current session
// user and derived state for the presentation layer.
func (ctl *AuthController) Session(c *gin.Context) {
	state := ctl.Sessions.State()
	payload := gin.H{"state": state}
	if user, ok := ctl.Sessions.Current(); ok {
		payload["user"] = sanitizeUser(user)
	}
	respondData(c, http.StatusOK, payload)
}
