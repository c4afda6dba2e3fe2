package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/store"
)

// respondData writes the success envelope used across the API.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes the error envelope used across the API.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError maps the core error taxonomy onto HTTP statuses.
// Everything here is recoverable by the caller; the store state is
// unchanged when any of these come back.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, services.ErrDuplicateEmail):
		respondError(c, http.StatusConflict, "DUPLICATE_EMAIL", "An account with this email already exists")
	case errors.Is(err, services.ErrInvalidFormat):
		respondError(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
	case errors.Is(err, services.ErrConstraintViolation):
		respondError(c, http.StatusConflict, "CONSTRAINT_VIOLATION", err.Error())
	case errors.Is(err, services.ErrCollaboratorFailure):
		respondError(c, http.StatusBadGateway, "GENERATION_FAILED", err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "No entity with that id exists")
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
