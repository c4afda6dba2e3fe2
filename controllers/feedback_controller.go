package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/middleware"
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/store"
)

// FeedbackController exposes the append-only feedback log.
type FeedbackController struct {
	Store *store.Store
}

// SubmitFeedbackRequest represents the request body for leaving feedback
type SubmitFeedbackRequest struct {
	Text string `json:"text" binding:"required"`
}

// SubmitFeedback handles POST /api/v1/feedback
func (ctl *FeedbackController) SubmitFeedback(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Feedback text is required")
		return
	}

	fb, err := ctl.Store.AddFeedback(models.Feedback{
		UserID: user.ID,
		Text:   req.Text,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, fb)
}

// ListFeedback handles GET /api/v1/feedback (staff only)
func (ctl *FeedbackController) ListFeedback(c *gin.Context) {
	respondData(c, http.StatusOK, ctl.Store.ListFeedback())
}
