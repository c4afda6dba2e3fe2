package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/middleware"
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/store"
)

// WorkflowController exposes the four-stage design wizard. Every route is
// gated to an approved customer; staff have no draft of their own.
type WorkflowController struct {
	Store    *store.Store
	Workflow *services.Workflow
}

// SelectFabricRequest represents the request body for toggling a fabric
type SelectFabricRequest struct {
	FabricID string `json:"fabricId" binding:"required"`
}

// SelectDesignRequest represents the request body for picking a design
type SelectDesignRequest struct {
	DesignID string `json:"designId" binding:"required"`
}

// EditPreviewRequest represents the request body for editing one preview
type EditPreviewRequest struct {
	Index       int    `json:"index"`
	Instruction string `json:"instruction" binding:"required"`
}

// ChooseFinalRequest represents the request body for the final choice
type ChooseFinalRequest struct {
	Index int `json:"index"`
}

// StartDraft handles POST /api/v1/draft - begins a fresh draft,
// replacing any existing one.
func (ctl *WorkflowController) StartDraft(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}
	respondData(c, http.StatusCreated, ctl.Workflow.StartDraft(user.ID))
}

// GetDraft handles GET /api/v1/draft
func (ctl *WorkflowController) GetDraft(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}
	draft, ok := ctl.Workflow.Draft(user.ID)
	if !ok {
		respondError(c, http.StatusNotFound, "NO_DRAFT", "No draft in progress")
		return
	}
	respondData(c, http.StatusOK, draft)
}

// DiscardDraft handles DELETE /api/v1/draft
func (ctl *WorkflowController) DiscardDraft(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}
	ctl.Workflow.DiscardDraft(user.ID)
	respondData(c, http.StatusOK, gin.H{"discarded": true})
}

// SetMeasurements handles PUT /api/v1/draft/measurements
func (ctl *WorkflowController) SetMeasurements(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var m models.Measurements
	if err := c.ShouldBindJSON(&m); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid measurements")
		return
	}

	draft, err := ctl.Workflow.SetMeasurements(user.ID, m)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, draft)
}

// ToggleFabric handles POST /api/v1/draft/fabrics - selects the fabric,
// or deselects it when already picked.
func (ctl *WorkflowController) ToggleFabric(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req SelectFabricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Fabric id is required")
		return
	}

	fabric, ok := ctl.Store.GetFabric(req.FabricID)
	if !ok {
		respondError(c, http.StatusNotFound, "FABRIC_NOT_FOUND", "Fabric not found")
		return
	}

	draft, err := ctl.Workflow.ToggleFabric(user.ID, fabric)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, draft)
}

// SelectDesign handles POST /api/v1/draft/design
func (ctl *WorkflowController) SelectDesign(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req SelectDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Design id is required")
		return
	}

	design, ok := ctl.Store.GetDesign(req.DesignID)
	if !ok {
		respondError(c, http.StatusNotFound, "DESIGN_NOT_FOUND", "Design not found")
		return
	}

	draft, err := ctl.Workflow.SelectDesign(user.ID, design)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, draft)
}

// GeneratePreviews handles POST /api/v1/draft/previews - renders all four
// view angles and advances the draft to the preview stage.
func (ctl *WorkflowController) GeneratePreviews(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	draft, err := ctl.Workflow.GeneratePreviews(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, draft)
}

// EditPreview handles POST /api/v1/draft/previews/edit - applies a
// free-text instruction to one preview slot.
func (ctl *WorkflowController) EditPreview(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req EditPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Edit instruction is required")
		return
	}

	draft, err := ctl.Workflow.EditPreview(c.Request.Context(), user.ID, req.Index, req.Instruction)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, draft)
}

// ChooseFinal handles POST /api/v1/draft/final
func (ctl *WorkflowController) ChooseFinal(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req ChooseFinalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Preview index is required")
		return
	}

	draft, err := ctl.Workflow.ChooseFinal(user.ID, req.Index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, draft)
}

// Submit handles POST /api/v1/draft/submit - creates the order and
// discards the draft.
func (ctl *WorkflowController) Submit(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	order, err := ctl.Workflow.Submit(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, order)
}
