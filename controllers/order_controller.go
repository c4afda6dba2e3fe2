package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/middleware"
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/store"
)

// OrderController exposes order listing and the staff-driven status state
// machine.
type OrderController struct {
	Store    *store.Store
	Workflow *services.Workflow
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderRequest represents the request body for an order detail edit
type UpdateOrderRequest struct {
	Measurements    models.Measurements `json:"measurements" binding:"required"`
	SelectedFabrics []models.Fabric     `json:"selectedFabrics" binding:"required"`
	SelectedDesign  models.Design       `json:"selectedDesign" binding:"required"`
	FinalChoiceURL  string              `json:"finalChoiceUrl" binding:"omitempty"`
}

// ListOrders handles GET /api/v1/orders - customers see their own orders,
// staff see everything.
func (ctl *OrderController) ListOrders(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	if user.Role.IsStaff() {
		respondData(c, http.StatusOK, ctl.Store.ListOrders())
		return
	}
	respondData(c, http.StatusOK, ctl.Store.ListOrdersByUser(user.ID))
}

// GetOrder handles GET /api/v1/orders/:id - owners and staff only.
func (ctl *OrderController) GetOrder(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	order, ok := ctl.Store.GetOrder(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}
	if !user.Role.IsStaff() && order.UserID != user.ID {
		respondError(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this order")
		return
	}
	respondData(c, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/v1/orders/:id/status (staff only). Only
// the valid next steps of the fulfillment pipeline are accepted; each one
// appends exactly one status update.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}
	if !req.Status.Valid() {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown order status")
		return
	}

	order, err := ctl.Workflow.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// UpdateOrder handles PUT /api/v1/orders/:id (staff only) - full
// replacement of the editable order details. Owner, status and status
// history are preserved.
func (ctl *OrderController) UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	updated := models.Order{
		ID:              c.Param("id"),
		Measurements:    req.Measurements,
		SelectedFabrics: req.SelectedFabrics,
		SelectedDesign:  req.SelectedDesign,
		FinalChoiceURL:  req.FinalChoiceURL,
	}
	order, err := ctl.Workflow.UpdateOrderDetails(updated)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}
