package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/middleware"
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/store"
)

// MessageController exposes the append-only message log: order threads,
// direct messages and staff broadcasts.
type MessageController struct {
	Store *store.Store
}

// SendMessageRequest represents the request body for sending a message
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Text        string `json:"text" binding:"required"`
	OrderID     string `json:"orderId" binding:"omitempty"`
}

// SendMessage handles POST /api/v1/messages. A message with an order id
// joins that order's private thread; the broadcast recipient is reserved
// for staff.
func (ctl *MessageController) SendMessage(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Recipient and text are required")
		return
	}

	if req.RecipientID == models.BroadcastRecipient && !user.Role.IsStaff() {
		respondError(c, http.StatusForbidden, "FORBIDDEN", "Only staff can broadcast messages")
		return
	}

	if req.OrderID != "" {
		order, ok := ctl.Store.GetOrder(req.OrderID)
		if !ok {
			respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		if !user.Role.IsStaff() && order.UserID != user.ID {
			respondError(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to message on this order")
			return
		}
	}

	message, err := ctl.Store.AddMessage(models.Message{
		SenderID:    user.ID,
		RecipientID: req.RecipientID,
		Text:        req.Text,
		OrderID:     req.OrderID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, message)
}

// ListMessages handles GET /api/v1/messages - everything visible to the
// session user: broadcasts plus messages they sent or received. Staff see
// the full log.
func (ctl *MessageController) ListMessages(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	if user.Role.IsStaff() {
		respondData(c, http.StatusOK, ctl.Store.ListMessages())
		return
	}
	respondData(c, http.StatusOK, ctl.Store.ListMessagesForUser(user.ID))
}

// ListOrderMessages handles GET /api/v1/orders/:id/messages - the private
// thread of one order, for its owner and staff.
func (ctl *MessageController) ListOrderMessages(c *gin.Context) {
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
	respondData(c, http.StatusOK, ctl.Store.ListMessagesForOrder(order.ID))
}
