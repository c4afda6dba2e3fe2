package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servergreen991/designer-mom/models"
)

// submitOrderFor drives the wizard end to end for the given customer and
// returns the created order.
func submitOrderFor(t *testing.T, app *testApp, userID string) models.Order {
	t.Helper()

	app.workflow.StartDraft(userID)
	_, err := app.workflow.SetMeasurements(userID, models.Measurements{Age: 25, Sex: models.SexFemale, Height: 160})
	require.NoError(t, err)
	_, err = app.workflow.ToggleFabric(userID, models.Fabric{ID: "f1", Name: "Silk"})
	require.NoError(t, err)
	_, err = app.workflow.SelectDesign(userID, models.Design{ID: "d1", Name: "Anarkali"})
	require.NoError(t, err)
	_, err = app.workflow.GeneratePreviews(context.Background(), userID)
	require.NoError(t, err)
	_, err = app.workflow.ChooseFinal(userID, 0)
	require.NoError(t, err)
	order, err := app.workflow.Submit(userID)
	require.NoError(t, err)
	return order
}

func TestListOrdersScopedByRole(t *testing.T) {
	app := newTestApp(t)
	ctl := &OrderController{Store: app.store, Workflow: app.workflow}

	submitOrderFor(t, app, "user_approved")
	submitOrderFor(t, app, "someone_else")

	tests := []struct {
		name          string
		user          models.User
		expectedCount int
	}{
		{
			name:          "customer sees only own orders",
			user:          models.User{ID: "user_approved", Role: models.RoleCustomer},
			expectedCount: 1,
		},
		{
			name:          "staff sees all orders",
			user:          models.User{ID: "user_admin", Role: models.RoleAdmin},
			expectedCount: 2,
		},
		{
			name:          "customer without orders sees none",
			user:          models.User{ID: "user_pending", Role: models.RoleCustomer},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.GET("/orders", mockSessionMiddleware(tt.user), ctl.ListOrders)

			w := performJSON(router, http.MethodGet, "/orders", nil)
			assert.Equal(t, http.StatusOK, w.Code)

			response := parseResponse(t, w)
			assert.True(t, response["success"].(bool))
			data := response["data"].([]interface{})
			assert.Len(t, data, tt.expectedCount)
		})
	}
}

func TestGetOrderOwnership(t *testing.T) {
	app := newTestApp(t)
	ctl := &OrderController{Store: app.store, Workflow: app.workflow}
	order := submitOrderFor(t, app, "user_approved")

	tests := []struct {
		name           string
		user           models.User
		orderID        string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "owner reads own order",
			user:           models.User{ID: "user_approved", Role: models.RoleCustomer},
			orderID:        order.ID,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "staff reads any order",
			user:           models.User{ID: "user_tailor", Role: models.RoleTailor},
			orderID:        order.ID,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "other customer is rejected",
			user:           models.User{ID: "user_pending", Role: models.RoleCustomer},
			orderID:        order.ID,
			expectedStatus: http.StatusForbidden,
			expectedError:  "FORBIDDEN",
		},
		{
			name:           "unknown order",
			user:           models.User{ID: "user_admin", Role: models.RoleAdmin},
			orderID:        "missing",
			expectedStatus: http.StatusNotFound,
			expectedError:  "ORDER_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.GET("/orders/:id", mockSessionMiddleware(tt.user), ctl.GetOrder)

			w := performJSON(router, http.MethodGet, "/orders/"+tt.orderID, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedError != "" {
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
				return
			}
			data := response["data"].(map[string]interface{})
			assert.Equal(t, order.ID, data["id"])
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	app := newTestApp(t)
	ctl := &OrderController{Store: app.store, Workflow: app.workflow}
	order := submitOrderFor(t, app, "user_approved")

	admin := models.User{ID: "user_admin", Role: models.RoleAdmin}
	router := setupTestRouter()
	router.PUT("/orders/:id/status", mockSessionMiddleware(admin), ctl.UpdateStatus)

	tests := []struct {
		name           string
		orderID        string
		body           map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "skipping ahead is rejected",
			orderID:        order.ID,
			body:           map[string]interface{}{"status": "completed"},
			expectedStatus: http.StatusConflict,
			expectedError:  "CONSTRAINT_VIOLATION",
		},
		{
			name:           "unknown status value",
			orderID:        order.ID,
			body:           map[string]interface{}{"status": "shipped"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "missing status",
			orderID:        order.ID,
			body:           map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "unknown order",
			orderID:        "missing",
			body:           map[string]interface{}{"status": "approved"},
			expectedStatus: http.StatusNotFound,
			expectedError:  "NOT_FOUND",
		},
		{
			name:           "pending to approved",
			orderID:        order.ID,
			body:           map[string]interface{}{"status": "approved"},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPut, "/orders/"+tt.orderID+"/status", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedError != "" {
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
				return
			}
			data := response["data"].(map[string]interface{})
			assert.Equal(t, "approved", data["status"])
			updates := data["statusUpdates"].([]interface{})
			assert.Len(t, updates, 2)
			last := updates[1].(map[string]interface{})
			assert.Equal(t, "Order approved by admin.", last["message"])
		})
	}
}

func TestUpdateOrderPreservesStatusAndHistory(t *testing.T) {
	app := newTestApp(t)
	ctl := &OrderController{Store: app.store, Workflow: app.workflow}
	order := submitOrderFor(t, app, "user_approved")

	admin := models.User{ID: "user_admin", Role: models.RoleAdmin}
	router := setupTestRouter()
	router.PUT("/orders/:id", mockSessionMiddleware(admin), ctl.UpdateOrder)

	body := map[string]interface{}{
		"measurements":    map[string]interface{}{"age": 30, "sex": "female", "waist": 72},
		"selectedFabrics": []map[string]interface{}{{"id": "f2", "name": "Velvet"}},
		"selectedDesign":  map[string]interface{}{"id": "d2", "name": "Lehenga"},
	}
	w := performJSON(router, http.MethodPut, "/orders/"+order.ID, body)
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "user_approved", data["userId"])
	assert.Equal(t, "Velvet", data["selectedFabrics"].([]interface{})[0].(map[string]interface{})["name"])
	// Previews and final choice survive a detail edit that omits them.
	assert.Len(t, data["generatedDesigns"].([]interface{}), 4)
	assert.Equal(t, order.FinalChoiceURL, data["finalChoiceUrl"])

	// Too many fabrics.
	body["selectedFabrics"] = []map[string]interface{}{
		{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "d"},
	}
	w = performJSON(router, http.MethodPut, "/orders/"+order.ID, body)
	assert.Equal(t, http.StatusConflict, w.Code)
}
