package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servergreen991/designer-mom/models"
)

// performUpload posts a multipart catalog upload with an optional name and
// file.
func performUpload(t *testing.T, router *gin.Engine, path, name, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if name != "" {
		require.NoError(t, writer.WriteField("name", name))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddFabricUpload(t *testing.T) {
	pngBytes := []byte("\x89PNG\r\n\x1a\nfakeimagedata")

	tests := []struct {
		name           string
		fabricName     string
		filename       string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid png upload",
			fabricName:     "Banarasi Silk",
			filename:       "silk.png",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "valid jpeg upload",
			fabricName:     "Cotton",
			filename:       "cotton.jpg",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			fabricName:     "",
			filename:       "silk.png",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "missing file",
			fabricName:     "Silk",
			filename:       "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "unsupported format",
			fabricName:     "Silk",
			filename:       "silk.gif",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "INVALID_FILE_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			ctl := &CatalogController{Store: app.store, Images: app.images}

			router := setupTestRouter()
			router.POST("/fabrics", ctl.AddFabric)

			w := performUpload(t, router, "/fabrics", tt.fabricName, tt.filename, pngBytes)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedError != "" {
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
				assert.Empty(t, app.store.ListFabrics())
				return
			}

			data := response["data"].(map[string]interface{})
			assert.Equal(t, tt.fabricName, data["name"])
			assert.NotEmpty(t, data["id"])
			// The upload went through the image store, not straight into
			// the catalog.
			assert.NotEmpty(t, data["imageUrl"])
			assert.Len(t, app.images.Stored(), 1)
		})
	}
}

func TestDeleteFabricFlagsOrderReferences(t *testing.T) {
	app := newTestApp(t)
	ctl := &CatalogController{Store: app.store, Images: app.images}

	fabric, err := app.store.AddFabric(models.Fabric{Name: "Silk"})
	require.NoError(t, err)

	// Build an order that snapshots the fabric.
	app.workflow.StartDraft("user_approved")
	_, err = app.workflow.SetMeasurements("user_approved", models.Measurements{Age: 20, Sex: models.SexFemale})
	require.NoError(t, err)
	_, err = app.workflow.ToggleFabric("user_approved", fabric)
	require.NoError(t, err)
	_, err = app.workflow.SelectDesign("user_approved", models.Design{ID: "d1", Name: "Saree"})
	require.NoError(t, err)
	order := submitDraft(t, app, "user_approved")

	router := setupTestRouter()
	router.DELETE("/fabrics/:id", ctl.DeleteFabric)

	w := performJSON(router, http.MethodDelete, "/fabrics/"+fabric.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, fabric.ID, data["deleted"])
	referenced := data["referencedByOrders"].([]interface{})
	require.Len(t, referenced, 1)
	assert.Equal(t, order.ID, referenced[0])

	// The catalog entry is gone but the order keeps its snapshot.
	assert.Empty(t, app.store.ListFabrics())
	kept, ok := app.store.GetOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, "Silk", kept.SelectedFabrics[0].Name)

	// Deleting again is a NOT_FOUND.
	w = performJSON(router, http.MethodDelete, "/fabrics/"+fabric.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// submitDraft finishes a draft whose selections were already made.
func submitDraft(t *testing.T, app *testApp, userID string) models.Order {
	t.Helper()

	_, err := app.workflow.GeneratePreviews(context.Background(), userID)
	require.NoError(t, err)
	_, err = app.workflow.ChooseFinal(userID, 0)
	require.NoError(t, err)
	order, err := app.workflow.Submit(userID)
	require.NoError(t, err)
	return order
}
