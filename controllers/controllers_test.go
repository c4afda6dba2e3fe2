package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/storage"
	"github.com/servergreen991/designer-mom/store"
)

// testApp bundles the in-memory dependency graph the controller tests run
// against.
type testApp struct {
	store    *store.Store
	sessions *services.SessionManager
	workflow *services.Workflow
	renderer *services.MockRenderer
	images   *services.MockImageStore
	backup   *services.BackupService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewStore(storage.NewMemoryPort())
	require.NoError(t, err, "Failed to build store")

	sessions := services.NewSessionManager(st, storage.NewMemorySlot())
	renderer := services.NewMockRenderer()
	images := services.NewMockImageStore()
	workflow := services.NewWorkflow(st, renderer, images)
	backup := services.NewBackupService(st, sessions)

	return &testApp{
		store:    st,
		sessions: sessions,
		workflow: workflow,
		renderer: renderer,
		images:   images,
		backup:   backup,
	}
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockSessionMiddleware places the given user in the Gin context the way
// middleware.RequireSession does.
func mockSessionMiddleware(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("current_user", user)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "Failed to parse response body")
	return response
}
