package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/services"
)

// BackupController exposes whole-dataset export and import. Import is
// destructive; the client is expected to confirm with the operator before
// calling it.
type BackupController struct {
	Backup *services.BackupService
}

// Export handles GET /api/v1/backup (staff only) - the full dataset as
// one document.
func (ctl *BackupController) Export(c *gin.Context) {
	respondData(c, http.StatusOK, ctl.Backup.Export())
}

// Import handles POST /api/v1/backup (staff only) - wholesale replace of
// every collection, then a forced logout.
func (ctl *BackupController) Import(c *gin.Context) {
	document, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Could not read request body")
		return
	}

	if err := ctl.Backup.Import(document); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"imported": true, "state": services.StateAnonymous})
}
