package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/store"
)

// SettingsController exposes the branding and theme singletons. Reads are
// open to any session; writes are staff-only and replace the singleton
// wholesale.
type SettingsController struct {
	Store *store.Store
}

// GetAppSettings handles GET /api/v1/settings
func (ctl *SettingsController) GetAppSettings(c *gin.Context) {
	respondData(c, http.StatusOK, ctl.Store.AppSettings())
}

// UpdateAppSettings handles PUT /api/v1/settings (staff only)
func (ctl *SettingsController) UpdateAppSettings(c *gin.Context) {
	var settings models.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settings payload")
		return
	}
	if err := ctl.Store.SetAppSettings(settings); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, settings)
}

// GetTheme handles GET /api/v1/theme
func (ctl *SettingsController) GetTheme(c *gin.Context) {
	respondData(c, http.StatusOK, ctl.Store.Theme())
}

// UpdateTheme handles PUT /api/v1/theme (staff only)
func (ctl *SettingsController) UpdateTheme(c *gin.Context) {
	var theme models.Theme
	if err := c.ShouldBindJSON(&theme); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid theme payload")
		return
	}
	if err := ctl.Store.SetTheme(theme); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, theme)
}
