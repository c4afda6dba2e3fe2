package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/store"
	"github.com/servergreen991/designer-mom/utils"
)

// CatalogController exposes staff management of the fabric and design
// catalogs.
type CatalogController struct {
	Store  *store.Store
	Images services.ImageStore
}

// ListFabrics handles GET /api/v1/fabrics
func (ctl *CatalogController) ListFabrics(c *gin.Context) {
	respondData(c, http.StatusOK, ctl.Store.ListFabrics())
}

// AddFabric handles POST /api/v1/fabrics - multipart upload with a name
// and an image file (staff only)
func (ctl *CatalogController) AddFabric(c *gin.Context) {
	name, imageURL, ok := ctl.readCatalogUpload(c)
	if !ok {
		return
	}

	fabric, err := ctl.Store.AddFabric(models.Fabric{Name: name, ImageURL: imageURL})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, fabric)
}

// DeleteFabric handles DELETE /api/v1/fabrics/:id. Deletion is allowed
// even when orders reference the fabric - they keep their snapshots - but
// the response flags the references so the staff UI can warn.
func (ctl *CatalogController) DeleteFabric(c *gin.Context) {
	id := c.Param("id")
	referenced := ctl.fabricReferenced(id)

	if err := ctl.Store.DeleteFabric(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id, "referencedByOrders": referenced})
}

// ListDesigns handles GET /api/v1/designs
func (ctl *CatalogController) ListDesigns(c *gin.Context) {
	respondData(c, http.StatusOK, ctl.Store.ListDesigns())
}

// AddDesign handles POST /api/v1/designs (staff only)
func (ctl *CatalogController) AddDesign(c *gin.Context) {
	name, imageURL, ok := ctl.readCatalogUpload(c)
	if !ok {
		return
	}

	design, err := ctl.Store.AddDesign(models.Design{Name: name, ImageURL: imageURL})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, design)
}

// DeleteDesign handles DELETE /api/v1/designs/:id with the same warning
// semantics as DeleteFabric.
func (ctl *CatalogController) DeleteDesign(c *gin.Context) {
	id := c.Param("id")
	referenced := ctl.designReferenced(id)

	if err := ctl.Store.DeleteDesign(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id, "referencedByOrders": referenced})
}

// readCatalogUpload parses the shared multipart form of fabric and design
// uploads and pushes the image through the image store.
func (ctl *CatalogController) readCatalogUpload(c *gin.Context) (name, imageURL string, ok bool) {
	name = c.PostForm("name")
	if name == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return "", "", false
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image file is required")
		return "", "", false
	}

	dataURL, err := utils.FileToDataURL(fileHeader)
	if err != nil {
		if uploadErr, isUpload := err.(*utils.FileUploadError); isUpload {
			respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
		} else {
			respondError(c, http.StatusBadRequest, "INVALID_FILE", "Could not read uploaded image")
		}
		return "", "", false
	}

	imageURL, err = ctl.Images.StoreImage(c.Request.Context(), dataURL)
	if err != nil {
		respondError(c, http.StatusBadGateway, "STORAGE_ERROR", "Failed to store uploaded image")
		return "", "", false
	}
	return name, imageURL, true
}

func (ctl *CatalogController) fabricReferenced(id string) []string {
	var orderIDs []string
	for _, o := range ctl.Store.ListOrders() {
		for _, f := range o.SelectedFabrics {
			if f.ID == id {
				orderIDs = append(orderIDs, o.ID)
				break
			}
		}
	}
	return orderIDs
}

func (ctl *CatalogController) designReferenced(id string) []string {
	var orderIDs []string
	for _, o := range ctl.Store.ListOrders() {
		if o.SelectedDesign.ID == id {
			orderIDs = append(orderIDs, o.ID)
		}
	}
	return orderIDs
}
