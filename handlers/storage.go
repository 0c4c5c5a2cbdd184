package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"terravista/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles image upload and deletion for the admin back office.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedFolders defines the permitted upload destinations.
var allowedFolders = map[string]bool{
	"properties": true,
	"floorplans": true,
	"hero":       true,
	"blog":       true,
}

// UploadFileHandler receives a multipart file and uploads it to the image
// store, returning the public key and display URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "details": err.Error()})
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(c, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct image URL", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": publicID, "url": url})
}

// DeleteFileHandler removes an uploaded image from the store.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.StorageSvc.DeleteFile(c, input.Key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
