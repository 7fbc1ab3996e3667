package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/services"
)

// MediaHandler handles image uploads from the admin forms
type MediaHandler struct {
	media    *services.MediaService
	maxBytes int64
	logger   *logrus.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(media *services.MediaService, maxBytes int64, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{media: media, maxBytes: maxBytes, logger: logger}
}

// Upload accepts a multipart image and stores it, returning only the URL.
// The folder form field picks the storage prefix; gallery uploads also get
// a thumbnail.
// @Summary Upload image
// @Tags Media
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "JPEG or PNG image"
// @Param folder formData string false "Storage folder"
// @Success 201 {object} services.UploadResult
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /admin/uploads [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file field is required", "details": err.Error()})
		return
	}

	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	}

	var result *services.UploadResult
	if folder == "gallery" {
		result, err = h.media.UploadGalleryImage(c.Request.Context(), fileHeader.Filename, contentType, data)
	} else {
		result, err = h.media.Upload(c.Request.Context(), folder, fileHeader.Filename, contentType, data)
	}
	if err != nil {
		h.logger.WithError(err).Warn("Upload failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}
