package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moldovancsaba/fancamera-sub002/internal/config"
	"github.com/moldovancsaba/fancamera-sub002/internal/service"
)

type Handler struct {
	service service.SlideshowService
	cfg     *config.Config
	log     *zap.Logger
}

func NewHandler(service service.SlideshowService, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

func (h *Handler) UploadSubmission(c *gin.Context) {
	eventID := c.Param("event")

	file, err := c.FormFile("image")
	if err != nil {
		h.log.Error("Failed to get file from form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	if file.Size > h.cfg.App.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !h.formatAllowed(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format. Only JPG, JPEG, PNG allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.log.Error("Failed to open file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		h.log.Error("Failed to read file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	contentType := file.Header.Get("Content-Type")

	sub, err := h.service.UploadSubmission(c.Request.Context(), eventID, fileBytes, file.Filename, contentType)
	if err != nil {
		h.log.Error("Failed to upload submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission uploaded successfully",
		"submission": sub,
	})
}

// GetSlideshow returns the next display cycle for an event. An absent limit
// falls back to the configured default; an explicit limit <= 0 yields an
// empty playlist.
func (h *Handler) GetSlideshow(c *gin.Context) {
	eventID := c.Param("event")

	limit := h.cfg.Slideshow.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	pl, err := h.service.BuildSlideshow(c.Request.Context(), eventID, limit)
	if err != nil {
		h.log.Error("Failed to build slideshow", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build slideshow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlist": pl})
}

func (h *Handler) ListSubmissions(c *gin.Context) {
	subs, err := h.service.ListSubmissions(c.Request.Context(), c.Param("event"))
	if err != nil {
		h.log.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

func (h *Handler) HideSubmission(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.HideSubmission(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to hide submission", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission hidden"})
}

func (h *Handler) GetImage(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	body, contentType, err := h.service.GetImage(c.Request.Context(), key)
	if err != nil {
		h.log.Error("Failed to fetch image", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *Handler) formatAllowed(ext string) bool {
	for _, allowed := range h.cfg.App.AllowedFormats {
		if ext == allowed {
			return true
		}
	}
	return false
}
