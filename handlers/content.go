package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"terravista/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the public hero slides and blog.
type ContentHandler struct {
	Service content.ContentService
	Logger  *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc content.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{Service: svc, Logger: logger}
}

// ListHeroSlides returns the active slides in display order.
func (h *ContentHandler) ListHeroSlides(c *gin.Context) {
	slides, err := h.Service.ActiveSlides(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list hero slides", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load hero slides"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

// ListBlogPosts returns one page of published posts, newest first.
func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	var page int64 = 1
	if v := c.Query("page"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page", "details": err.Error()})
			return
		}
		page = parsed
	}

	posts, total, err := h.Service.PublishedPosts(c.Request.Context(), page)
	if err != nil {
		h.Logger.Error("failed to list blog posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load blog posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total, "page": page})
}

// GetBlogPost returns a single published post by slug.
func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	post, err := h.Service.PostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.Logger.Error("failed to fetch blog post", zap.Error(err), zap.String("slug", c.Param("slug")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog post"})
		return
	}
	c.JSON(http.StatusOK, post)
}
