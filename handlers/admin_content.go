package handlers

import (
	"errors"
	"net/http"

	"terravista/models"
	"terravista/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminContentHandler serves the hero slide and blog CRUD behind the admin
// group.
type AdminContentHandler struct {
	Service content.ContentService
	Logger  *zap.Logger
}

// NewAdminContentHandler creates a new AdminContentHandler.
func NewAdminContentHandler(svc content.ContentService, logger *zap.Logger) *AdminContentHandler {
	return &AdminContentHandler{Service: svc, Logger: logger}
}

// ListSlides returns all slides, active or not, in display order.
func (h *AdminContentHandler) ListSlides(c *gin.Context) {
	slides, err := h.Service.AllSlides(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list hero slides", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list hero slides"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

// CreateSlide inserts a new hero slide.
func (h *AdminContentHandler) CreateSlide(c *gin.Context) {
	var slide models.HeroSlide
	if err := c.ShouldBindJSON(&slide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.CreateSlide(c.Request.Context(), &slide); err != nil {
		h.contentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slide)
}

// UpdateSlide replaces a hero slide's fields.
func (h *AdminContentHandler) UpdateSlide(c *gin.Context) {
	var slide models.HeroSlide
	if err := c.ShouldBindJSON(&slide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateSlide(c.Request.Context(), c.Param("id"), &slide)
	if err != nil {
		h.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSlide removes a hero slide.
func (h *AdminContentHandler) DeleteSlide(c *gin.Context) {
	if err := h.Service.DeleteSlide(c.Request.Context(), c.Param("id")); err != nil {
		h.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListPosts returns all posts including drafts.
func (h *AdminContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.Service.AllPosts(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list blog posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blog posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost inserts a new blog post, generating its slug from the title
// when none is supplied.
func (h *AdminContentHandler) CreatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if post.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := h.Service.CreatePost(c.Request.Context(), &post); err != nil {
		h.contentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces a blog post's fields.
func (h *AdminContentHandler) UpdatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdatePost(c.Request.Context(), c.Param("id"), &post)
	if err != nil {
		h.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePost removes a blog post.
func (h *AdminContentHandler) DeletePost(c *gin.Context) {
	if err := h.Service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		h.contentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminContentHandler) contentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrHighlightNotInTitle), errors.Is(err, content.ErrSlugTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("content operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "content operation failed"})
	}
}
