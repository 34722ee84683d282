package handler

import (
	"log"
	"net/http"

	"gatherly/internal/domain"
	"gatherly/internal/middleware"
	"gatherly/internal/repository"
	"gatherly/internal/service"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	svc      *service.InteractionService
	userRepo *repository.UserRepository
}

func NewInteractionHandler(svc *service.InteractionService, userRepo *repository.UserRepository) *InteractionHandler {
	return &InteractionHandler{svc: svc, userRepo: userRepo}
}

type rsvpRequest struct {
	Status string `json:"rsvp_status"`
}

type favoriteRequest struct {
	IsFavorited bool `json:"is_favorited"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

// SetRSVP handles POST /events/:id/rsvp.
func (h *InteractionHandler) SetRSVP(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var req rsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := h.svc.SetRSVP(id, middleware.GetUserID(c), req.Status)
	if err != nil {
		switch err {
		case domain.ErrInvalidRSVPStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrEventNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("[rsvp] set failed: event=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update rsvp"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": id, "rsvp_status": status})
}

// GetRSVP handles GET /events/:id/rsvp — the caller's own status.
func (h *InteractionHandler) GetRSVP(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	status, err := h.svc.GetRSVP(id, middleware.GetUserID(c))
	if err != nil {
		if err == service.ErrEventNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rsvp"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": id, "rsvp_status": status})
}

// SetFavorite handles POST /events/:id/favorite.
func (h *InteractionHandler) SetFavorite(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.SetFavorite(id, middleware.GetUserID(c), req.IsFavorited); err != nil {
		if err == service.ErrEventNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[favorite] set failed: event=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": id, "is_favorited": req.IsFavorited})
}

// AddComment handles POST /events/:id/comments.
func (h *InteractionHandler) AddComment(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userRepo.GetByID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	comment, err := h.svc.AddComment(id, user, req.Text)
	if err != nil {
		switch err {
		case service.ErrEventNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrEmptyComment:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[comments] add failed: event=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
		}
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /events/:id/comments, newest-first.
func (h *InteractionHandler) ListComments(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	comments, err := h.svc.ListComments(id)
	if err != nil {
		if err == service.ErrEventNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}
