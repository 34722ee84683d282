package handler

import (
	"log"
	"net/http"
	"strconv"

	"gatherly/internal/middleware"
	"gatherly/internal/repository"
	"gatherly/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc      *service.EventService
	userRepo *repository.UserRepository
}

func NewEventHandler(svc *service.EventService, userRepo *repository.UserRepository) *EventHandler {
	return &EventHandler{svc: svc, userRepo: userRepo}
}

// List handles GET /events?category=&search=. Anonymous viewers get
// projections without personalized fields.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.svc.List(c.Query("category"), c.Query("search"))
	if err != nil {
		log.Printf("[events] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	views, err := h.svc.ProjectAll(events, middleware.GetUserID(c))
	if err != nil {
		log.Printf("[events] projection failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(id)
	if err != nil {
		if err == service.ErrEventNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return
	}
	view, err := h.svc.Project(e, middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *EventHandler) Create(c *gin.Context) {
	var in service.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	organizer, err := h.userRepo.GetByID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	e, err := h.svc.Create(organizer, in)
	if err != nil {
		if err == service.ErrInvalidDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[events] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	view, err := h.svc.Project(e, organizer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var in service.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.GetUserID(c)
	e, err := h.svc.Update(id, userID, in)
	if err != nil {
		switch err {
		case service.ErrEventNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrNotOrganizer:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case service.ErrInvalidDate:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[events] update failed: id=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		}
		return
	}
	view, err := h.svc.Project(e, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id, middleware.GetUserID(c)); err != nil {
		switch err {
		case service.ErrEventNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrNotOrganizer:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			log.Printf("[events] delete failed: id=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Mine handles GET /me/events — events the caller organizes.
func (h *EventHandler) Mine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	events, err := h.svc.ListByOrganizer(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	views, err := h.svc.ProjectAll(events, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func eventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return 0, false
	}
	return uint(id), true
}
