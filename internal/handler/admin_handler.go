package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"gatherly/internal/middleware"
	"gatherly/internal/models"
	"gatherly/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	adminRepo *repository.AdminRepository
	eventRepo *repository.EventRepository
	notifRepo *repository.NotificationRepository
}

func NewAdminHandler(
	adminRepo *repository.AdminRepository,
	eventRepo *repository.EventRepository,
	notifRepo *repository.NotificationRepository,
) *AdminHandler {
	return &AdminHandler{
		adminRepo: adminRepo,
		eventRepo: eventRepo,
		notifRepo: notifRepo,
	}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)
	users, total, err := h.adminRepo.ListUsers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, paginated("users", users, total, page, limit))
}

// ListActiveMembers handles GET /admin/users/active?days=30.
func (h *AdminHandler) ListActiveMembers(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days <= 0 || days > 365 {
		days = 30
	}
	page, limit := parsePagination(c)
	users, total, err := h.adminRepo.ListActiveMembers(days, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list active members"})
		return
	}
	resp := paginated("users", users, total, page, limit)
	resp["days"] = days
	c.JSON(http.StatusOK, resp)
}

// ListEvents handles GET /admin/events — events with organizer identity.
func (h *AdminHandler) ListEvents(c *gin.Context) {
	page, limit := parsePagination(c)
	events, total, err := h.adminRepo.ListEvents(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, paginated("events", events, total, page, limit))
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminRepo.GetStats()
	if err != nil {
		log.Printf("[admin] stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DeleteUser handles DELETE /admin/users/:id. Self-deletion is rejected;
// deletion cascades to the user's events.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if uint(id) == middleware.GetUserID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}
	if err := h.adminRepo.DeleteUserCascade(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("[admin] delete user failed: id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteEvent handles DELETE /admin/events/:id — any event, no ownership check.
func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.eventRepo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.Printf("[admin] delete event failed: id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}
	c.Status(http.StatusNoContent)
}

type notificationRequest struct {
	Title       string     `json:"title" binding:"required,max=100"`
	Message     string     `json:"message" binding:"required,max=500"`
	Type        string     `json:"type" binding:"omitempty,oneof=info warning success error"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low normal high"`
	TargetUsers string     `json:"targetUsers" binding:"omitempty,oneof=all admins specific"`
	TargetIDs   []uint     `json:"targetIds"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

// CreateNotification handles POST /admin/notifications.
func (h *AdminHandler) CreateNotification(c *gin.Context) {
	var req notificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type == "" {
		req.Type = "info"
	}
	if req.Priority == "" {
		req.Priority = "normal"
	}
	if req.TargetUsers == "" {
		req.TargetUsers = "all"
	}
	if req.TargetUsers != "specific" {
		req.TargetIDs = nil
	}
	n := &models.Notification{
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		Priority:    req.Priority,
		TargetUsers: req.TargetUsers,
		TargetIDs:   req.TargetIDs,
		CreatedBy:   middleware.GetUserID(c),
		ExpiresAt:   req.ExpiresAt,
		IsActive:    true,
	}
	if err := h.notifRepo.Create(n); err != nil {
		log.Printf("[admin] create notification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, n)
}

// ListNotifications handles GET /admin/notifications.
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	page, limit := parsePagination(c)
	list, total, err := h.notifRepo.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, paginated("notifications", list, total, page, limit))
}

// DeleteNotification handles DELETE /admin/notifications/:id.
func (h *AdminHandler) DeleteNotification(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.notifRepo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func paginated(key string, data interface{}, total int64, page, limit int) gin.H {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return gin.H{
		key:           data,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages,
		"limit":       limit,
	}
}
