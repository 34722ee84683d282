package service

import (
	"errors"
	"strings"

	"gatherly/internal/domain"
	"gatherly/internal/models"
	"gatherly/internal/repository"

	"gorm.io/gorm"
)

var ErrEmptyComment = errors.New("comment text must not be empty")

// InteractionService owns RSVP transitions, favorite toggling, and comment
// appends against an existing event.
type InteractionService struct {
	eventRepo   *repository.EventRepository
	rsvpRepo    *repository.RSVPRepository
	favRepo     *repository.FavoriteRepository
	commentRepo *repository.CommentRepository
}

func NewInteractionService(
	eventRepo *repository.EventRepository,
	rsvpRepo *repository.RSVPRepository,
	favRepo *repository.FavoriteRepository,
	commentRepo *repository.CommentRepository,
) *InteractionService {
	return &InteractionService{
		eventRepo:   eventRepo,
		rsvpRepo:    rsvpRepo,
		favRepo:     favRepo,
		commentRepo: commentRepo,
	}
}

// SetRSVP applies a last-write-wins transition for the (event, user) pair
// and returns the resulting status as reported to the client.
func (s *InteractionService) SetRSVP(eventID, userID uint, requested string) (string, error) {
	if err := s.requireEvent(eventID); err != nil {
		return "", err
	}
	status, remove, err := domain.ParseRSVPStatus(requested)
	if err != nil {
		return "", err
	}
	if remove {
		if err := s.rsvpRepo.Clear(eventID, userID); err != nil {
			return "", err
		}
		return domain.RSVPNone, nil
	}
	if err := s.rsvpRepo.Set(eventID, userID, status); err != nil {
		return "", err
	}
	return string(status), nil
}

// GetRSVP returns the user's current status, or "not_going" when none.
func (s *InteractionService) GetRSVP(eventID, userID uint) (string, error) {
	if err := s.requireEvent(eventID); err != nil {
		return "", err
	}
	rsvp, err := s.rsvpRepo.Get(eventID, userID)
	if err != nil {
		return "", err
	}
	if rsvp == nil {
		return domain.RSVPNone, nil
	}
	return string(rsvp.Status), nil
}

// SetFavorite is an idempotent set-membership operation: adding an existing
// favorite or removing a missing one is a no-op.
func (s *InteractionService) SetFavorite(eventID, userID uint, favorited bool) error {
	if err := s.requireEvent(eventID); err != nil {
		return err
	}
	has, err := s.favRepo.IsFavorite(eventID, userID)
	if err != nil {
		return err
	}
	if favorited == has {
		return nil
	}
	if favorited {
		err = s.favRepo.Add(eventID, userID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent add for the same pair; membership already holds.
			return nil
		}
		return err
	}
	return s.favRepo.Remove(eventID, userID)
}

// AddComment appends an immutable comment with a username snapshot.
func (s *InteractionService) AddComment(eventID uint, user *models.User, text string) (*models.EventComment, error) {
	if err := s.requireEvent(eventID); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	c := &models.EventComment{
		EventID:  eventID,
		UserID:   user.ID,
		Username: user.Username,
		Text:     text,
	}
	if err := s.commentRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListComments returns comments newest-first.
func (s *InteractionService) ListComments(eventID uint) ([]models.EventComment, error) {
	if err := s.requireEvent(eventID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByEvent(eventID)
}

func (s *InteractionService) requireEvent(eventID uint) error {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}
