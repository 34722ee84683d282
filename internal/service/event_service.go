package service

import (
	"errors"
	"time"

	"gatherly/internal/domain"
	"gatherly/internal/models"
	"gatherly/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotOrganizer  = errors.New("only the organizer can modify this event")
	ErrInvalidDate   = errors.New("date must be a valid YYYY-MM-DD calendar date")
)

// EventInput is the full payload for create and update. Updates carry the
// whole document; there is no partial-merge behavior.
type EventInput struct {
	Title       string   `json:"title" binding:"required,min=3,max=100"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	Category    string   `json:"category" binding:"required,oneof=music sports arts food education technology community family other"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"omitempty,max=50"`
	Location    string   `json:"location" binding:"required,max=200"`
	ContactInfo string   `json:"contact_info" binding:"omitempty,max=255"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	MaxCapacity int      `json:"max_capacity" binding:"omitempty,min=0"`
	Tags        []string `json:"tags" binding:"omitempty,max=10"`
}

// EventView is the client-facing projection: the event plus derived counters
// and the viewer's own relationship to it.
type EventView struct {
	ID                  uint      `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	Location            string    `json:"location"`
	ContactInfo         string    `json:"contact_info"`
	ImageURL            string    `json:"image_url"`
	MaxCapacity         int       `json:"max_capacity"`
	Tags                []string  `json:"tags"`
	Organizer           string    `json:"organizer"`
	OrganizerID         uint      `json:"organizer_id"`
	AttendeesGoing      int64     `json:"attendees_going"`
	AttendeesInterested int64     `json:"attendees_interested"`
	ViewerRSVPStatus    string    `json:"viewer_rsvp_status"`
	IsFavorited         bool      `json:"is_favorited"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type EventService struct {
	eventRepo *repository.EventRepository
	rsvpRepo  *repository.RSVPRepository
	favRepo   *repository.FavoriteRepository
}

func NewEventService(eventRepo *repository.EventRepository, rsvpRepo *repository.RSVPRepository, favRepo *repository.FavoriteRepository) *EventService {
	return &EventService{eventRepo: eventRepo, rsvpRepo: rsvpRepo, favRepo: favRepo}
}

// Create stamps the organizer snapshot from the authenticated identity.
func (s *EventService) Create(organizer *models.User, in EventInput) (*models.Event, error) {
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	e := &models.Event{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		ContactInfo: in.ContactInfo,
		ImageURL:    in.ImageURL,
		MaxCapacity: in.MaxCapacity,
		Tags:        in.Tags,
		Organizer:   organizer.Username,
		OrganizerID: organizer.ID,
	}
	if err := s.eventRepo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update overwrites the provided fields after the ownership check. The
// organizer snapshot is never touched.
func (s *EventService) Update(id, requesterID uint, in EventInput) (*models.Event, error) {
	e, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if e.OrganizerID != requesterID {
		return nil, ErrNotOrganizer
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	e.Title = in.Title
	e.Description = in.Description
	e.Category = in.Category
	e.Date = in.Date
	e.Time = in.Time
	e.Location = in.Location
	e.ContactInfo = in.ContactInfo
	e.ImageURL = in.ImageURL
	e.MaxCapacity = in.MaxCapacity
	e.Tags = in.Tags
	if err := s.eventRepo.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) Delete(id, requesterID uint) error {
	e, err := s.get(id)
	if err != nil {
		return err
	}
	if e.OrganizerID != requesterID {
		return ErrNotOrganizer
	}
	return s.eventRepo.Delete(id)
}

func (s *EventService) Get(id uint) (*models.Event, error) {
	return s.get(id)
}

func (s *EventService) List(category, search string) ([]models.Event, error) {
	return s.eventRepo.List(category, search)
}

func (s *EventService) ListByOrganizer(organizerID uint) ([]models.Event, error) {
	return s.eventRepo.ListByOrganizer(organizerID)
}

// Project folds the derived counters and the viewer's own RSVP/favorite
// state into the client view. viewerID 0 means anonymous: both viewer fields
// report no relationship.
func (s *EventService) Project(e *models.Event, viewerID uint) (*EventView, error) {
	going, err := s.rsvpRepo.CountByStatus(e.ID, domain.RSVPGoing)
	if err != nil {
		return nil, err
	}
	interested, err := s.rsvpRepo.CountByStatus(e.ID, domain.RSVPInterested)
	if err != nil {
		return nil, err
	}
	view := &EventView{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Category:            e.Category,
		Date:                e.Date,
		Time:                e.Time,
		Location:            e.Location,
		ContactInfo:         e.ContactInfo,
		ImageURL:            e.ImageURL,
		MaxCapacity:         e.MaxCapacity,
		Tags:                e.Tags,
		Organizer:           e.Organizer,
		OrganizerID:         e.OrganizerID,
		AttendeesGoing:      going,
		AttendeesInterested: interested,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	if viewerID == 0 {
		return view, nil
	}
	rsvp, err := s.rsvpRepo.Get(e.ID, viewerID)
	if err != nil {
		return nil, err
	}
	if rsvp != nil {
		view.ViewerRSVPStatus = string(rsvp.Status)
	}
	fav, err := s.favRepo.IsFavorite(e.ID, viewerID)
	if err != nil {
		return nil, err
	}
	view.IsFavorited = fav
	return view, nil
}

// ProjectAll projects a slice preserving order.
func (s *EventService) ProjectAll(events []models.Event, viewerID uint) ([]*EventView, error) {
	views := make([]*EventView, 0, len(events))
	for i := range events {
		v, err := s.Project(&events[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *EventService) get(id uint) (*models.Event, error) {
	e, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
