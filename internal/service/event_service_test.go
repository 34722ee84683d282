package service

import (
	"testing"

	"gatherly/internal/models"
	"gatherly/internal/repository"

	"gorm.io/gorm"
)

func newEventService(t *testing.T) (*EventService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewEventService(
		repository.NewEventRepository(db),
		repository.NewRSVPRepository(db),
		repository.NewFavoriteRepository(db),
	)
	return svc, db
}

func validInput() EventInput {
	return EventInput{
		Title:    "Summer Concert",
		Category: "music",
		Date:     "2026-07-04",
		Location: "Riverside Park",
		Tags:     []string{"outdoor", "free"},
	}
}

func TestCreate_StampsOrganizerSnapshot(t *testing.T) {
	svc, db := newEventService(t)
	organizer := createUser(t, db, "alice", "alice@example.com")

	e, err := svc.Create(organizer, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Organizer != "alice" || e.OrganizerID != organizer.ID {
		t.Errorf("organizer snapshot wrong: %q / %d", e.Organizer, e.OrganizerID)
	}

	// Renaming the organizer must not rewrite the snapshot.
	organizer.Username = "alicia"
	if err := db.Save(organizer).Error; err != nil {
		t.Fatalf("rename: %v", err)
	}
	reloaded, err := svc.Get(e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Organizer != "alice" {
		t.Errorf("organizer snapshot rewritten to %q", reloaded.Organizer)
	}
}

func TestCreate_RejectsInvalidDate(t *testing.T) {
	svc, db := newEventService(t)
	organizer := createUser(t, db, "alice", "alice@example.com")
	in := validInput()
	in.Date = "2026-02-30"
	if _, err := svc.Create(organizer, in); err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate for Feb 30, got %v", err)
	}
	in.Date = "next tuesday"
	if _, err := svc.Create(organizer, in); err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdate_OrganizerOnly(t *testing.T) {
	svc, db := newEventService(t)
	alice := createUser(t, db, "alice", "alice@example.com")
	bob := createUser(t, db, "bob", "bob@example.com")
	e, err := svc.Create(alice, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := validInput()
	in.Title = "Renamed Concert"
	if _, err := svc.Update(e.ID, bob.ID, in); err != ErrNotOrganizer {
		t.Errorf("non-organizer update: expected ErrNotOrganizer, got %v", err)
	}
	updated, err := svc.Update(e.ID, alice.ID, in)
	if err != nil {
		t.Fatalf("organizer update: %v", err)
	}
	if updated.Title != "Renamed Concert" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
}

func TestUpdate_UnknownEvent(t *testing.T) {
	svc, db := newEventService(t)
	alice := createUser(t, db, "alice", "alice@example.com")
	if _, err := svc.Update(999, alice.ID, validInput()); err != ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestDelete_OrganizerOnlyAndRemovesInteractionRows(t *testing.T) {
	svc, db := newEventService(t)
	alice := createUser(t, db, "alice", "alice@example.com")
	bob := createUser(t, db, "bob", "bob@example.com")
	e, err := svc.Create(alice, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	interactions := NewInteractionService(
		repository.NewEventRepository(db),
		repository.NewRSVPRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewCommentRepository(db),
	)
	if _, err := interactions.SetRSVP(e.ID, bob.ID, "going"); err != nil {
		t.Fatalf("rsvp: %v", err)
	}
	if err := interactions.SetFavorite(e.ID, bob.ID, true); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if _, err := interactions.AddComment(e.ID, bob, "see you there"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	if err := svc.Delete(e.ID, bob.ID); err != ErrNotOrganizer {
		t.Errorf("non-organizer delete: expected ErrNotOrganizer, got %v", err)
	}
	if err := svc.Delete(e.ID, alice.ID); err != nil {
		t.Fatalf("organizer delete: %v", err)
	}
	if _, err := svc.Get(e.ID); err != ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound after delete, got %v", err)
	}
	for _, model := range []interface{}{&models.EventRSVP{}, &models.EventFavorite{}, &models.EventComment{}} {
		var c int64
		db.Model(model).Where("event_id = ?", e.ID).Count(&c)
		if c != 0 {
			t.Errorf("%T rows survived event deletion", model)
		}
	}
}

func TestList_FilterSearchAndOrder(t *testing.T) {
	svc, db := newEventService(t)
	alice := createUser(t, db, "alice", "alice@example.com")

	mk := func(title, category, date, location string) *models.Event {
		in := validInput()
		in.Title = title
		in.Category = category
		in.Date = date
		in.Location = location
		e, err := svc.Create(alice, in)
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		return e
	}
	mk("Jazz Night", "music", "2026-08-02", "Blue Note")
	mk("Marathon", "sports", "2026-08-01", "Downtown")
	mk("Food Truck Rally", "food", "2026-08-03", "Market Square")

	byCategory, err := svc.List("music", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Title != "Jazz Night" {
		t.Errorf("category filter failed: %+v", byCategory)
	}

	// Case-insensitive substring match across title/description/location.
	bySearch, err := svc.List("", "MARKET")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Title != "Food Truck Rally" {
		t.Errorf("search should match location, got %+v", bySearch)
	}

	all, err := svc.List("", "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].Title != "Marathon" || all[1].Title != "Jazz Night" || all[2].Title != "Food Truck Rally" {
		t.Errorf("expected date-ascending order, got %q, %q, %q", all[0].Title, all[1].Title, all[2].Title)
	}
}

func TestList_SameDateTiesNewestCreatedFirst(t *testing.T) {
	svc, db := newEventService(t)
	alice := createUser(t, db, "alice", "alice@example.com")

	in := validInput()
	in.Title = "First Created"
	if _, err := svc.Create(alice, in); err != nil {
		t.Fatalf("create: %v", err)
	}
	in.Title = "Second Created"
	if _, err := svc.Create(alice, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.List("", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 events, got %d", len(all))
	}
	if all[0].Title != "Second Created" {
		t.Errorf("same-date ties should order newest creation first, got %q", all[0].Title)
	}
}

func TestProject_ViewerFieldsAndAnonymous(t *testing.T) {
	svc, db := newEventService(t)
	alice := createUser(t, db, "alice", "alice@example.com")
	bob := createUser(t, db, "bob", "bob@example.com")
	e, err := svc.Create(alice, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	interactions := NewInteractionService(
		repository.NewEventRepository(db),
		repository.NewRSVPRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewCommentRepository(db),
	)
	if _, err := interactions.SetRSVP(e.ID, bob.ID, "interested"); err != nil {
		t.Fatalf("rsvp: %v", err)
	}
	if err := interactions.SetFavorite(e.ID, bob.ID, true); err != nil {
		t.Fatalf("favorite: %v", err)
	}

	forBob, err := svc.Project(e, bob.ID)
	if err != nil {
		t.Fatalf("project for bob: %v", err)
	}
	if forBob.ViewerRSVPStatus != "interested" || !forBob.IsFavorited {
		t.Errorf("viewer fields wrong: status=%q favorited=%v", forBob.ViewerRSVPStatus, forBob.IsFavorited)
	}
	if forBob.AttendeesInterested != 1 || forBob.AttendeesGoing != 0 {
		t.Errorf("derived counters wrong: going=%d interested=%d", forBob.AttendeesGoing, forBob.AttendeesInterested)
	}

	anonymous, err := svc.Project(e, 0)
	if err != nil {
		t.Fatalf("project anonymous: %v", err)
	}
	if anonymous.ViewerRSVPStatus != "" || anonymous.IsFavorited {
		t.Errorf("anonymous projection must report no relationship: status=%q favorited=%v",
			anonymous.ViewerRSVPStatus, anonymous.IsFavorited)
	}
	if anonymous.AttendeesInterested != 1 {
		t.Errorf("anonymous projection still carries counters, got %d", anonymous.AttendeesInterested)
	}
}
