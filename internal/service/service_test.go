package service

import (
	"testing"
	"time"

	"gatherly/config"
	"gatherly/internal/database"
	"gatherly/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "test"},
	}
}

func createUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Zipcode:      "12345",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func createEvent(t *testing.T, db *gorm.DB, organizer *models.User, title, date string) *models.Event {
	t.Helper()
	e := &models.Event{
		Title:       title,
		Category:    "community",
		Date:        date,
		Location:    "Town Hall",
		Organizer:   organizer.Username,
		OrganizerID: organizer.ID,
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("create event %s: %v", title, err)
	}
	return e
}
