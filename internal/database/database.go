package database

import (
	"errors"
	"log"

	"gatherly/config"
	"gatherly/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true, // surfaces unique-index violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.EventRSVP{},
		&models.EventFavorite{},
		&models.EventComment{},
		&models.Notification{},
	)
}

// SeedAdmin creates the bootstrap admin account from config. The is_admin
// flag has no API surface, so this is the only way the first admin exists.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	if cfg.Email == "" || cfg.Password == "" {
		return
	}
	var u models.User
	err := db.Where("LOWER(email) = LOWER(?)", cfg.Email).First(&u).Error
	if err == nil {
		if !u.IsAdmin {
			u.IsAdmin = true
			if err := db.Save(&u).Error; err != nil {
				log.Printf("[seed] failed to promote admin %s: %v", cfg.Email, err)
			}
		}
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[seed] admin lookup failed: %v", err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] failed to hash admin password: %v", err)
		return
	}
	u = models.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Zipcode:      "00000",
		IsAdmin:      true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("[seed] failed to create admin: %v", err)
		return
	}
	log.Printf("[seed] created admin account %s", cfg.Email)
}
