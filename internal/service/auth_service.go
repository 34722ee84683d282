package service

import (
	"errors"
	"regexp"
	"time"

	"gatherly/config"
	"gatherly/internal/auth"
	"gatherly/internal/models"
	"gatherly/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists    = errors.New("email already registered")
	ErrUsernameExists = errors.New("username already taken")
	ErrInvalidCreds   = errors.New("invalid email or password")
	ErrInvalidZipcode = errors.New("zipcode must be 5 digits or 5+4 format")
)

var zipcodeRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Register creates a user and returns it with a session token. Uniqueness is
// pre-checked case-insensitively for a field-specific error; the unique index
// remains the final arbiter when two registrations race past the check.
func (s *AuthService) Register(username, email, password, zipcode string) (*models.User, string, error) {
	if !zipcodeRe.MatchString(zipcode) {
		return nil, "", ErrInvalidZipcode
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, "", ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Zipcode:      zipcode,
	}
	if err := s.userRepo.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race: name whichever field now collides.
			if _, lookupErr := s.userRepo.GetByEmail(email); lookupErr == nil {
				return nil, "", ErrEmailExists
			}
			return nil, "", ErrUsernameExists
		}
		return nil, "", err
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and stamps last_login. The error is the same
// whether the email is unknown or the password is wrong.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	now := time.Now()
	if err := s.userRepo.TouchLastLogin(u.ID, now); err != nil {
		return nil, "", err
	}
	u.LastLogin = &now
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
