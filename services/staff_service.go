package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/fausse-reservations/failure"
	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = failure.Unauthorized("invalid credentials")

type StaffService struct {
	DB       *gorm.DB
	Secret   []byte
	TokenTTL time.Duration
}

func NewStaffService(db *gorm.DB, secret string, ttl time.Duration) *StaffService {
	return &StaffService{DB: db, Secret: []byte(secret), TokenTTL: ttl}
}

// EnsureStaff creates the staff account if no account with that email exists.
// Existing accounts, and their passwords, are left alone.
func (s *StaffService) EnsureStaff(ctx context.Context, name, email, password, role string) (models.StaffUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.StaffUser{}, errors.New("staff email and password are required")
	}
	if role == "" {
		role = models.RoleStaff
	}

	var user models.StaffUser
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StaffUser{}, fmt.Errorf("find staff user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.StaffUser{}, fmt.Errorf("hash password: %w", err)
	}

	user = models.StaffUser{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return models.StaffUser{}, fmt.Errorf("create staff user: %w", err)
	}

	utils.InfoLogger.Printf("Staff user seeded: %s (role=%s)", user.Email, user.Role)
	return user, nil
}

// Login checks the password and returns a signed token.
func (s *StaffService) Login(ctx context.Context, email, password string) (string, models.StaffUser, error) {
	var user models.StaffUser
	err := s.DB.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.StaffUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.StaffUser{}, fmt.Errorf("find staff user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.StaffUser{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.Secret, s.TokenTTL, user.ID, user.Role)
	if err != nil {
		return "", models.StaffUser{}, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
