package services

import (
	"context"
	"errors"

	"dailydiet/models"
	"dailydiet/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	secret string
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{db: db, secret: secret}
}

func (s *AuthService) Register(ctx context.Context, email, password string) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
	}

	return s.db.WithContext(ctx).Create(&user).Error
}

// Authenticate returns a signed token for the user. Unknown email and wrong
// password produce the same error so the response can't be used to probe for
// registered addresses.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, s.secret)
}
