package services

import (
	"context"
	"errors"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("email hoặc mật khẩu không đúng")
	ErrUserInactive       = errors.New("tài khoản đã bị khóa")
)

type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error)
	GetUserByID(ctx context.Context, id uint) (*models.AdminUser, error)
}

type AuthService struct {
	repo repositories.IAdminUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{repo: repositories.NewAdminUserRepository()}
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	return s.repo.FindByID(ctx, id)
}
