package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"autocare/internal/models"
	"autocare/internal/repositories"
)

type AdminUserService interface {
	CreateWithPassword(user *models.AdminUser, plainPassword string) error
	GetByID(id int) (*models.AdminUser, error)
	GetByUsername(username string) (*models.AdminUser, error)
	List(limit, offset int) ([]*models.AdminUser, error)
	Delete(id int) error

	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.AdminUser, error)
	ClearRefresh(userID int) error
	GetByRefreshToken(token string) (*models.AdminUser, error)
}

type adminUserService struct {
	repo         repositories.AdminUserRepository
	emailService EmailService
	authService  AuthService
}

func NewAdminUserService(repo repositories.AdminUserRepository, emailService EmailService, authService AuthService) AdminUserService {
	return &adminUserService{
		repo:         repo,
		emailService: emailService,
		authService:  authService,
	}
}

func (s *adminUserService) CreateWithPassword(user *models.AdminUser, plainPassword string) error {
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(plainPassword) == "" {
		return fmt.Errorf("password is required")
	}

	hashed, err := s.authService.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if err := s.repo.Create(user); err != nil {
		return err
	}

	if s.emailService != nil && user.Email != "" {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
			// warn but do not fail creation
			log.Printf("[users] warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}
	return nil
}

func (s *adminUserService) GetByID(id int) (*models.AdminUser, error) {
	return s.repo.GetByID(id)
}

func (s *adminUserService) GetByUsername(username string) (*models.AdminUser, error) {
	return s.repo.GetByUsername(username)
}

func (s *adminUserService) List(limit, offset int) ([]*models.AdminUser, error) {
	return s.repo.List(limit, offset)
}

func (s *adminUserService) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *adminUserService) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(userID, token, expiresAt)
}

func (s *adminUserService) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.AdminUser, error) {
	return s.repo.RotateRefresh(oldToken, newToken, newExpiresAt)
}

func (s *adminUserService) ClearRefresh(userID int) error {
	return s.repo.ClearRefresh(userID)
}

func (s *adminUserService) GetByRefreshToken(token string) (*models.AdminUser, error) {
	return s.repo.GetByRefreshToken(token)
}
