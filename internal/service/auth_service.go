package service

import (
	"errors"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/jwt"
	"github.com/maldura7/clover-inventory-system/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(email, password, name string) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	Profile(userID uuid.UUID) (*model.UserResponse, error)
}

// AuthResponse is the body returned by register and login.
type AuthResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(email, password, name string) (*AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperr.Conflict("Email already exists")
	}

	user := &model.User{
		Email: email,
		Name:  name,
		Role:  model.RoleUser,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		// Lost the race against a concurrent register for the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already exists")
		}
		return nil, apperr.Internal(err)
	}

	return s.issueToken(user)
}

func (s *authService) Login(email, password string) (*AuthResponse, error) {
	prometheus.LoginAttemptsTotal.Inc()

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		prometheus.LoginFailuresTotal.Inc()
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if !user.CheckPassword(password) {
		prometheus.LoginFailuresTotal.Inc()
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, apperr.Internal(err)
	}

	return s.issueToken(user)
}

// Profile resolves the bearer identity back to a stored user. A token
// can outlive its user row; that case is a 404, not a 401.
func (s *authService) Profile(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) issueToken(user *model.User) (*AuthResponse, error) {
	token, err := jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}
