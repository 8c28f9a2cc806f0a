package service

import (
	"context"
	"net/mail"
	"strings"

	"codearena/internal/common"
	"codearena/internal/common/security"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrInvalidRequest
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, common.ErrInvalidRequest
	}
	if req.Role == "" {
		req.Role = model.RoleContestee
	}
	if !model.ValidRole(req.Role) {
		return nil, common.ErrInvalidRequest
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, common.Errorf("auth signup check email: %w", err)
	}
	if exists {
		return nil, common.ErrEmailAlreadyExists
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, common.Errorf("auth signup hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrInvalidRequest
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, common.ErrInvalidRequest
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, common.Errorf("auth login generate token: %w", err)
	}
	return &LoginResponse{Token: token}, nil
}
