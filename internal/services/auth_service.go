package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobtrackr/internal/auth"
	"jobtrackr/internal/dtos"
	"jobtrackr/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService manages user accounts and login tokens.
type AuthService struct {
	DB     *gorm.DB
	Tokens *auth.TokenProvider
	Log    *slog.Logger
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenProvider, log *slog.Logger) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Log: log}
}

func (s *AuthService) Register(req *dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.Log.Error("lookup user failed", "err", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		s.Log.Error("create user failed", "err", err)
		return nil, err
	}
	return s.issue(&user)
}

func (s *AuthService) Login(req *dtos.LoginRequest) (*dtos.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.Log.Error("lookup user failed", "err", err)
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(&user)
}

// GetUser loads the account behind an owner identity. A subject that is
// not a UUID cannot match any account and reports not-found.
func (s *AuthService) GetUser(userID string) (*models.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrNotFound
	}
	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.Log.Error("load user failed", "err", err)
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) issue(user *models.User) (*dtos.AuthResponse, error) {
	token, expiresAt, err := s.Tokens.Generate(user.ID.String())
	if err != nil {
		s.Log.Error("issue token failed", "err", err)
		return nil, err
	}
	return &dtos.AuthResponse{Token: token, ExpiresAt: expiresAt.Unix(), User: *user}, nil
}
