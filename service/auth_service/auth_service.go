package auth_service

import (
	"errors"
	"time"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore persists creator accounts.
type UserStore interface {
	CreateWithSubscription(user *model.User, sub *model.Subscription) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id string) (*model.User, error)
}

var (
	// ErrEmailTaken email already registered
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials wrong email or password
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService signup/login and token issuing for creator accounts.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

// NewAuthService creates an auth service.
func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup registers a new creator with an INDIE starter subscription and
// returns the user plus a fresh token.
func (s *AuthService) Signup(email, password string) (*model.User, string, error) {
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hashed),
	}
	sub := &model.Subscription{
		ID:           uuid.NewString(),
		Plan:         model.PlanIndie,
		MonthlyHours: model.PlanMonthlyHours[model.PlanIndie],
		UsedHours:    0,
		ResetDate:    time.Now(),
		NextBilling:  time.Now().Add(30 * 24 * time.Hour),
	}
	if err := s.users.CreateWithSubscription(user, sub); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh token.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me returns the account for an authenticated user id.
func (s *AuthService) Me(userID string) (*model.User, error) {
	return s.users.GetByID(userID)
}
