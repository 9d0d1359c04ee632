package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialpulse/feed-system/internal/core/domain"
	"github.com/socialpulse/feed-system/internal/core/ports"
)

// SessionWriter persists the current-user snapshot on login and logout.
type SessionWriter interface {
	Login(ctx context.Context, user *domain.User) error
}

// AuthService implements signup and login.
type AuthService struct {
	repo      ports.UserRepository
	sessions  SessionWriter
	jwtSecret string
	tokenTTL  time.Duration
	delay     time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions SessionWriter, jwtSecret string, tokenTTL, delay time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		delay:     delay,
		logger:    logger,
	}
}

// Signup creates a new account with role "user" and the default avatar.
// Fails with domain.ErrEmailTaken when the email is already registered,
// regardless of the other fields.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           newID("u"),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       domain.DefaultAvatar,
		Role:         domain.RoleUser,
		JoinedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user signed up")
	return created, nil
}

// Login looks the user up by email and issues a token. The password is
// accepted without verification — a deliberate demo placeholder carried over
// from the original design, NOT suitable for production use.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return "", nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist session snapshot")
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
