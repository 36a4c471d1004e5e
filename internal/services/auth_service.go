package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookswap/internal/errs"
	"bookswap/internal/events"
	"bookswap/internal/models"
	"bookswap/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService is the identity directory: it owns the users collection and the
// single session slot, and issues tokens for the HTTP API.
type AuthService struct {
	userRepo    repositories.UserRepository
	sessions    repositories.SessionRepository
	bus         events.Publisher
	log         *zap.Logger
	jwtSecret   []byte
	tokenExpiry time.Duration
	newUID      func() string
}

// AuthOption customizes an AuthService.
type AuthOption func(*AuthService)

// WithUIDGenerator overrides user ID generation.
func WithUIDGenerator(newUID func() string) AuthOption {
	return func(s *AuthService) { s.newUID = newUID }
}

// WithTokenExpiry sets how long issued tokens stay valid.
func WithTokenExpiry(d time.Duration) AuthOption {
	return func(s *AuthService) { s.tokenExpiry = d }
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repositories.UserRepository,
	sessions repositories.SessionRepository,
	bus events.Publisher,
	log *zap.Logger,
	jwtSecret string,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		userRepo:    userRepo,
		sessions:    sessions,
		bus:         bus,
		log:         log,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: 24 * time.Hour,
		newUID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentUser returns the user in the session slot, or nil when nobody is logged in.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.sessions.Current(ctx)
}

// Login finds the user with this exact email, creating one on first sight,
// and makes it the current session. Repeating a login never creates a second user.
func (s *AuthService) Login(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errs.NewValidationError("email", "is required")
	}

	user, created, err := s.userRepo.GetOrCreateByEmail(ctx, email, func() models.User {
		return models.User{
			UID:         s.newUID(),
			Email:       email,
			DisplayName: displayName(email),
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if created {
		s.log.Info("user registered", zap.String("uid", user.UID))
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user logged in", zap.String("uid", user.UID))
	s.bus.Publish(events.AuthChanged)
	return user, nil
}

// displayName is the part of the email before "@", or the whole string without one.
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Logout clears the session slot.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.bus.Publish(events.AuthChanged)
	return nil
}

// GetUserProfile returns the user with the given UID.
func (s *AuthService) GetUserProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, uid)
}

// IssueToken signs a JWT identifying the user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.UID,
		"email":   user.Email,
		"exp":     now.Add(s.tokenExpiry).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		s.log.Debug("token validation failed", zap.Error(err))
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
