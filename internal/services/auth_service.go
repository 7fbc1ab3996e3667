package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
	"github.com/luminasalon/backend/pkg/jwt"
)

// ErrInvalidCredentials is returned for any login failure. Unknown emails and
// wrong passwords produce the same error so the response leaks nothing.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidRefreshToken is returned when a refresh token is expired, revoked
// or unknown.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// AdminUserStore is the persistence surface AuthService needs for accounts
type AdminUserStore interface {
	Create(ctx context.Context, user *models.AdminUser) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id string) (*models.AdminUser, error)
	TouchLastLogin(ctx context.Context, id string) error
}

// RefreshTokenStore is the persistence surface AuthService needs for sessions
type RefreshTokenStore interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	FindActiveByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeByHash(ctx context.Context, hash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

// AuthService handles back-office authentication
type AuthService struct {
	users      AdminUserStore
	tokens     RefreshTokenStore
	jwtService *jwt.Service
	logger     *logrus.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users AdminUserStore, tokens RefreshTokenStore, jwtService *jwt.Service, logger *logrus.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		jwtService: jwtService,
		logger:     logger,
	}
}

// DeviceInfo describes the client a session was opened from
type DeviceInfo struct {
	UserAgent string
	IPAddress string
}

// LoginResult carries the token pair and account back to the handler
type LoginResult struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	ExpiresIn    int64             `json:"expires_in"`
	User         *models.AdminUser `json:"user"`
}

// Login authenticates an admin by email and password and opens a session
func (s *AuthService) Login(ctx context.Context, email, password string, device DeviceInfo) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// Burn a bcrypt comparison anyway so the timing matches
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0CpXA7HCAVVXMLOaXAXfrYHsGhW"), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("email", user.Email).Warn("Login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	deviceName, browser := parseUserAgent(device.UserAgent)
	record := &models.RefreshToken{
		UserID:     user.ID.Hex(),
		TokenHash:  hashToken(refreshToken),
		DeviceName: deviceName,
		Browser:    browser,
		IPAddress:  device.IPAddress,
		ExpiresAt:  time.Now().Add(s.jwtService.RefreshTokenExpiry()),
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	if err := s.users.TouchLastLogin(ctx, user.ID.Hex()); err != nil {
		s.logger.WithError(err).Warn("Failed to record last login")
	}

	s.logger.WithFields(logrus.Fields{
		"email":   user.Email,
		"device":  deviceName,
		"browser": browser,
	}).Info("Admin logged in")

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.AccessTokenExpiry().Seconds()),
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// The signature alone is not enough; the token must still be live in
	// the store so logout and revocation actually end the session.
	if _, err := s.tokens.FindActiveByHash(ctx, hashToken(refreshToken)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.AccessTokenExpiry().Seconds()),
		User:         user,
	}, nil
}

// Logout revokes the refresh token. Revoking an already revoked or unknown
// token succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokens.RevokeByHash(ctx, hashToken(refreshToken))
}

// LogoutAll revokes every session belonging to the user
func (s *AuthService) LogoutAll(ctx context.Context, userID string) error {
	return s.tokens.RevokeAllForUser(ctx, userID)
}

// Session returns the account behind an authenticated user id
func (s *AuthService) Session(ctx context.Context, userID string) (*models.AdminUser, error) {
	return s.users.FindByID(ctx, userID)
}

// Register creates a back-office account with a bcrypt password hash
func (s *AuthService) Register(ctx context.Context, email, password, name, role string) (*models.AdminUser, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if role == "" {
		role = "admin"
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("an account with this email already exists")
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.WithField("email", user.Email).Info("Admin account created")
	return user, nil
}

// hashToken returns the hex SHA-256 of a refresh token. Only the hash is
// persisted.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// parseUserAgent extracts a friendly device and browser name from a raw
// User-Agent header.
func parseUserAgent(raw string) (device, browser string) {
	if raw == "" {
		return "Unknown device", "Unknown"
	}

	ua := user_agent.New(raw)
	name, version := ua.Browser()
	browser = name
	if version != "" {
		browser = name + " " + version
	}

	device = ua.OS()
	if ua.Mobile() {
		device = "Mobile (" + ua.OS() + ")"
	}
	if device == "" {
		device = "Unknown device"
	}
	return device, browser
}
