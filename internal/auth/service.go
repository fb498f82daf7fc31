// Package auth manages local accounts and the on-disk session.
//
// Passwords are stored as bcrypt hashes. A successful login issues an HS256
// session token which is persisted age-encrypted at the configured session
// path; authenticated commands resolve the current account from that file.
package auth

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"artag/internal/artag"
	"artag/internal/model"
)

// Service implements account registration, login and session handling.
type Service struct {
	database    artag.Database
	encryptor   artag.Encryptor
	logger      artag.Logger
	clock       artag.Clock
	idGenerator artag.IDGenerator

	secret        []byte
	tokenValidity time.Duration
	sessionPath   string
}

// NewService creates an auth service.
func NewService(database artag.Database, encryptor artag.Encryptor, logger artag.Logger,
	clock artag.Clock, idGenerator artag.IDGenerator,
	secret string, tokenValidity time.Duration, sessionPath string) *Service {
	return &Service{
		database:      database,
		encryptor:     encryptor,
		logger:        logger,
		clock:         clock,
		idGenerator:   idGenerator,
		secret:        []byte(secret),
		tokenValidity: tokenValidity,
		sessionPath:   sessionPath,
	}
}

// Register creates a local account. The username must be unused.
func (s *Service) Register(ctx context.Context, username, password string) (*model.UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	existing, err := s.database.FindProfileByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if existing != nil {
		return nil, artag.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.clock.Now()
	profile := &model.UserProfile{
		ID:           s.idGenerator.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.database.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	s.logger.Info("account registered", "username", username, "user_id", profile.ID)
	return profile, nil
}

// Login verifies credentials and persists a session token.
// Returns ErrUnauthorized for an unknown username or wrong password.
func (s *Service) Login(ctx context.Context, username, password string) (*model.UserProfile, error) {
	profile, err := s.database.FindProfileByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	if profile == nil {
		return nil, artag.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, artag.ErrUnauthorized
	}

	token, err := GenerateToken(profile.ID, s.secret, s.clock.Now(), s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}

	if err := s.writeSession(token); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	s.logger.Info("logged in", "username", profile.Username, "user_id", profile.ID)
	return profile, nil
}

// Logout removes the session file. Logging out while logged out is not
// an error.
func (s *Service) Logout() error {
	err := os.Remove(s.sessionPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// CurrentUserID returns the account id of the stored session.
// Returns ErrNotLoggedIn when there is no session or the token is invalid
// or expired.
func (s *Service) CurrentUserID() (string, error) {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", artag.ErrNotLoggedIn
		}
		return "", fmt.Errorf("reading session: %w", err)
	}

	var token bytes.Buffer
	if err := s.encryptor.Decrypt(bytes.NewReader(data), &token); err != nil {
		s.logger.Warn("session file could not be decrypted", "error", err)
		return "", artag.ErrNotLoggedIn
	}

	userID, err := GetUserIDFromToken(token.String(), s.secret)
	if err != nil {
		s.logger.Debug("session token rejected", "error", err)
		return "", artag.ErrNotLoggedIn
	}

	return userID, nil
}

// CurrentProfile resolves the stored session to a full profile.
func (s *Service) CurrentProfile(ctx context.Context) (*model.UserProfile, error) {
	userID, err := s.CurrentUserID()
	if err != nil {
		return nil, err
	}

	profile, err := s.database.FindProfileByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	if profile == nil {
		// Account deleted since login
		return nil, artag.ErrNotLoggedIn
	}
	return profile, nil
}

// ChangePassword verifies the old password and stores a new hash.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required")
	}

	profile, err := s.database.FindProfileByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("finding profile: %w", err)
	}
	if profile == nil {
		return artag.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(oldPassword)); err != nil {
		return artag.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.database.UpdateProfilePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}

// writeSession encrypts the token and writes the session file with 0600.
func (s *Service) writeSession(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.sessionPath), 0700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	var sealed bytes.Buffer
	if err := s.encryptor.Encrypt(strings.NewReader(token), &sealed); err != nil {
		return fmt.Errorf("encrypting session token: %w", err)
	}

	if err := os.WriteFile(s.sessionPath, sealed.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
