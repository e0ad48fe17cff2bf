package store

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Mustafaa-nd/MNLab-Portfolio/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionStore handles the admin account and its login sessions. Issued
// bearer tokens are random; only their sha256 hex is persisted.
type SessionStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessionStore(db *gorm.DB, ttl time.Duration) *SessionStore {
	return &SessionStore{db: db, ttl: ttl}
}

// SeedAdmin makes sure the configured admin account exists, rehashing the
// stored password when the configured one changed. Called at startup.
func (s *SessionStore) SeedAdmin(login, password string) error {
	var admin models.Admin
	err := s.db.Where("login = ?", login).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return fmt.Errorf("hash admin password: %w", herr)
		}
		return s.db.Create(&models.Admin{Login: login, Password: string(hash)}).Error
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return fmt.Errorf("hash admin password: %w", herr)
		}
		return s.db.Model(&admin).Update("password", string(hash)).Error
	}
	return nil
}

// Login verifies the credentials and issues a bearer token for a new
// session. A wrong login and a wrong password are indistinguishable to
// the caller.
func (s *SessionStore) Login(login, password string) (string, error) {
	var admin models.Admin
	if err := s.db.Where("login = ?", login).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(raw)

	session := models.Session{
		AdminID:   admin.ID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", err
	}
	return token, nil
}

// Validate reports whether the token belongs to a live, unexpired session.
func (s *SessionStore) Validate(token string) bool {
	if token == "" {
		return false
	}
	var count int64
	err := s.db.Model(&models.Session{}).
		Where("token_hash = ? AND expires_at > ?", hashToken(token), time.Now()).
		Count(&count).Error
	return err == nil && count > 0
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
