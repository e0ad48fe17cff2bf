package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Mustafaa-nd/MNLab-Portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSessionDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Admin{}, &models.Session{}))
	return gdb
}

func TestSeedAdmin(t *testing.T) {
	gdb := newSessionDB(t)
	s := NewSessionStore(gdb, time.Hour)

	require.NoError(t, s.SeedAdmin("mustafaa", "secret"))

	var admin models.Admin
	require.NoError(t, gdb.Where("login = ?", "mustafaa").First(&admin).Error)
	assert.NotEqual(t, "secret", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret")))

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, s.SeedAdmin("mustafaa", "secret"))

		var count int64
		require.NoError(t, gdb.Model(&models.Admin{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rehashes when the configured password changes", func(t *testing.T) {
		require.NoError(t, s.SeedAdmin("mustafaa", "rotated"))

		require.NoError(t, gdb.Where("login = ?", "mustafaa").First(&admin).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("rotated")))
	})
}

func TestLogin(t *testing.T) {
	s := NewSessionStore(newSessionDB(t), time.Hour)
	require.NoError(t, s.SeedAdmin("mustafaa", "secret"))

	t.Run("valid credentials issue a working token", func(t *testing.T) {
		token, err := s.Login("mustafaa", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, s.Validate(token))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login("mustafaa", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Login("ghost", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("tokens are unique per login", func(t *testing.T) {
		first, err := s.Login("mustafaa", "secret")
		require.NoError(t, err)
		second, err := s.Login("mustafaa", "secret")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects garbage and empty tokens", func(t *testing.T) {
		s := NewSessionStore(newSessionDB(t), time.Hour)
		assert.False(t, s.Validate(""))
		assert.False(t, s.Validate("not-a-token"))
	})

	t.Run("rejects expired sessions", func(t *testing.T) {
		s := NewSessionStore(newSessionDB(t), -time.Minute)
		require.NoError(t, s.SeedAdmin("mustafaa", "secret"))

		token, err := s.Login("mustafaa", "secret")
		require.NoError(t, err)
		assert.False(t, s.Validate(token))
	})
}
