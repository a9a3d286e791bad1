package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/moonveil/tarot-backend/internal/config"
	"github.com/moonveil/tarot-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func setupAuth(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Plain schema: the Postgres uuid defaults in the models are not
	// valid sqlite DDL, and the service assigns IDs itself anyway.
	for _, stmt := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT,
			nickname TEXT DEFAULT '',
			bio TEXT DEFAULT '',
			google_user_id TEXT,
			auth_provider TEXT DEFAULT 'email',
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE refresh_tokens (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			token_hash TEXT NOT NULL UNIQUE,
			expires_at DATETIME NOT NULL,
			revoked NUMERIC DEFAULT false,
			created_at DATETIME
		)`,
		`CREATE TABLE readings (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			theme TEXT NOT NULL,
			spread_type TEXT NOT NULL,
			cards TEXT NOT NULL,
			created_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return NewAuthService(db, testConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuth(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "a@example.com", resp.User.Email)

	// Access token is a valid HS256 JWT carrying the user id.
	token, err := jwt.Parse(resp.AccessToken, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])

	login, err := svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegister_Rejections(t *testing.T) {
	svc := setupAuth(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "short"})
	assert.Error(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupAuth(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "wrongwrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_Rotation(t *testing.T) {
	svc := setupAuth(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// The consumed token is revoked and cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc := setupAuth(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: reg.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdateProfile(t *testing.T) {
	svc := setupAuth(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)

	nickname := "Moon Reader"
	bio := "Chasing arcana."
	user, err := svc.UpdateProfile(reg.User.ID, &dto.UpdateProfileRequest{Nickname: &nickname, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, nickname, user.Nickname)
	assert.Equal(t, bio, user.Bio)

	// Nil fields leave existing values alone.
	user, err = svc.UpdateProfile(reg.User.ID, &dto.UpdateProfileRequest{Bio: nil, Nickname: nil})
	require.NoError(t, err)
	assert.Equal(t, nickname, user.Nickname)
	assert.Equal(t, bio, user.Bio)
}

func TestDeleteAccount(t *testing.T) {
	svc := setupAuth(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)

	err = svc.DeleteAccount(reg.User.ID, "wrongwrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.DeleteAccount(reg.User.ID, "longenough"))

	_, err = svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
