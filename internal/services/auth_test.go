package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, token, err := svc.Register("alice", "secret123", "Alice")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEmpty(t, token)
	require.Equal(t, "alice", user.Username)

	gotID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, gotID)

	_, _, err = svc.Register("alice", "other-password", "")
	require.ErrorIs(t, err, ErrUsernameTaken)

	loggedIn, token2, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, token2)

	_, _, err = svc.Login("alice", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterLosingConcurrentDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	// Slip a conflicting row in after Register's existence check but
	// before its insert, the way a concurrent registration would win
	// the race. The loser must still see the username-taken error,
	// not a bare unique-index failure.
	injected := false
	err := db.Callback().Create().Before("gorm:create").Register("conflicting_signup", func(tx *gorm.DB) {
		if injected || tx.Statement.Table != "users" {
			return
		}
		injected = true

		sqlDB, err := db.DB()
		if err != nil {
			t.Errorf("get raw connection: %v", err)
			return
		}
		_, err = sqlDB.Exec(
			"INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)",
			"eve", "x.y", time.Now(),
		)
		if err != nil {
			t.Errorf("insert conflicting user: %v", err)
		}
	})
	require.NoError(t, err)

	_, _, err = svc.Register("eve", "secret123", "")
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.True(t, injected)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, token, err := svc.Register("bob", "secret123", "")
	require.NoError(t, err)

	// Flipping any single byte must invalidate the token.
	for i := 0; i < len(token); i += 7 {
		raw := []byte(token)
		raw[i] ^= 0x01
		_, err := svc.ValidateToken(string(raw))
		require.ErrorIs(t, err, ErrInvalidToken, "tampered byte at %d accepted", i)
	}
}

func TestValidateTokenFailuresAreUniform(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	otherSvc := NewAuthService(db, "different-secret")
	_, foreignToken, err := otherSvc.Register("carol", "secret123", "")
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"malformed", "not-a-jwt"},
		{"wrong secret", foreignToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, _, err := svc.Register("dave", "secret123", "Dave")
	require.NoError(t, err)

	got, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "Dave", got.Name)

	_, err = svc.GetUserByID(99999)
	require.ErrorIs(t, err, ErrNotFound)
}
