package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_for_session_tests"

func TestSessionManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	manager := NewSessionManager(testSecret, time.Hour)

	token, err := manager.Issue("Karel", time.Now())
	req.NoError(err)

	username, err := manager.Verify(token)
	req.NoError(err)
	req.Equal("Karel", username)
}

func TestSessionManager_RejectsExpiredToken(t *testing.T) {
	req := require.New(t)
	manager := NewSessionManager(testSecret, time.Minute)

	// Given a token issued far in the past
	token, err := manager.Issue("Karel", time.Now().Add(-time.Hour))
	req.NoError(err)

	_, err = manager.Verify(token)
	req.Error(err)
}

func TestSessionManager_RejectsForeignSignature(t *testing.T) {
	req := require.New(t)
	manager := NewSessionManager(testSecret, time.Hour)
	other := NewSessionManager("a_completely_different_secret", time.Hour)

	token, err := other.Issue("Karel", time.Now())
	req.NoError(err)

	_, err = manager.Verify(token)
	req.Error(err)
}

func TestSessionManager_RejectsUnexpectedAlgorithm(t *testing.T) {
	req := require.New(t)
	manager := NewSessionManager(testSecret, time.Hour)

	// Given a token signed with a different HMAC variant but the same secret
	claims := &SessionClaims{
		Username: "Karel",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	req.NoError(err)

	// Then only HS256 tokens pass verification
	_, err = manager.Verify(token)
	req.Error(err)
}

func TestSessionManager_Cookies(t *testing.T) {
	req := require.New(t)
	manager := NewSessionManager(testSecret, time.Hour)

	cookie := manager.Cookie("some-token")
	req.Equal(CookieName, cookie.Name)
	req.Equal("some-token", cookie.Value)
	req.True(cookie.HttpOnly)

	cleared := manager.ClearCookie()
	req.Equal(CookieName, cleared.Name)
	req.Negative(cleared.MaxAge)
}
