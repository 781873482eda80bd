package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := jwtauth.New("HS256", []byte("test-secret"), nil)

	token, err := NewTokenWithSubject(auth, time.Minute, "USR-100")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := VerifyToken(auth, token)
	require.NoError(t, err)
	assert.Equal(t, "USR-100", subject)
}

func TestExpiredToken(t *testing.T) {
	auth := jwtauth.New("HS256", []byte("test-secret"), nil)

	token, err := NewTokenWithSubject(auth, -time.Minute, "USR-100")
	require.NoError(t, err)

	_, err = VerifyToken(auth, token)
	assert.Error(t, err)
}

func TestWrongSecret(t *testing.T) {
	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	other := jwtauth.New("HS256", []byte("other-secret"), nil)

	token, err := NewTokenWithSubject(auth, time.Minute, "USR-100")
	require.NoError(t, err)

	_, err = VerifyToken(other, token)
	assert.Error(t, err)
}
