// Package auth resolves identities for the back-office API. Sessions are
// stateless signed tokens: the JWT subject carries the user id and the role
// is re-checked against the user store on every request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/latin-ecom/backoffice-manager/internal/auth/jwt"
	"github.com/latin-ecom/backoffice-manager/internal/auth/pwhash"
	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

// ErrInvalidCredentials is returned when email or password don't match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for missing, malformed or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
}

// Server implements login and token-to-user resolution.
type Server struct {
	userRepository dependency.Users
	pwhash         *pwhash.PasswordHasher
	JwtAuth        *jwtauth.JWTAuth
	jwtTTL         time.Duration
}

// New creates a new auth server. The hasher is shared with the store, which
// uses it to seed the demo credentials.
func New(c *Config, ur dependency.Users, ph *pwhash.PasswordHasher) (*Server, error) {
	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("can't parse jwt ttl: %w", err)
	}

	return &Server{
		userRepository: ur,
		pwhash:         ph,
		JwtAuth:        jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:         ttl,
	}, nil
}

// Login checks the credentials and mints an auth token for the user.
func (s *Server) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := s.pwhash.Validate(password, user.PasswordHash); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("can't mint token: %w", err)
	}
	return token, user, nil
}

// UserFromToken verifies the bearer token and loads its user.
func (s *Server) UserFromToken(ctx context.Context, token string) (*entity.User, error) {
	subject, err := jwt.VerifyToken(s.JwtAuth, token)
	if err != nil || subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepository.GetUserById(ctx, subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
