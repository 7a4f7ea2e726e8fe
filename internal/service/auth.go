package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleRider   = "rider"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"

	sessionCookieName = "stablebook_session"
)

var (
	// ErrInvalidSelection deliberately does not reveal whether the horse or
	// the rider was wrong.
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
)

// Authenticator checks a role password. The production implementation is a
// shared-secret compare; the interface exists so stronger authentication can
// be substituted without touching workflow logic.
type Authenticator interface {
	Authenticate(role, password string) error
}

type sharedSecretAuthenticator struct {
	trainerSecret string
	adminSecret   string
}

// NewSharedSecretAuthenticator builds an Authenticator over the configured
// trainer and admin passwords. A secret starting with a bcrypt prefix is
// treated as a hash; anything else is compared in constant time.
func NewSharedSecretAuthenticator(trainerSecret, adminSecret string) Authenticator {
	return &sharedSecretAuthenticator{
		trainerSecret: trainerSecret,
		adminSecret:   adminSecret,
	}
}

func (a *sharedSecretAuthenticator) Authenticate(role, password string) error {
	var want string
	switch role {
	case RoleTrainer:
		want = a.trainerSecret
	case RoleAdmin:
		want = a.adminSecret
	default:
		return ErrInvalidCredentials
	}

	if strings.HasPrefix(want, "$2a$") || strings.HasPrefix(want, "$2b$") || strings.HasPrefix(want, "$2y$") {
		err := bcrypt.CompareHashAndPassword([]byte(want), []byte(password))
		if err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(want), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// SessionClaims is the decoded content of a session token: exactly one role,
// plus the rider id for rider sessions.
type SessionClaims struct {
	Role    string
	RiderID string
}

type AuthService struct {
	riderRepo     repository.RiderRepository
	authenticator Authenticator
	sessionSecret string
	sessionExpiry time.Duration
	isProduction  bool
}

func NewAuthService(
	riderRepo repository.RiderRepository,
	authenticator Authenticator,
	sessionSecret string,
	sessionExpiry time.Duration,
	isProduction bool,
) *AuthService {
	return &AuthService{
		riderRepo:     riderRepo,
		authenticator: authenticator,
		sessionSecret: sessionSecret,
		sessionExpiry: sessionExpiry,
		isProduction:  isProduction,
	}
}

// SelectRider resolves a login selection. It succeeds only when the rider
// exists and belongs to the chosen horse; any mismatched pair fails with the
// same ErrInvalidSelection.
func (s *AuthService) SelectRider(horseID, riderID string) (*model.Rider, error) {
	if horseID == "" || riderID == "" {
		return nil, ErrInvalidSelection
	}

	rider, err := s.riderRepo.ByIDAndHorse(riderID, horseID)
	if err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			return nil, ErrInvalidSelection
		}
		return nil, err
	}

	return rider, nil
}

// LoginTrainer checks the trainer shared password.
func (s *AuthService) LoginTrainer(password string) error {
	return s.authenticator.Authenticate(RoleTrainer, password)
}

// LoginAdmin checks the administrator shared password.
func (s *AuthService) LoginAdmin(password string) error {
	return s.authenticator.Authenticate(RoleAdmin, password)
}

// GenerateSession signs a session token carrying the role (and rider id for
// rider sessions).
func (s *AuthService) GenerateSession(role, riderID string) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(s.sessionExpiry).Unix(),
		"iat":  time.Now().Unix(),
	}
	if role == RoleRider {
		claims["rider_id"] = riderID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.sessionSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifySession parses and validates a session token.
func (s *AuthService) VerifySession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	role, _ := claims["role"].(string)
	if role != RoleRider && role != RoleTrainer && role != RoleAdmin {
		return nil, ErrInvalidSession
	}

	session := &SessionClaims{Role: role}
	if role == RoleRider {
		riderID, _ := claims["rider_id"].(string)
		if riderID == "" {
			return nil, ErrInvalidSession
		}
		session.RiderID = riderID
	}

	return session, nil
}

func (s *AuthService) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(s.sessionExpiry),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionCookie reads the raw session token from the request, if present.
func SessionCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
