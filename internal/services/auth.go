package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"devmarket/internal/models"
)

// ErrInvalidCredentials is returned when the email or password is wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService owns admin sign-in, the in-memory session table, and
// session-change notifications. Sessions live until sign-out or process
// restart; the session token travels in a cookie.
type AuthService struct {
	mu           sync.RWMutex
	adminEmail   string
	passwordHash string
	sessions     map[string]*models.Session
	subscribers  []func(*models.Session)
	logger       *slog.Logger
}

// NewAuthService builds the service around a single admin account. The
// password hash must be a bcrypt hash.
func NewAuthService(adminEmail, passwordHash string, logger *slog.Logger) *AuthService {
	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		sessions:     make(map[string]*models.Session),
		logger:       logger,
	}
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SignIn verifies the credentials and opens a new session. The returned
// session carries the admin flag; subscribers are notified of the sign-in.
func (a *AuthService) SignIn(email, password string) (*models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if email != a.adminEmail || bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) != nil {
		a.logger.Warn("sign-in rejected", "email", email)
		return nil, ErrInvalidCredentials
	}

	session := &models.Session{
		Token:     uuid.New().String(),
		Email:     email,
		IsAdmin:   true,
		CreatedAt: time.Now(),
	}
	a.sessions[session.Token] = session
	a.notify(session)
	a.logger.Info("admin signed in", "email", email)
	return session, nil
}

// SignOut closes the session for the given token. Unknown tokens are
// ignored. Subscribers receive a nil session.
func (a *AuthService) SignOut(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.sessions[token]; !ok {
		return
	}
	delete(a.sessions, token)
	a.notify(nil)
}

// Session returns the current session for a token, or false if none.
func (a *AuthService) Session(token string) (*models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.sessions[token]
	return s, ok
}

// Subscribe registers fn to run on every session change: the new session on
// sign-in, nil on sign-out.
func (a *AuthService) Subscribe(fn func(*models.Session)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

// notify is called with a.mu held.
func (a *AuthService) notify(s *models.Session) {
	for _, fn := range a.subscribers {
		fn(s)
	}
}

// ChangePassword swaps the admin password after verifying the old one.
// Existing sessions stay valid.
func (a *AuthService) ChangePassword(oldPassword, newPassword string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	a.passwordHash = hash
	a.logger.Info("admin password changed")
	return nil
}
