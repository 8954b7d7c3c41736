package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"volunteerhub/auth/storage"
	"volunteerhub/auth/users"
	"volunteerhub/internal/backend"
	"volunteerhub/internal/config"
)

// Service owns browser sessions. Authentication itself happens on the
// backend; this side only keeps the descriptor the backend returned and
// checks it against the configured access rules.
type Service struct {
	backend *backend.Client
	storage storage.SessionStorage
	cfg     config.Auth
	log     *logrus.Entry
}

var (
	ErrForbidden     = errors.New("access denied")
	ErrNotAuthorized = errors.New("unauthorized")
)

func New(cfg config.Auth, client *backend.Client, storage storage.SessionStorage, l *logrus.Logger) *Service {
	return &Service{
		backend: client,
		storage: storage,
		cfg:     cfg,
		log:     l.WithFields(map[string]interface{}{"from": "auth"}),
	}
}

// Login authenticates against the backend and opens a local session for
// the returned descriptor.
func (s *Service) Login(ctx context.Context, email string, password string) (users.Session, error) {
	user, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return users.Session{}, err
	}
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return users.Session{}, err
	}
	session := users.Session{
		ID:        uuid.New(),
		User:      user,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(expiresIn),
	}
	if err := s.storage.Create(ctx, session); err != nil {
		return users.Session{}, err
	}
	s.log.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user logged in")
	return session, nil
}

func (s *Service) Register(ctx context.Context, email string, password string) error {
	return s.backend.Register(ctx, email, password)
}

func (s *Service) Logout(ctx context.Context, cookie string) error {
	session, err := s.sessionFromToken(ctx, cookie)
	if err != nil || session.ID == uuid.Nil {
		return nil
	}
	return s.storage.Delete(ctx, session.ID)
}

func (s *Service) GenerateJWTCookie(sessionID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   sessionID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the session behind the cookie and checks the access rules
// for the requested method and url. Guests get a zero user; a matching
// rule allowing "*" lets them through.
func (s *Service) Auth(ctx context.Context, cookie string, method string, url string) (users.Session, error) {
	session, err := s.sessionFromToken(ctx, cookie)
	if err != nil {
		session = users.Session{}
	}
	for _, rule := range s.cfg.Rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return users.Session{}, err
		}
		if !r.MatchString(url) {
			continue
		}
		for _, ruleMethod := range rule.Method {
			if ruleMethod != "*" && ruleMethod != method {
				continue
			}
			for _, role := range rule.Allow {
				if role == "*" {
					return session, nil
				}
				if !session.User.IsZero() && role == session.User.Role {
					return session, nil
				}
			}
			if session.User.IsZero() {
				return users.Session{}, ErrNotAuthorized
			}
			return users.Session{}, ErrForbidden
		}
	}
	return users.Session{}, ErrForbidden
}

func (s *Service) sessionFromToken(ctx context.Context, cookie string) (users.Session, error) {
	if cookie == "" {
		return users.Session{}, nil
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil || !token.Valid {
		return users.Session{}, ErrNotAuthorized
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return users.Session{}, errors.New("bad token claims")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.Session{}, err
	}
	session, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.Session{}, ErrNotAuthorized
		}
		return users.Session{}, err
	}
	if session.Expired(time.Now()) {
		if err := s.storage.Delete(ctx, session.ID); err != nil {
			s.log.WithError(err).Warn("unable to delete expired session")
		}
		return users.Session{}, ErrNotAuthorized
	}
	return session, nil
}

// Flash queues a one-shot message shown on the session's next page render.
func (s *Service) Flash(ctx context.Context, sessionID uuid.UUID, message string) {
	if sessionID == uuid.Nil {
		return
	}
	if err := s.storage.PushFlash(ctx, sessionID, message); err != nil {
		s.log.WithError(err).Warn("unable to store flash message")
	}
}

func (s *Service) PopFlashes(ctx context.Context, sessionID uuid.UUID) []string {
	if sessionID == uuid.Nil {
		return nil
	}
	messages, err := s.storage.PopFlashes(ctx, sessionID)
	if err != nil {
		s.log.WithError(err).Warn("unable to read flash messages")
		return nil
	}
	return messages
}

// OpenEventHandoff points the session's next dashboard visit at one event.
func (s *Service) OpenEventHandoff(ctx context.Context, sessionID uuid.UUID, eventID string) error {
	return s.storage.PutHandoff(ctx, sessionID, users.HandoffOpenEvent, eventID)
}

// ConsumeOpenEventHandoff takes the pending target event id, if any. The
// token is gone after this call whether or not the caller finds the event.
func (s *Service) ConsumeOpenEventHandoff(ctx context.Context, sessionID uuid.UUID) (string, bool) {
	value, ok, err := s.storage.ConsumeHandoff(ctx, sessionID, users.HandoffOpenEvent)
	if err != nil {
		s.log.WithError(err).Warn("unable to consume handoff token")
		return "", false
	}
	return value, ok
}
