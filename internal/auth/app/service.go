package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// demoUsers are the built-in fallback accounts checked after the stored
// user list, matching the demo storefront's static users.json.
var demoUsers = []domain.User{
	{Username: "user", Password: "userpass", Role: domain.RoleUser},
	{Username: "admin", Password: "adminpass", Role: domain.RoleAdmin},
}

type Service struct {
	users    UserRepo
	sessions SessionRepo
}

func NewService(users UserRepo, sessions SessionRepo) *Service {
	return &Service{users: users, sessions: sessions}
}

// Register appends a new user with role "user". Duplicate usernames are
// rejected.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrInvalidInput
	}

	users, err := s.users.Load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == username {
			return ErrUsernameTaken
		}
	}

	return s.users.Save(ctx, append(users, domain.User{
		Username: username,
		Password: password,
		Role:     domain.RoleUser,
	}))
}

// Login compares credentials by plaintext equality against the stored users,
// then the demo fallbacks. Success stores the session.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Session, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	for _, u := range append(users, demoUsers...) {
		if u.Username == username && u.Password == password {
			sess := domain.Session{Username: u.Username, Role: u.Role}
			if err := s.sessions.Put(ctx, sess); err != nil {
				return domain.Session{}, err
			}
			return sess, nil
		}
	}
	return domain.Session{}, ErrInvalidCredentials
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the session, or ok=false when anonymous.
func (s *Service) Current(ctx context.Context) (domain.Session, bool, error) {
	return s.sessions.Get(ctx)
}
