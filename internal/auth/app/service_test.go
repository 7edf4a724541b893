package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users []domain.User
}

func (f *fakeUsers) Load(ctx context.Context) ([]domain.User, error) { return f.users, nil }
func (f *fakeUsers) Save(ctx context.Context, users []domain.User) error {
	f.users = users
	return nil
}

type fakeSessions struct {
	sess *domain.Session
}

func (f *fakeSessions) Get(ctx context.Context) (domain.Session, bool, error) {
	if f.sess == nil {
		return domain.Session{}, false, nil
	}
	return *f.sess, true, nil
}

func (f *fakeSessions) Put(ctx context.Context, sess domain.Session) error {
	f.sess = &sess
	return nil
}

func (f *fakeSessions) Clear(ctx context.Context) error {
	f.sess = nil
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsers{}
	svc := NewService(users, &fakeSessions{})

	require.NoError(t, svc.Register(ctx, "ada", "secret"))
	require.Len(t, users.users, 1)
	assert.Equal(t, domain.RoleUser, users.users[0].Role)

	assert.ErrorIs(t, svc.Register(ctx, "ada", "other"), ErrUsernameTaken)
	assert.ErrorIs(t, svc.Register(ctx, "", "x"), ErrInvalidInput)
	assert.ErrorIs(t, svc.Register(ctx, "bob", ""), ErrInvalidInput)
}

func TestLoginStoredUser(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsers{users: []domain.User{{Username: "ada", Password: "secret", Role: domain.RoleUser}}}
	sessions := &fakeSessions{}
	svc := NewService(users, sessions)

	sess, err := svc.Login(ctx, "ada", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada", sess.Username)
	require.NotNil(t, sessions.sess)

	_, err = svc.Login(ctx, "ada", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDemoFallback(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeUsers{}, &fakeSessions{})

	sess, err := svc.Login(ctx, "admin", "adminpass")
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin())

	sess, err = svc.Login(ctx, "user", "userpass")
	require.NoError(t, err)
	assert.False(t, sess.IsAdmin())
}

func TestStoredUserShadowsDemoUser(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsers{users: []domain.User{{Username: "admin", Password: "custom", Role: domain.RoleUser}}}
	svc := NewService(users, &fakeSessions{})

	sess, err := svc.Login(ctx, "admin", "custom")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, sess.Role)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	sessions := &fakeSessions{}
	svc := NewService(&fakeUsers{}, sessions)

	_, err := svc.Login(ctx, "user", "userpass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	_, ok, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
