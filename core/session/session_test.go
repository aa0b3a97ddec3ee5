package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/session"
	"github.com/meridianedu/portal/core/user"
	"github.com/meridianedu/portal/storage/inmem"
)

func setup(t *testing.T) *session.Session {
	t.Helper()
	db, err := inmem.OpenSeeded()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	svc := user.NewService(inmem.NewUserRepository(db), &core.Config{DemoAuth: true})
	return session.New(svc)
}

func TestSession_loginLogout(t *testing.T) {
	sess := setup(t)

	_, ok := sess.Current()
	assert.False(t, ok, "new session should be anonymous")

	usr, err := sess.Login(user.Credentials{Email: "alex@meridian.edu", Password: "anything", Role: user.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, "s1", usr.ID)

	current, ok := sess.Current()
	require.True(t, ok)
	assert.Equal(t, "Alex Johnson", current.Name)

	sess.Logout()
	_, ok = sess.Current()
	assert.False(t, ok)

	// idempotent
	sess.Logout()
	assert.False(t, sess.Authenticated())
}

func TestSession_failedLoginStaysAnonymous(t *testing.T) {
	sess := setup(t)

	_, err := sess.Login(user.Credentials{Email: "alex@meridian.edu", Password: "x", Role: user.RoleTeacher})
	assert.Equal(t, user.ErrInvalidCredentials, err)
	assert.False(t, sess.Authenticated())

	// empty password never reaches authentication
	_, err = sess.Login(user.Credentials{Email: "alex@meridian.edu", Role: user.RoleStudent})
	assert.Error(t, err)
	assert.False(t, sess.Authenticated())
}

func TestSession_signupAutoLogin(t *testing.T) {
	sess := setup(t)

	usr, err := sess.Signup(user.NewUser{
		Name:       "Nina Okafor",
		Email:      "nina@meridian.edu",
		Password:   "pwd",
		Role:       user.RoleStudent,
		Department: "Physics",
	})
	require.NoError(t, err)

	current, ok := sess.Current()
	require.True(t, ok, "signup should authenticate the session")
	assert.Equal(t, usr.ID, current.ID)
}

func TestSession_failedSignupStaysAnonymous(t *testing.T) {
	sess := setup(t)

	_, err := sess.Signup(user.NewUser{
		Name:     "Impostor",
		Email:    "alex@meridian.edu",
		Password: "pwd",
		Role:     user.RoleTeacher,
	})
	assert.Error(t, err)
	assert.False(t, sess.Authenticated())
}
