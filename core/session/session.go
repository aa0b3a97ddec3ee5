// Package session tracks the authenticated identity of one portal session.
//
// The session is the only state machine in the portal:
// Anonymous → Authenticated(User) on successful Login/Signup,
// Authenticated(User) → Anonymous on Logout. Nothing survives the session;
// a restart resets the whole store to its seed snapshot.
package session

import (
	"github.com/meridianedu/portal/core/user"
)

type Session struct {
	users *user.Service
	usr   *user.User
}

// New returns an anonymous session. One is created at startup and discarded
// at exit; no identity is shared through package state.
func New(users *user.Service) *Session {
	return &Session{users: users}
}

func (s *Session) Login(creds user.Credentials) (user.User, error) {
	if err := creds.Validate(); err != nil {
		return user.User{}, err
	}
	usr, err := s.users.Authenticate(creds)
	if err != nil {
		return user.User{}, err
	}
	s.usr = &usr
	return usr, nil
}

// Signup registers the account and authenticates it in one step.
func (s *Session) Signup(nu user.NewUser) (user.User, error) {
	if err := nu.Validate(); err != nil {
		return user.User{}, err
	}
	usr, err := s.users.Register(nu)
	if err != nil {
		return user.User{}, err
	}
	s.usr = &usr
	return usr, nil
}

// Logout clears the identity unconditionally; calling it while anonymous
// is a no-op.
func (s *Session) Logout() {
	s.usr = nil
}

func (s *Session) Current() (user.User, bool) {
	if s.usr == nil {
		return user.User{}, false
	}
	return *s.usr, true
}

func (s *Session) Authenticated() bool {
	return s.usr != nil
}
