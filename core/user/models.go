package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/meridianedu/portal/core"
)

// Role is the closed set of portal identities. Every operation dispatches
// on it; there is no admin tier.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

var Roles = []Role{RoleStudent, RoleTeacher}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher:
		return true
	}
	return false
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"` // case-insensitively unique across both roles
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`

	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u User) IsStudent() bool { return u.Role == RoleStudent }
func (u User) IsTeacher() bool { return u.Role == RoleTeacher }

// NewUser contains information needed to sign a new User up.
type NewUser struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Role       Role   `json:"role" validate:"required,portalrole"`
	Department string `json:"department"`
}

func (nu *NewUser) Validate() error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Department = core.CleanString(nu.Department)
	return core.Validate.Struct(nu)
}

// Credentials carries a login attempt. The password is required but, in
// demo mode, never compared against anything.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,portalrole"`
}

func (c *Credentials) Validate() error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return core.Validate.Struct(c)
}

// NewID returns a fresh role-prefixed user id ("s…" / "t…").
func NewID(role Role) string {
	return core.NewID(string(role[0]))
}
