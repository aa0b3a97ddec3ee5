package user

import (
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/meridianedu/portal/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	Repository interface {
		// CheckEmailUniqueness matches case-insensitively across both role buckets.
		CheckEmailUniqueness(email string) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id string) (User, error)
		GetUserByEmail(email string, role Role) (User, error)
	}

	Service struct {
		repo     Repository
		demoAuth bool
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{repo: repo, demoAuth: conf.DemoAuth}
}

// Register creates a new account. The registry is left untouched when the
// email is already taken, whatever the role of its current owner.
func (svc *Service) Register(nu NewUser) (User, error) {
	if err := svc.repo.CheckEmailUniqueness(nu.Email); err != nil {
		if err == ErrEmailExists {
			return User{}, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return User{}, err
	}
	usr := User{
		ID:         NewID(nu.Role),
		Name:       nu.Name,
		Email:      nu.Email,
		Role:       nu.Role,
		Department: nu.Department,
		CreatedAt:  time.Now().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(usr)
}

// Authenticate looks the account up by email and role. In demo mode the
// password value is not checked; otherwise it is verified against the
// stored hash.
func (svc *Service) Authenticate(creds Credentials) (User, error) {
	usr, err := svc.repo.GetUserByEmail(creds.Email, creds.Role)
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, pkgerrors.Wrap(err, "finding user by email")
	}
	if !svc.demoAuth {
		if err := usr.CheckPassword(creds.Password); err != nil {
			return User{}, ErrInvalidCredentials
		}
	}
	return usr, nil
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string, role Role) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */), role)
}
