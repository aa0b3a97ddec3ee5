package inmem

import (
	"strings"

	"github.com/meridianedu/portal/core/user"
)

type userRepository struct {
	db *userTable
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.users}
}

func (repo *userRepository) CheckEmailUniqueness(email string) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.rows {
		if strings.EqualFold(usr.Email, email) {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, usr)
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]user.User, len(repo.db.rows))
	copy(users, repo.db.rows)
	return users, nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string, role user.Role) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.Role == role && strings.EqualFold(usr.Email, email) {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
