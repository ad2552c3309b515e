package usecases

import (
	"errors"

	"filmrating-server/entities"
	"filmrating-server/repositories"
)

var (
	// ErrUserNotFound signals a legitimate absence, mapped to 404.
	ErrUserNotFound = errors.New("user not found")
	// ErrIDMismatch signals a replace whose path id and body id differ.
	ErrIDMismatch = errors.New("path id does not match body id")
)

type UserUseCase struct {
	UserRepo repositories.DataRepository[entities.User]
}

func NewUserUseCase(userRepo repositories.DataRepository[entities.User]) *UserUseCase {
	return &UserUseCase{
		UserRepo: userRepo,
	}
}

// GetAllUsers retrieves all users
func (uc *UserUseCase) GetAllUsers() ([]entities.User, error) {
	return uc.UserRepo.GetAll()
}

// GetUserByID retrieves a user by primary key
func (uc *UserUseCase) GetUserByID(id int) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively
func (uc *UserUseCase) GetUserByEmail(email string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByString(email)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser inserts a new user; the store assigns the id and the
// creation date. Field validation already ran at the handler boundary.
func (uc *UserUseCase) CreateUser(user *entities.User) error {
	return uc.UserRepo.Add(user)
}

// ReplaceUser overwrites every field of the stored user with the incoming
// record. The current row is fetched first: its absence is ErrUserNotFound
// and no mutation happens, and the fetched instance is the one handed to
// the repository for the overwrite.
func (uc *UserUseCase) ReplaceUser(id int, incoming *entities.User) error {
	if id != incoming.ID {
		return ErrIDMismatch
	}

	existing, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	return uc.UserRepo.Update(existing, incoming)
}

// DeleteUser removes a user. Fetch first; absence is ErrUserNotFound, not
// a silent no-op.
func (uc *UserUseCase) DeleteUser(id int) error {
	existing, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	return uc.UserRepo.Delete(existing)
}
