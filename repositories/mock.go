package repositories

import (
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"filmrating-server/entities"
)

// UserRepoMock is an in-memory DataRepository[entities.User] for tests.
// It mimics the store's behavior: assigned ids, defaulted creation date,
// lower-cased emails and a case-insensitive unique email constraint.
type UserRepoMock struct {
	mu     sync.Mutex
	nextID int
	users  map[int]entities.User
}

func NewUserRepoMock() *UserRepoMock {
	return &UserRepoMock{nextID: 1, users: make(map[int]entities.User)}
}

func (m *UserRepoMock) GetAll() ([]entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]entities.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *UserRepoMock) GetByID(id int) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *UserRepoMock) GetByString(email string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepoMock) Add(user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}

	user.ID = m.nextID
	m.nextID++
	user.Email = strings.ToLower(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = *user
	return nil
}

func (m *UserRepoMock) Update(existing, incoming *entities.User) error {
	existing.ID = incoming.ID
	existing.LastName = incoming.LastName
	existing.FirstName = incoming.FirstName
	existing.Mobile = incoming.Mobile
	existing.Email = strings.ToLower(incoming.Email)
	existing.Password = incoming.Password
	existing.Street = incoming.Street
	existing.PostalCode = incoming.PostalCode
	existing.City = incoming.City
	existing.Country = incoming.Country
	existing.Latitude = incoming.Latitude
	existing.Longitude = incoming.Longitude
	existing.Ratings = incoming.Ratings

	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[existing.ID] = *existing
	return nil
}

func (m *UserRepoMock) Delete(user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, user.ID)
	return nil
}

// Count reports how many users are stored; test helper.
func (m *UserRepoMock) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
