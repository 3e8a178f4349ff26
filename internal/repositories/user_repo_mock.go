package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"healthtrack/internal/models"
)

// UserOwnedStore is an in-memory store holding rows owned by a user.
type UserOwnedStore interface {
	DeleteByUser(userID uint)
}

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users  map[uint]models.User
	owned  []UserOwnedStore
	nextID uint
	mu     sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository. Deleting
// a user also clears the user's rows from every store in owned.
func NewMockUserRepository(owned ...UserOwnedStore) *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uint]models.User),
		owned: owned,
	}
}

// Create adds a new user, enforcing unique username and email.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("failed to create user: duplicate username or email")
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

// GetByUsername returns a user by username.
func (r *MockUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username }, "username "+username)
}

// GetByEmail returns a user by email.
func (r *MockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email }, "email "+email)
}

// GetByID returns a user by ID.
func (r *MockUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (r *MockUserRepository) find(match func(models.User) bool, desc string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with %s: %w", desc, ErrNotFound)
}

// Delete removes a user and the user's rows in the owned stores.
func (r *MockUserRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	for _, store := range r.owned {
		store.DeleteByUser(id)
	}
	delete(r.users, id)
	return nil
}
