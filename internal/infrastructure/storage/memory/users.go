package memory

import (
	"context"
	"sync"

	"itemkeeper/internal/domain/user"
)

// UserStore implements user.Repository. The identity set is independent from
// the item set: registrations never block item reads or writes.
type UserStore struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create assigns id = count+1 under the write lock. Identities are never
// deleted, so the counter stays collision-free.
func (s *UserStore) Create(_ context.Context, email, passwordHash, token string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return user.User{}, user.ErrEmailTaken
		}
	}

	u := user.User{
		ID:           len(s.users) + 1,
		Email:        email,
		PasswordHash: passwordHash,
		Token:        token,
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *UserStore) FindByToken(_ context.Context, token string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Token == token {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
