package db

import (
	"context"
	"sync"
	"users/entities"
)

// UserRepositoryMock keeps users in memory. Safe for concurrent use by
// callers working on different users; same-user exclusivity is the mutation
// engine's job, not the repository's.
type UserRepositoryMock struct {
	lock  sync.RWMutex
	users map[string]entities.User
}

func NewUserRepoMock() *UserRepositoryMock {
	return &UserRepositoryMock{
		users: map[string]entities.User{},
	}
}

func (ur *UserRepositoryMock) List(ctx context.Context) ([]entities.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	users := make([]entities.User, 0, len(ur.users))
	for _, user := range ur.users {
		users = append(users, user)
	}
	return users, nil
}

func (ur *UserRepositoryMock) GetByID(ctx context.Context, userID string) (entities.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	user, ok := ur.users[userID]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return user, nil
}

func (ur *UserRepositoryMock) Insert(ctx context.Context, user entities.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.users[user.ID]; ok {
		return entities.ErrUserExists
	}
	ur.users[user.ID] = user
	return nil
}

func (ur *UserRepositoryMock) UpdateTickets(ctx context.Context, userID string, tickets entities.TicketCollection) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	user, ok := ur.users[userID]
	if !ok {
		return entities.ErrUserNotFound
	}
	user.Tickets = tickets
	ur.users[userID] = user
	return nil
}
