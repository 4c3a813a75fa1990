// Package engine applies ticket-ownership mutations. It is the only writer
// of a user's ticket collection: every mutation for one user runs under that
// user's lock, so the HTTP gateway and the refund consumer can never
// interleave changes to the same collection.
package engine

import (
	"context"
	"fmt"
	"sync"
	"users/entities"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (entities.User, error)
	Insert(ctx context.Context, user entities.User) error
	UpdateTickets(ctx context.Context, userID string, tickets entities.TicketCollection) error
}

type Engine struct {
	repo UserRepository

	locksLock sync.Mutex
	locks     map[string]*sync.Mutex
}

func New(repo UserRepository) *Engine {
	if repo == nil {
		panic("repo is nil")
	}
	return &Engine{
		repo:  repo,
		locks: map[string]*sync.Mutex{},
	}
}

// userLock returns the mutex owning the user's collection, creating it on
// first use. Locks are never removed: the id space is the registered user
// set, which is small and never shrinks.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.locksLock.Lock()
	defer e.locksLock.Unlock()

	lock, ok := e.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}

// CreateUser registers a user with an empty ticket collection. It returns
// entities.ErrUserExists when the id is already registered.
func (e *Engine) CreateUser(ctx context.Context, userID, name, email string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	err := e.repo.Insert(ctx, entities.User{
		ID:      userID,
		Name:    name,
		Email:   email,
		Premium: "N",
		Tickets: entities.TicketCollection{},
	})
	if err != nil {
		return fmt.Errorf("could not create user %s: %w", userID, err)
	}
	return nil
}

// AddTicket appends a ticket to the user's collection. It returns
// entities.ErrUserNotFound or entities.ErrDuplicateTicket on the
// corresponding conflicts, without mutating anything.
func (e *Engine) AddTicket(ctx context.Context, userID string, ticket entities.Ticket) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := e.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not load user %s: %w", userID, err)
	}

	updated, err := user.Tickets.Add(ticket)
	if err != nil {
		return fmt.Errorf("could not add ticket %s to user %s: %w", ticket.SerialNo, userID, err)
	}

	if err := e.repo.UpdateTickets(ctx, userID, updated); err != nil {
		return fmt.Errorf("could not persist tickets of user %s: %w", userID, err)
	}
	return nil
}

// RemoveTicket drops the ticket with the serial number from the user's
// collection. It returns entities.ErrUserNotFound or
// entities.ErrTicketNotFound when there is nothing to remove.
func (e *Engine) RemoveTicket(ctx context.Context, userID, serialNo string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := e.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not load user %s: %w", userID, err)
	}

	updated, err := user.Tickets.Remove(serialNo)
	if err != nil {
		return fmt.Errorf("could not remove ticket %s from user %s: %w", serialNo, userID, err)
	}

	if err := e.repo.UpdateTickets(ctx, userID, updated); err != nil {
		return fmt.Errorf("could not persist tickets of user %s: %w", userID, err)
	}
	return nil
}
