package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"users/entities"
)

type IUserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, userID string) (entities.User, error)
	Insert(ctx context.Context, user entities.User) error
	UpdateTickets(ctx context.Context, userID string, tickets entities.TicketCollection) error
}

type UserRepository struct {
	db *DB
}

func NewUserRepo(db *DB) UserRepository {
	if db == nil {
		panic("db is nil")
	}
	return UserRepository{
		db: db,
	}
}

func (ur UserRepository) List(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	err := ur.db.Conn.SelectContext(ctx, &users, `
		SELECT user_id, name, email, premium, tickets
		FROM users
		ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}

func (ur UserRepository) GetByID(ctx context.Context, userID string) (entities.User, error) {
	var user entities.User
	err := ur.db.Conn.GetContext(ctx, &user, `
		SELECT user_id, name, email, premium, tickets
		FROM users
		WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}

func (ur UserRepository) Insert(ctx context.Context, user entities.User) error {
	_, err := ur.db.Conn.NamedExecContext(
		ctx,
		`
		INSERT INTO
			users (user_id, name, email, premium, tickets)
		VALUES
			(:user_id, :name, :email, :premium, :tickets)`,
		user,
	)
	if isErrorUniqueViolation(err) {
		return entities.ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("could not save user: %w", err)
	}
	return nil
}

// UpdateTickets replaces the user's whole ticket collection in one statement,
// so concurrent readers see either the previous or the new collection.
func (ur UserRepository) UpdateTickets(ctx context.Context, userID string, tickets entities.TicketCollection) error {
	res, err := ur.db.Conn.ExecContext(ctx, `
		UPDATE users SET tickets = $2 WHERE user_id = $1`, userID, tickets)
	if err != nil {
		return fmt.Errorf("could not update user tickets: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrUserNotFound
	}

	return nil
}
