package entities

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrDuplicateTicket = errors.New("user already has the ticket")
)
