package http

import (
	"context"
	"net/http"
	"users/entities"

	"github.com/labstack/echo/v4"
)

type MutationEngine interface {
	CreateUser(ctx context.Context, userID, name, email string) error
	AddTicket(ctx context.Context, userID string, ticket entities.Ticket) error
	RemoveTicket(ctx context.Context, userID, serialNo string) error
}

type UserReader interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, userID string) (entities.User, error)
}

type Handler struct {
	engine   MutationEngine
	userRepo UserReader
}

// response is the payload envelope: outcomes are carried in the code field,
// the transport status is always 200. The data field stays present even for
// an empty ticket collection.
type response struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

func respondData(c echo.Context, code int, data any) error {
	return c.JSON(http.StatusOK, response{Code: code, Data: data})
}

func respondMessage(c echo.Context, code int, message string) error {
	return c.JSON(http.StatusOK, struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}{Code: code, Message: message})
}
