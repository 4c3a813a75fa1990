package http

import (
	"errors"
	"users/entities"

	"github.com/labstack/echo/v4"
)

type checkCreateRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func (h Handler) GetUsers(c echo.Context) error {
	users, err := h.userRepo.List(c.Request().Context())
	if err != nil {
		return respondMessage(c, 500, "could not list users")
	}
	if len(users) == 0 {
		return respondMessage(c, 404, "No users found")
	}

	return respondData(c, 200, users)
}

func (h Handler) GetUser(c echo.Context) error {
	user, err := h.userRepo.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, entities.ErrUserNotFound) {
		return respondMessage(c, 404, "User not found")
	}
	if err != nil {
		return respondMessage(c, 500, "could not get user")
	}

	return respondData(c, 200, user)
}

func (h Handler) PostCheckCreate(c echo.Context) error {
	var request checkCreateRequest
	if err := c.Bind(&request); err != nil {
		return respondMessage(c, 400, "User info not provided")
	}
	if request.UserID == "" || request.Name == "" || request.Email == "" {
		return respondMessage(c, 400, "User info not provided")
	}

	err := h.engine.CreateUser(c.Request().Context(), request.UserID, request.Name, request.Email)
	if errors.Is(err, entities.ErrUserExists) {
		return respondMessage(c, 400, "User already exists")
	}
	if err != nil {
		return respondMessage(c, 500, "could not create user")
	}

	return respondMessage(c, 201, "User created successfully")
}
