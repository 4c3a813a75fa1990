package http

import (
	"errors"
	"users/entities"

	"github.com/labstack/echo/v4"
)

type addTicketRequest struct {
	MatchID        string `json:"match_id"`
	TicketCategory string `json:"ticket_category"`
	SerialNo       string `json:"serial_no"`
}

func (h Handler) GetTickets(c echo.Context) error {
	user, err := h.userRepo.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, entities.ErrUserNotFound) {
		return respondMessage(c, 404, "User not found")
	}
	if err != nil {
		return respondMessage(c, 500, "could not get user")
	}

	return respondData(c, 200, user.Tickets)
}

func (h Handler) GetTicketBySerial(c echo.Context) error {
	user, err := h.userRepo.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, entities.ErrUserNotFound) {
		return respondMessage(c, 404, "User not found")
	}
	if err != nil {
		return respondMessage(c, 500, "could not get user")
	}

	ticket, ok := user.Tickets.BySerial(c.Param("serial_no"))
	if !ok {
		return respondMessage(c, 404, "Ticket not found")
	}

	return respondData(c, 200, ticket)
}

func (h Handler) GetTicketByMatch(c echo.Context) error {
	user, err := h.userRepo.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, entities.ErrUserNotFound) {
		return respondMessage(c, 404, "User not found")
	}
	if err != nil {
		return respondMessage(c, 500, "could not get user")
	}

	ticket, ok := user.Tickets.ByMatch(c.Param("match_id"))
	if !ok {
		return respondMessage(c, 404, "Ticket not found")
	}

	return respondData(c, 200, ticket)
}

func (h Handler) PostTicket(c echo.Context) error {
	var request addTicketRequest
	if err := c.Bind(&request); err != nil {
		return respondMessage(c, 400, "Ticket info not provided")
	}
	if request.MatchID == "" || request.TicketCategory == "" || request.SerialNo == "" {
		return respondMessage(c, 400, "Ticket info not provided")
	}

	err := h.engine.AddTicket(c.Request().Context(), c.Param("id"), entities.Ticket{
		MatchID:        request.MatchID,
		TicketCategory: request.TicketCategory,
		SerialNo:       request.SerialNo,
	})
	if errors.Is(err, entities.ErrUserNotFound) {
		return respondMessage(c, 404, "User not found")
	}
	if errors.Is(err, entities.ErrDuplicateTicket) {
		return respondMessage(c, 400, "User already has the ticket")
	}
	if err != nil {
		return respondMessage(c, 500, "could not add ticket")
	}

	return respondMessage(c, 201, "Ticket added successfully")
}

func (h Handler) DeleteTicket(c echo.Context) error {
	err := h.engine.RemoveTicket(c.Request().Context(), c.Param("id"), c.Param("serial_no"))
	if errors.Is(err, entities.ErrUserNotFound) {
		return respondMessage(c, 404, "User not found")
	}
	if errors.Is(err, entities.ErrTicketNotFound) {
		return respondMessage(c, 404, "Ticket not found")
	}
	if err != nil {
		return respondMessage(c, 500, "could not delete ticket")
	}

	return respondMessage(c, 200, "Ticket deleted successfully")
}
