package http

import (
	"net/http"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(
	engine MutationEngine,
	userRepo UserReader,
) *echo.Echo {
	e := libHttp.NewEcho()
	e.Use(otelecho.Middleware("users"))

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	handler := Handler{
		engine:   engine,
		userRepo: userRepo,
	}

	e.GET("/", handler.GetUsers)
	e.POST("/check-create", handler.PostCheckCreate)
	e.GET("/:id", handler.GetUser)
	e.GET("/:id/tickets", handler.GetTickets)
	e.POST("/:id/tickets", handler.PostTicket)
	e.GET("/:id/tickets/:serial_no", handler.GetTicketBySerial)
	e.DELETE("/:id/tickets/:serial_no", handler.DeleteTicket)
	e.GET("/:id/tickets/match/:match_id", handler.GetTicketByMatch)

	return e
}
