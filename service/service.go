package service

import (
	"context"
	"net/http"
	"users/db"
	"users/engine"
	usersHttp "users/http"
	"users/message"
	"users/message/event"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
}

func New(
	redisClient *redis.Client,
	conn db.DB,
) Service {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	userRepo := db.NewUserRepo(&conn)
	mutationEngine := engine.New(userRepo)

	eventsHandler := event.NewHandler(mutationEngine)

	redisSubscriber := message.NewRedisSubscriber(redisClient, watermillLogger)
	watermillRouter := message.NewWatermillRouter(
		redisSubscriber,
		eventsHandler,
		watermillLogger,
	)

	echoRouter := usersHttp.NewHttpRouter(
		mutationEngine,
		userRepo,
	)

	return Service{
		watermillRouter,
		echoRouter,
	}
}

func (s Service) Run(
	ctx context.Context,
) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	consumerStopped := make(chan struct{})

	errgrp.Go(func() error {
		// a broken consumer is reported but must not take the HTTP gateway
		// down with it
		defer close(consumerStopped)
		if err := s.watermillRouter.Run(ctx); err != nil {
			log.FromContext(ctx).WithError(err).Error("Refund consumer stopped")
		}
		return nil
	})

	errgrp.Go(func() error {
		// don't serve traffic before the refund consumer is running, unless
		// it already gave up on startup
		select {
		case <-s.watermillRouter.Running():
		case <-consumerStopped:
		}

		err := s.echoRouter.Start(":8080")
		if err != nil && err != http.ErrServerClosed {
			return err
		}

		return nil
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
