package message

import (
	"users/message/event"

	"github.com/ThreeDotsLabs/watermill"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
)

func NewWatermillRouter(
	subscriber watermillMessage.Subscriber,
	eventHandler event.Handler,
	watermillLogger watermill.LoggerAdapter,
) *watermillMessage.Router {
	router, err := watermillMessage.NewRouter(watermillMessage.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	useMiddlewares(router, watermillLogger)

	router.AddNoPublisherHandler(
		"HandleTicketRefunded",
		RefundsTopic,
		subscriber,
		eventHandler.HandleTicketRefunded,
	)

	return router
}
