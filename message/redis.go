package message

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

// RefundsTopic is the durable queue this service consumes refund-completion
// events from.
const RefundsTopic = "users"

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func NewRedisSubscriber(rdb *redis.Client, watermillLogger watermill.LoggerAdapter) watermillMessage.Subscriber {
	sub, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        rdb,
		ConsumerGroup: "svc-users.refunds",
	}, watermillLogger)
	if err != nil {
		panic(err)
	}

	return sub
}
