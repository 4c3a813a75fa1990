package event

import (
	"encoding/json"
	"errors"
	"users/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sirupsen/logrus"
)

// HandleTicketRefunded removes the refunded ticket from the owner's
// collection. Returning nil acknowledges the event; only transient failures
// are returned so the broker redelivers them. Not-found outcomes are final
// and must never trigger a redelivery.
func (h Handler) HandleTicketRefunded(msg *message.Message) error {
	logger := log.FromContext(msg.Context())

	var event entities.TicketRefunded
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		logger.WithError(err).Error("Dropping undecodable refund event")
		return nil
	}

	logger = logger.WithFields(logrus.Fields{
		"user_id":   event.UserID,
		"serial_no": event.SerialNo,
		"status":    event.Status,
	})

	if event.Status != entities.RefundStatusSucceeded {
		logger.Info("Ignoring refund event, refund did not succeed")
		return nil
	}

	err := h.engine.RemoveTicket(msg.Context(), event.UserID, event.SerialNo)
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		logger.Warn("Refund event for unknown user")
		return nil
	case errors.Is(err, entities.ErrTicketNotFound):
		logger.Warn("Refund event for ticket the user does not own")
		return nil
	case err != nil:
		return err
	}

	logger.Info("Ticket removed after refund")
	return nil
}
