package event

import (
	"context"
	"errors"
	"testing"
	"users/entities"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
)

type removeCall struct {
	userID   string
	serialNo string
}

type engineMock struct {
	removeErr error
	calls     []removeCall
}

func (e *engineMock) RemoveTicket(ctx context.Context, userID, serialNo string) error {
	e.calls = append(e.calls, removeCall{userID: userID, serialNo: serialNo})
	return e.removeErr
}

func newRefundMessage(payload string) *message.Message {
	return message.NewMessage(watermill.NewUUID(), []byte(payload))
}

func TestHandleTicketRefundedSucceeded(t *testing.T) {
	eng := &engineMock{}
	handler := NewHandler(eng)

	err := handler.HandleTicketRefunded(newRefundMessage(`{"user_id":"u1","serial_no":"100","status":"succeeded"}`))
	assert.NoError(t, err)
	assert.Equal(t, []removeCall{{userID: "u1", serialNo: "100"}}, eng.calls)
}

func TestHandleTicketRefundedOtherStatus(t *testing.T) {
	eng := &engineMock{}
	handler := NewHandler(eng)

	for _, status := range []string{"failed", "pending", ""} {
		err := handler.HandleTicketRefunded(newRefundMessage(`{"user_id":"u1","serial_no":"100","status":"` + status + `"}`))
		assert.NoError(t, err)
	}
	assert.Empty(t, eng.calls)
}

func TestHandleTicketRefundedNotFoundOutcomesAreAcked(t *testing.T) {
	for _, removeErr := range []error{entities.ErrUserNotFound, entities.ErrTicketNotFound} {
		eng := &engineMock{removeErr: removeErr}
		handler := NewHandler(eng)

		err := handler.HandleTicketRefunded(newRefundMessage(`{"user_id":"ghost","serial_no":"100","status":"succeeded"}`))
		assert.NoError(t, err, "expected %v to be handled without redelivery", removeErr)
		assert.Len(t, eng.calls, 1)
	}
}

func TestHandleTicketRefundedTransientFailureIsRetried(t *testing.T) {
	eng := &engineMock{removeErr: errors.New("store unreachable")}
	handler := NewHandler(eng)

	err := handler.HandleTicketRefunded(newRefundMessage(`{"user_id":"u1","serial_no":"100","status":"succeeded"}`))
	assert.Error(t, err)
}

func TestHandleTicketRefundedUndecodablePayload(t *testing.T) {
	eng := &engineMock{}
	handler := NewHandler(eng)

	err := handler.HandleTicketRefunded(newRefundMessage(`not json`))
	assert.NoError(t, err)
	assert.Empty(t, eng.calls)
}
