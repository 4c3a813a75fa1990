package entities

// RefundStatusSucceeded is the only refund outcome that releases a ticket.
const RefundStatusSucceeded = "succeeded"

// TicketRefunded is the payload delivered on the service's refund queue by
// the payment service once a refund attempt finishes.
type TicketRefunded struct {
	UserID   string `json:"user_id"`
	SerialNo string `json:"serial_no"`
	Status   string `json:"status"`
}
