package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type User struct {
	ID      string           `json:"id" db:"user_id"`
	Name    string           `json:"name" db:"name"`
	Email   string           `json:"email" db:"email"`
	Premium string           `json:"premium" db:"premium"`
	Tickets TicketCollection `json:"tickets" db:"tickets"`
}

type Ticket struct {
	MatchID        string `json:"match_id"`
	TicketCategory string `json:"ticket_category"`
	SerialNo       string `json:"serial_no"`
}

// TicketCollection is one user's owned tickets, insertion-ordered and keyed
// by serial number. It never locks; callers go through the mutation engine.
type TicketCollection []Ticket

func (c TicketCollection) BySerial(serialNo string) (Ticket, bool) {
	for _, t := range c {
		if t.SerialNo == serialNo {
			return t, true
		}
	}
	return Ticket{}, false
}

func (c TicketCollection) ByMatch(matchID string) (Ticket, bool) {
	for _, t := range c {
		if t.MatchID == matchID {
			return t, true
		}
	}
	return Ticket{}, false
}

// Add returns a new collection with the ticket appended. The receiver is not
// modified.
func (c TicketCollection) Add(ticket Ticket) (TicketCollection, error) {
	if _, ok := c.BySerial(ticket.SerialNo); ok {
		return nil, ErrDuplicateTicket
	}

	updated := make(TicketCollection, 0, len(c)+1)
	updated = append(updated, c...)
	updated = append(updated, ticket)

	return updated, nil
}

// Remove returns a new collection without the ticket carrying the serial
// number. The receiver is not modified.
func (c TicketCollection) Remove(serialNo string) (TicketCollection, error) {
	if _, ok := c.BySerial(serialNo); !ok {
		return nil, ErrTicketNotFound
	}

	updated := make(TicketCollection, 0, len(c)-1)
	for _, t := range c {
		if t.SerialNo == serialNo {
			continue
		}
		updated = append(updated, t)
	}

	return updated, nil
}

func (c TicketCollection) Value() (driver.Value, error) {
	if c == nil {
		c = TicketCollection{}
	}
	return json.Marshal(c)
}

func (c *TicketCollection) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = TicketCollection{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TicketCollection", src)
	}
}
