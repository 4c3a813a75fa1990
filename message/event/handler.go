package event

import "context"

type MutationEngine interface {
	RemoveTicket(ctx context.Context, userID, serialNo string) error
}

type Handler struct {
	engine MutationEngine
}

func NewHandler(engine MutationEngine) Handler {
	if engine == nil {
		panic("missing engine")
	}
	return Handler{
		engine: engine,
	}
}
