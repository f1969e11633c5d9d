package graph

import "fmt"

// NotFoundError reports a reference to a hotel, flight, or product id that
// does not exist in the graph. It is fatal to the call that raised it.
type NotFoundError struct {
	Kind string // "hotel", "flight", or "product"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s id: %s", e.Kind, e.ID)
}
