// Package model defines domain types used by the service.
package model

// ItemKind identifies the kind of a child node attached to a product.
type ItemKind string

// ParentKind identifies the kind of a product node owning child nodes.
type ParentKind string

const (
	ItemAmenity ItemKind = "Amenity"
	ItemService ItemKind = "Service"

	ParentHotel  ParentKind = "Hotel"
	ParentFlight ParentKind = "Flight"
)

// Amenity is a hotel child node in the product graph.
type Amenity struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Service is a flight child node in the product graph.
type Service struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Hotel is a product node. Amenities and tags preserve insertion order;
// tags may contain duplicates.
type Hotel struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Location  string    `json:"location" yaml:"location"`
	Amenities []Amenity `json:"amenities" yaml:"amenities,omitempty"`
	Tags      []string  `json:"tags" yaml:"tags,omitempty"`
}

// Flight is a product node keyed by route/class.
type Flight struct {
	ID          string    `json:"id" yaml:"id"`
	Route       string    `json:"route" yaml:"route"`
	TravelClass string    `json:"travel_class" yaml:"travel_class"`
	Services    []Service `json:"services" yaml:"services,omitempty"`
	Tags        []string  `json:"tags" yaml:"tags,omitempty"`
}

// InventoryAddedEvent is the immutable notification published after a child
// node is added to a product.
type InventoryAddedEvent struct {
	ItemID      string     `json:"item_id"`
	ItemName    string     `json:"item_name"`
	ItemKind    ItemKind   `json:"item_kind"`
	ParentID    string     `json:"parent_id"`
	ParentKind  ParentKind `json:"parent_kind"`
	Description string     `json:"description,omitempty"`
}

// PriceQuote is the pricing collaborator's record for one product.
type PriceQuote struct {
	ProductID    string            `json:"product_id" yaml:"product_id"`
	Price        float64           `json:"price" yaml:"price"`
	Currency     string            `json:"currency" yaml:"currency"`
	Availability string            `json:"availability" yaml:"availability"`
	Extra        map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}
