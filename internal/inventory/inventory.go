// Package inventory orchestrates adding child nodes to the product graph
// and announcing the mutation on the notification bus.
package inventory

import (
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/bus"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/graph"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/obs"
)

// Ingestion mutates the graph first and publishes second. If a subscriber
// fails, the child node stays added; there is no compensating rollback.
type Ingestion struct {
	graph *graph.Graph
	bus   *bus.Bus
}

// New builds an Ingestion over the shared graph and bus.
func New(g *graph.Graph, b *bus.Bus) *Ingestion {
	return &Ingestion{graph: g, bus: b}
}

// AddHotelAmenity creates an amenity under hotelID and publishes the
// notification. The returned event confirms both the mutation and delivery.
func (i *Ingestion) AddHotelAmenity(hotelID, name, description string) (model.InventoryAddedEvent, error) {
	amenity, err := i.graph.AddAmenity(hotelID, name, description, nil)
	if err != nil {
		return model.InventoryAddedEvent{}, err
	}
	ev := model.InventoryAddedEvent{
		ItemID:      amenity.ID,
		ItemName:    amenity.Name,
		ItemKind:    model.ItemAmenity,
		ParentID:    hotelID,
		ParentKind:  model.ParentHotel,
		Description: description,
	}
	if err := i.bus.Publish(ev); err != nil {
		return model.InventoryAddedEvent{}, err
	}
	obs.EventsPublished.Inc()
	return ev, nil
}

// AddFlightService is the flight counterpart of AddHotelAmenity.
func (i *Ingestion) AddFlightService(flightID, name, description string) (model.InventoryAddedEvent, error) {
	service, err := i.graph.AddService(flightID, name, description, nil)
	if err != nil {
		return model.InventoryAddedEvent{}, err
	}
	ev := model.InventoryAddedEvent{
		ItemID:      service.ID,
		ItemName:    service.Name,
		ItemKind:    model.ItemService,
		ParentID:    flightID,
		ParentKind:  model.ParentFlight,
		Description: description,
	}
	if err := i.bus.Publish(ev); err != nil {
		return model.InventoryAddedEvent{}, err
	}
	obs.EventsPublished.Inc()
	return ev, nil
}
