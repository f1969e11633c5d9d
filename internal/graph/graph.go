// Package graph implements the in-memory travel product graph store.
package graph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
)

// Graph is a flat two-table store of hotels and flights. The only edges in
// scope are "product owns child node" and "product has tag", so the tables
// stay maps keyed by product id.
//
// Reads and writes take the same lock; callers get value copies, never
// references into the tables.
type Graph struct {
	mu      sync.RWMutex
	hotels  map[string]*model.Hotel
	flights map[string]*model.Flight

	amenitySeq Sequencer
	serviceSeq Sequencer
}

// New builds a Graph from the given product nodes. Later entries win on
// duplicate ids.
func New(hotels []model.Hotel, flights []model.Flight) *Graph {
	g := &Graph{
		hotels:  make(map[string]*model.Hotel, len(hotels)),
		flights: make(map[string]*model.Flight, len(flights)),
	}
	for i := range hotels {
		h := hotels[i]
		g.hotels[h.ID] = &h
	}
	for i := range flights {
		f := flights[i]
		g.flights[f.ID] = &f
	}
	return g
}

// AddAmenity creates a new amenity node attached to a hotel.
func (g *Graph) AddAmenity(hotelID, name, description string, metadata map[string]string) (model.Amenity, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	hotel, ok := g.hotels[hotelID]
	if !ok {
		return model.Amenity{}, &NotFoundError{Kind: "hotel", ID: hotelID}
	}
	amenity := model.Amenity{
		ID:          fmt.Sprintf("amenity-%d", g.amenitySeq.Next()),
		Name:        name,
		Description: description,
		Metadata:    cloneMetadata(metadata),
	}
	hotel.Amenities = append(hotel.Amenities, amenity)
	return amenity, nil
}

// AddService creates a new service node attached to a flight route/class.
func (g *Graph) AddService(flightID, name, description string, metadata map[string]string) (model.Service, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	flight, ok := g.flights[flightID]
	if !ok {
		return model.Service{}, &NotFoundError{Kind: "flight", ID: flightID}
	}
	service := model.Service{
		ID:          fmt.Sprintf("service-%d", g.serviceSeq.Next()),
		Name:        name,
		Description: description,
		Metadata:    cloneMetadata(metadata),
	}
	flight.Services = append(flight.Services, service)
	return service, nil
}

// GetHotel returns a copy of the hotel with the given id.
func (g *Graph) GetHotel(id string) (model.Hotel, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	hotel, ok := g.hotels[id]
	if !ok {
		return model.Hotel{}, &NotFoundError{Kind: "hotel", ID: id}
	}
	return copyHotel(hotel), nil
}

// GetFlight returns a copy of the flight with the given id.
func (g *Graph) GetFlight(id string) (model.Flight, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	flight, ok := g.flights[id]
	if !ok {
		return model.Flight{}, &NotFoundError{Kind: "flight", ID: id}
	}
	return copyFlight(flight), nil
}

// ListHotels returns all hotels in unspecified order.
func (g *Graph) ListHotels() []model.Hotel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.Hotel, 0, len(g.hotels))
	for _, h := range g.hotels {
		out = append(out, copyHotel(h))
	}
	return out
}

// ListFlights returns all flights in unspecified order.
func (g *Graph) ListFlights() []model.Flight {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.Flight, 0, len(g.flights))
	for _, f := range g.flights {
		out = append(out, copyFlight(f))
	}
	return out
}

// AddTag appends tag to whichever product owns productID. Tags are not
// deduplicated: classifying the same product for the same intent twice
// records the tag twice.
func (g *Graph) AddTag(productID, tag string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if hotel, ok := g.hotels[productID]; ok {
		hotel.Tags = append(hotel.Tags, tag)
		return nil
	}
	if flight, ok := g.flights[productID]; ok {
		flight.Tags = append(flight.Tags, tag)
		return nil
	}
	return &NotFoundError{Kind: "product", ID: productID}
}

// GetTags returns the ordered tag sequence of the product with productID.
func (g *Graph) GetTags(productID string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if hotel, ok := g.hotels[productID]; ok {
		return append([]string(nil), hotel.Tags...), nil
	}
	if flight, ok := g.flights[productID]; ok {
		return append([]string(nil), flight.Tags...), nil
	}
	return nil, &NotFoundError{Kind: "product", ID: productID}
}

// FindHotelsByIDs resolves ids to hotels, preserving input order and
// silently skipping unknown ids. A non-empty location keeps only hotels
// whose location matches case-insensitively.
func (g *Graph) FindHotelsByIDs(ids []string, location string) []model.Hotel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.Hotel, 0, len(ids))
	for _, id := range ids {
		hotel, ok := g.hotels[id]
		if !ok {
			continue
		}
		if location != "" && !strings.EqualFold(hotel.Location, location) {
			continue
		}
		out = append(out, copyHotel(hotel))
	}
	return out
}

// FindFlightsByIDs is the flight counterpart of FindHotelsByIDs, filtering
// on a case-insensitive exact route match.
func (g *Graph) FindFlightsByIDs(ids []string, route string) []model.Flight {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.Flight, 0, len(ids))
	for _, id := range ids {
		flight, ok := g.flights[id]
		if !ok {
			continue
		}
		if route != "" && !strings.EqualFold(flight.Route, route) {
			continue
		}
		out = append(out, copyFlight(flight))
	}
	return out
}

func copyHotel(h *model.Hotel) model.Hotel {
	out := *h
	out.Amenities = append([]model.Amenity(nil), h.Amenities...)
	out.Tags = append([]string(nil), h.Tags...)
	return out
}

func copyFlight(f *model.Flight) model.Flight {
	out := *f
	out.Services = append([]model.Service(nil), f.Services...)
	out.Tags = append([]string(nil), f.Tags...)
	return out
}

func cloneMetadata(m map[string]string) map[string]string {
	if len(m) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
