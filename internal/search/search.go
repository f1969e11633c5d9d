// Package search joins catalog, graph, and pricing data into agent-facing
// results.
package search

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/catalog"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/graph"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/obs"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/pricing"
)

// Result is one search hit. Hotel and flight rows carry different keys, and
// flight rows additionally absorb the price quote's extra fields, so the row
// stays a loose map like the agent payload it becomes.
type Result map[string]any

// Payload is the structured response for one intent search.
type Payload struct {
	Intent  string   `json:"intent"`
	Results []Result `json:"results"`
}

// Aggregator resolves an intent into ranked, priced results.
type Aggregator struct {
	graph   *graph.Graph
	catalog *catalog.Catalog
	prices  *pricing.Book
}

// New builds an Aggregator over the shared stores.
func New(g *graph.Graph, c *catalog.Catalog, p *pricing.Book) *Aggregator {
	return &Aggregator{graph: g, catalog: c, prices: p}
}

// Search resolves candidate ids for intent, filters them through the graph
// lookups, and joins pricing. Hotels come before flights; within each group
// the order is the catalog's id order filtered by the graph. An intent with
// no products yields an empty result list, not an error.
func (a *Aggregator) Search(intent, location, route string) Payload {
	obs.SearchesServed.Inc()

	productIDs := a.catalog.ListProducts(intent)
	hotels := a.graph.FindHotelsByIDs(productIDs, location)
	flights := a.graph.FindFlightsByIDs(productIDs, route)

	results := make([]Result, 0, len(hotels)+len(flights))
	for _, hotel := range hotels {
		quote, ok := a.prices.Get(hotel.ID)
		results = append(results, Result{
			"type":            "hotel",
			"id":              hotel.ID,
			"name":            hotel.Name,
			"location":        hotel.Location,
			"features":        amenityNames(hotel.Amenities),
			"price_per_night": formatPrice(quote, ok),
			"availability":    availability(quote, ok),
		})
	}
	for _, flight := range flights {
		quote, ok := a.prices.Get(flight.ID)
		row := Result{
			"type":         "flight",
			"id":           flight.ID,
			"route":        flight.Route,
			"class":        flight.TravelClass,
			"features":     serviceNames(flight.Services),
			"price":        formatPrice(quote, ok),
			"availability": availability(quote, ok),
		}
		if ok {
			// extra fields win on key collision
			for k, v := range quote.Extra {
				row[k] = v
			}
		}
		results = append(results, row)
	}

	return Payload{Intent: intent, Results: results}
}

// SummarizeForAgent renders a conversational summary of a search payload.
func (a *Aggregator) SummarizeForAgent(payload Payload) string {
	if len(payload.Results) == 0 {
		return "I could not find any options that match that intent right now."
	}

	messages := make([]string, 0, len(payload.Results))
	for _, res := range payload.Results {
		switch res["type"] {
		case "hotel":
			messages = append(messages, fmt.Sprintf(
				"%s in %s from %s per night. Highlights: %s.",
				res["name"], res["location"], res["price_per_night"],
				featureList(res["features"]),
			))
		case "flight":
			messages = append(messages, fmt.Sprintf(
				"%s %s at %s. Extras: %s. Next availability: %s.",
				res["route"], res["class"], res["price"],
				featureList(res["features"]), res["availability"],
			))
		}
	}
	return "Here is what I found: " + " " + strings.Join(messages, " ")
}

func formatPrice(quote model.PriceQuote, ok bool) string {
	if !ok {
		return "Unknown"
	}
	return fmt.Sprintf("$%s %s", humanize.CommafWithDigits(quote.Price, 0), quote.Currency)
}

func availability(quote model.PriceQuote, ok bool) string {
	if !ok {
		return "Unknown"
	}
	return quote.Availability
}

func amenityNames(amenities []model.Amenity) []string {
	names := make([]string, 0, len(amenities))
	for _, a := range amenities {
		names = append(names, a.Name)
	}
	return names
}

func serviceNames(services []model.Service) []string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names
}

func featureList(v any) string {
	features, _ := v.([]string)
	if len(features) == 0 {
		return "None"
	}
	return strings.Join(features, ", ")
}
