// Package app wires the pipeline components from configuration and seeds.
package app

import (
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/booking"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/bus"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/catalog"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/classify"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/config"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/graph"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/inventory"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/pricing"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/search"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/seed"
)

// System is the fully wired pipeline. The graph, bus, and catalog are the
// single owners of their state; every other component holds a non-owning
// reference.
type System struct {
	Cfg        config.Config
	Graph      *graph.Graph
	Bus        *bus.Bus
	Catalog    *catalog.Catalog
	Classifier *classify.Classifier
	Ingestion  *inventory.Ingestion
	Prices     *pricing.Book
	Search     *search.Aggregator
	Booking    *booking.Service
}

// Build loads seeds and rules per cfg, constructs every component, and
// subscribes the classifier to the bus.
func Build(cfg config.Config) (*System, error) {
	sd := seed.Default()
	if cfg.SeedFile != "" {
		loaded, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		sd = loaded
	}
	rules := classify.DefaultRules()
	if cfg.RulesFile != "" {
		loaded, err := classify.LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	g := graph.New(sd.Hotels, sd.Flights)
	b := bus.New()
	c := catalog.New(sd.Intents)
	cl := classify.New(c, g, rules, cfg.ActivityLogCap)
	b.Subscribe(cl)
	prices := pricing.New(sd.Prices)

	return &System{
		Cfg:        cfg,
		Graph:      g,
		Bus:        b,
		Catalog:    c,
		Classifier: cl,
		Ingestion:  inventory.New(g, b),
		Prices:     prices,
		Search:     search.New(g, c, prices),
		Booking:    booking.New(prices),
	}, nil
}
