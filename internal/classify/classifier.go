// Package classify reacts to inventory notifications by mapping new child
// nodes to marketing intents.
package classify

import (
	"fmt"
	"sync"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/catalog"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/graph"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/obs"
)

// Classifier is the single bus subscriber in this pipeline. For every
// matched intent it registers the parent product in the catalog, appends the
// intent as a tag on the parent, and records a human-readable activity line.
//
// A graph failure propagates to the publisher through the bus; the catalog
// entries registered before the failure are kept (no rollback).
type Classifier struct {
	catalog *catalog.Catalog
	graph   *graph.Graph
	rules   Rules

	mu     sync.Mutex
	log    []string
	logCap int
}

// New builds a Classifier over the given catalog and graph. logCap bounds
// the retained activity log; zero keeps everything.
func New(c *catalog.Catalog, g *graph.Graph, rules Rules, logCap int) *Classifier {
	return &Classifier{catalog: c, graph: g, rules: rules, logCap: logCap}
}

// HandleInventoryAdded implements bus.Handler.
func (c *Classifier) HandleInventoryAdded(ev model.InventoryAddedEvent) error {
	intents := c.rules.Lookup(ev.ItemName)
	if len(intents) == 0 {
		obs.ClassificationMisses.Inc()
		c.appendLog(fmt.Sprintf("No intent classification found for %s.", ev.ItemName))
		return nil
	}

	for _, intent := range intents {
		c.catalog.AddProduct(intent, ev.ParentID)
		if err := c.graph.AddTag(ev.ParentID, intent); err != nil {
			return err
		}
		obs.ClassificationsApplied.WithLabelValues(intent).Inc()
		c.appendLog(fmt.Sprintf("Mapped %s (%s) to intent %s.", ev.ItemName, ev.ItemKind, intent))
	}

	// bundle notes for the agent-facing narrative
	if containsIntent(intents, "FamilyVacation") && ev.ParentKind == model.ParentHotel {
		c.appendLog(fmt.Sprintf("Updated Family Fun package definitions to include %s.", ev.ParentID))
	}
	if containsIntent(intents, "SeamlessJourney") && ev.ParentKind == model.ParentFlight {
		c.appendLog(fmt.Sprintf("Flagged %s for seamless journey bundle refresh.", ev.ParentID))
	}
	return nil
}

// ActivityLog returns a copy of the accumulated activity lines, oldest first.
func (c *Classifier) ActivityLog() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.log...)
}

func (c *Classifier) appendLog(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = append(c.log, line)
	if c.logCap > 0 && len(c.log) > c.logCap {
		c.log = c.log[len(c.log)-c.logCap:]
	}
}

func containsIntent(intents []string, want string) bool {
	for _, it := range intents {
		if it == want {
			return true
		}
	}
	return false
}
