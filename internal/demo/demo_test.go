package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/app"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/config"
)

func TestRunWalksAllStages(t *testing.T) {
	sys, err := app.Build(config.Config{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var out bytes.Buffer
	if err := Run(&out, sys); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"=== Stage 1: New Inventory Addition ===",
		"=== Stage 2: Product Graph Verification ===",
		"=== Stage 3: Intent Catalog Update ===",
		"=== Stage 4: Agent Search ===",
		"=== Stage 5: Booking Confirmation ===",
		"Sunshine Resort amenities now include: [Kids' Club]",
		"Mapped Kids' Club (Amenity) to intent FamilyVacation.",
		"Here is what I found:",
		"confirmed with code HTL-",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q\n%s", want, text)
		}
	}
}

func TestRunUpdatesCatalogAndTags(t *testing.T) {
	sys, err := app.Build(config.Config{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var out bytes.Buffer
	if err := Run(&out, sys); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := sys.Catalog.ListProducts("SeamlessJourney"); len(got) != 1 || got[0] != "route789" {
		t.Fatalf("SeamlessJourney not registered: %v", got)
	}
	tags, err := sys.Graph.GetTags("hotel123")
	if err != nil {
		t.Fatalf("GetTags: %v", err)
	}
	if len(tags) == 0 || tags[len(tags)-1] != "FamilyVacation" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}
