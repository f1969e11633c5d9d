// Package demo walks the five-stage inventory-to-booking scenario against
// a freshly seeded system.
package demo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/app"
)

// Run executes the complete new-inventory-to-booking walkthrough, writing
// the stage banners and payloads to w.
func Run(w io.Writer, sys *app.System) error {
	fmt.Fprintln(w, "=== Stage 1: New Inventory Addition ===")
	kidsEvent, err := sys.Ingestion.AddHotelAmenity(
		"hotel123", "Kids' Club", "Supervised activities for children ages 4-12.")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Added amenity event:")
	dump(w, kidsEvent)

	rideEvent, err := sys.Ingestion.AddFlightService(
		"route789", "Ride App Pickup", "Door-to-door ground transfer partner included.")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Added service event:")
	dump(w, rideEvent)

	fmt.Fprintln(w, "\n=== Stage 2: Product Graph Verification ===")
	sunshine, err := sys.Graph.GetHotel("hotel123")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(sunshine.Amenities))
	for _, a := range sunshine.Amenities {
		names = append(names, a.Name)
	}
	fmt.Fprintln(w, "Sunshine Resort amenities now include:", names)
	premium, err := sys.Graph.GetFlight("route789")
	if err != nil {
		return err
	}
	services := make([]string, 0, len(premium.Services))
	for _, s := range premium.Services {
		services = append(services, s.Name)
	}
	fmt.Fprintln(w, "Premium Economy services now include:", services)

	fmt.Fprintln(w, "\n=== Stage 3: Intent Catalog Update ===")
	for _, line := range sys.Classifier.ActivityLog() {
		fmt.Fprintln(w, "-", line)
	}
	fmt.Fprintln(w, "Current intent catalog snapshot:")
	dump(w, sys.Catalog.Snapshot())

	fmt.Fprintln(w, "\n=== Stage 4: Agent Search ===")
	family := sys.Search.Search("FamilyVacation", "Hawaii", "")
	dump(w, family)
	fmt.Fprintln(w, sys.Search.SummarizeForAgent(family))

	seamless := sys.Search.Search("SeamlessJourney", "", "JFK-LAX")
	dump(w, seamless)
	fmt.Fprintln(w, sys.Search.SummarizeForAgent(seamless))

	fmt.Fprintln(w, "\n=== Stage 5: Booking Confirmation ===")
	confirmation := sys.Booking.Book("hotel123", "demo-user-001", "1-7 Dec, Sunshine Resort")
	dump(w, confirmation)
	fmt.Fprintf(w, "Agent message: Great news! Your stay is confirmed with code %s.\n",
		confirmation.ConfirmationCode)
	return nil
}

func dump(w io.Writer, v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%+v\n", v)
		return
	}
	fmt.Fprintln(w, string(raw))
}
