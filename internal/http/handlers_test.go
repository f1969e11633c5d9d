package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/app"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/config"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/obs"
)

func setupApp(t *testing.T) (*App, http.Handler) {
	t.Helper()
	obs.InitLogger()
	sys, err := app.Build(config.Config{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a := NewApp(sys.Cfg, sys.Graph, sys.Bus, sys.Catalog, sys.Classifier,
		sys.Ingestion, sys.Search, sys.Booking)
	return a, NewRouter(a)
}

func postJSON(t *testing.T, mux http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func getPath(t *testing.T, mux http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestPostAmenity_HappyPath(t *testing.T) {
	_, mux := setupApp(t)
	w := postJSON(t, mux, "/hotels/hotel123/amenities", `{"name":"Kids' Club","description":"Supervised activities"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var ev model.InventoryAddedEvent
	if err := json.Unmarshal(w.Body.Bytes(), &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.ItemID != "amenity-1" || ev.ItemKind != model.ItemAmenity || ev.ParentID != "hotel123" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if reqID := w.Header().Get("X-Request-Id"); reqID == "" {
		t.Fatalf("expected request id header")
	}
}

func TestPostAmenity_UnknownHotel404(t *testing.T) {
	_, mux := setupApp(t)
	w := postJSON(t, mux, "/hotels/ghost/amenities", `{"name":"Gym"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown hotel id: ghost") {
		t.Fatalf("expected offending id in payload: %s", w.Body.String())
	}
}

func TestPostAmenity_MissingName400(t *testing.T) {
	_, mux := setupApp(t)
	w := postJSON(t, mux, "/hotels/hotel123/amenities", `{"description":"nameless"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPostAmenity_WrongContentType415(t *testing.T) {
	_, mux := setupApp(t)
	r := httptest.NewRequest(http.MethodPost, "/hotels/hotel123/amenities", bytes.NewBufferString("name=x"))
	r.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", w.Code)
	}
}

func TestPostServiceThenIntentListing(t *testing.T) {
	_, mux := setupApp(t)
	w := postJSON(t, mux, "/flights/route789/services", `{"name":"Ride App Pickup"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	iw := getPath(t, mux, "/intents/SeamlessJourney")
	var resp struct {
		Intent   string   `json:"intent"`
		Products []string `json:"products"`
	}
	if err := json.Unmarshal(iw.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0] != "route789" {
		t.Fatalf("unexpected products: %v", resp.Products)
	}
}

func TestGetHotelAndTags(t *testing.T) {
	_, mux := setupApp(t)
	if w := getPath(t, mux, "/hotels/hotel123"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := getPath(t, mux, "/hotels/ghost"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w := getPath(t, mux, "/products/hotel123/tags")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp["tags"]) != 2 {
		t.Fatalf("expected seeded tags, got %v", resp["tags"])
	}
}

func TestSearchEndpoint(t *testing.T) {
	_, mux := setupApp(t)
	if w := postJSON(t, mux, "/hotels/hotel123/amenities", `{"name":"Kids' Club"}`); w.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d", w.Code)
	}
	w := getPath(t, mux, "/search?intent=FamilyVacation&location=Hawaii")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Intent  string           `json:"intent"`
		Results []map[string]any `json:"results"`
		Summary string           `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// hotel456 is seeded under FamilyVacation; hotel123 was just classified
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %v", resp.Results)
	}
	if !strings.HasPrefix(resp.Summary, "Here is what I found:") {
		t.Fatalf("unexpected summary: %q", resp.Summary)
	}
}

func TestSearchMissingIntent400(t *testing.T) {
	_, mux := setupApp(t)
	if w := getPath(t, mux, "/search?location=Hawaii"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBookingRoundTrip(t *testing.T) {
	_, mux := setupApp(t)
	w := postJSON(t, mux, "/bookings", `{"product_id":"hotel123","user_reference":"demo-user-001","details":"1-7 Dec"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var conf struct {
		ConfirmationCode string `json:"confirmation_code"`
		Status           string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &conf); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if conf.Status != "CONFIRMED" || !strings.HasPrefix(conf.ConfirmationCode, "HTL-") {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}
	if gw := getPath(t, mux, "/bookings/"+conf.ConfirmationCode); gw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", gw.Code)
	}
	if gw := getPath(t, mux, "/bookings/HTL-00000"); gw.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", gw.Code)
	}
}

func TestBookingMissingFields400(t *testing.T) {
	_, mux := setupApp(t)
	if w := postJSON(t, mux, "/bookings", `{"product_id":"hotel123"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestActivityLogEndpoint(t *testing.T) {
	_, mux := setupApp(t)
	if w := postJSON(t, mux, "/hotels/hotel123/amenities", `{"name":"Mystery Perk"}`); w.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d", w.Code)
	}
	w := getPath(t, mux, "/classifier/activity")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No intent classification found for Mystery Perk.") {
		t.Fatalf("missing miss line: %s", w.Body.String())
	}
}

func TestHealthzOK(t *testing.T) {
	_, mux := setupApp(t)
	if w := getPath(t, mux, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMetricsHandlers(t *testing.T) {
	_, mux := setupApp(t)
	w := getPath(t, mux, "/debug/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("metrics json decode: %v", err)
	}
	if _, ok := m["intents"]; !ok {
		t.Fatalf("missing intents")
	}
	if _, ok := m["subscribers"]; !ok {
		t.Fatalf("missing subscribers")
	}
	if pw := getPath(t, mux, "/metrics"); pw.Code != http.StatusOK {
		t.Fatalf("expected 200 from prometheus endpoint, got %d", pw.Code)
	}
}

func TestOpenAPIServed(t *testing.T) {
	_, mux := setupApp(t)
	w := getPath(t, mux, "/openapi.yaml")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("openapi:")) {
		t.Fatalf("expected openapi content")
	}
}

func TestDocsServed(t *testing.T) {
	_, mux := setupApp(t)
	w := getPath(t, mux, "/docs")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "swagger-ui") {
		t.Fatalf("expected swagger-ui in docs body")
	}
}
