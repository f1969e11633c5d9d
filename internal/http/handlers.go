package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/booking"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/bus"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/catalog"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/classify"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/config"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/graph"
	httpopenapi "github.com/fairyhunter13/travel-intent-service-simulator/internal/http/openapi"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/inventory"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/obs"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/search"
)

// App wires the pipeline components behind the HTTP handlers.
type App struct {
	Cfg        config.Config
	Graph      *graph.Graph
	Bus        *bus.Bus
	Catalog    *catalog.Catalog
	Classifier *classify.Classifier
	Ingestion  *inventory.Ingestion
	Search     *search.Aggregator
	Booking    *booking.Service

	validate *validator.Validate
	started  time.Time
}

// NewApp constructs an App over already-wired components.
func NewApp(cfg config.Config, g *graph.Graph, b *bus.Bus, c *catalog.Catalog,
	cl *classify.Classifier, ing *inventory.Ingestion, agg *search.Aggregator,
	bk *booking.Service) *App {
	return &App{
		Cfg: cfg, Graph: g, Bus: b, Catalog: c, Classifier: cl,
		Ingestion: ing, Search: agg, Booking: bk,
		validate: validator.New(),
		started:  time.Now(),
	}
}

// addItemRequest is the body for amenity and service ingestion. Only
// presence is validated.
type addItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// bookingRequest is the body for POST /bookings.
type bookingRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	UserReference string `json:"user_reference" validate:"required"`
	Details       string `json:"details"`
}

func (a *App) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	if err := a.validate.Struct(dst); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return false
	}
	return true
}

func (a *App) postAmenityHandler(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelID")
	var req addItemRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}
	ev, err := a.Ingestion.AddHotelAmenity(hotelID, req.Name, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ev)
	obs.Logger.Info("amenity_added",
		"request_id", RequestIDFromContext(r.Context()),
		"hotel_id", hotelID,
		"item_id", ev.ItemID,
		"item_name", ev.ItemName,
	)
}

func (a *App) postServiceHandler(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightID")
	var req addItemRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}
	ev, err := a.Ingestion.AddFlightService(flightID, req.Name, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ev)
	obs.Logger.Info("service_added",
		"request_id", RequestIDFromContext(r.Context()),
		"flight_id", flightID,
		"item_id", ev.ItemID,
		"item_name", ev.ItemName,
	)
}

func (a *App) getHotelHandler(w http.ResponseWriter, r *http.Request) {
	hotel, err := a.Graph.GetHotel(chi.URLParam(r, "hotelID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(hotel)
}

func (a *App) getFlightHandler(w http.ResponseWriter, r *http.Request) {
	flight, err := a.Graph.GetFlight(chi.URLParam(r, "flightID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(flight)
}

func (a *App) getTagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := a.Graph.GetTags(chi.URLParam(r, "productID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]string{"tags": tags})
}

func (a *App) getIntentsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.Catalog.Snapshot())
}

func (a *App) getIntentHandler(w http.ResponseWriter, r *http.Request) {
	intent := chi.URLParam(r, "intent")
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"intent":   intent,
		"products": a.Catalog.ListProducts(intent),
	})
}

// searchResponse carries the structured payload plus the agent summary.
type searchResponse struct {
	Intent  string          `json:"intent"`
	Results []search.Result `json:"results"`
	Summary string          `json:"summary"`
}

func (a *App) searchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	intent := q.Get("intent")
	if intent == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "intent is required")
		return
	}
	payload := a.Search.Search(intent, q.Get("location"), q.Get("route"))
	resp := searchResponse{
		Intent:  payload.Intent,
		Results: payload.Results,
		Summary: a.Search.SummarizeForAgent(payload),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
	obs.Logger.Info("search_served",
		"request_id", RequestIDFromContext(r.Context()),
		"intent", intent,
		"result_count", len(payload.Results),
	)
}

func (a *App) postBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}
	conf := a.Booking.Book(req.ProductID, req.UserReference, req.Details)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(conf)
	obs.Logger.Info("booking_confirmed",
		"request_id", RequestIDFromContext(r.Context()),
		"product_id", conf.ProductID,
		"confirmation_code", conf.ConfirmationCode,
	)
}

func (a *App) getBookingHandler(w http.ResponseWriter, r *http.Request) {
	conf, ok := a.Booking.Get(chi.URLParam(r, "code"))
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(conf)
}

func (a *App) activityHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]string{"activity": a.Classifier.ActivityLog()})
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"intents":        len(a.Catalog.Snapshot()),
		"subscribers":    a.Bus.SubscriberCount(),
		"activity_lines": len(a.Classifier.ActivityLog()),
		"uptime_sec":     time.Since(a.started).Seconds(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}
