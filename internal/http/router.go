package httpapi

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Use(WithRequestID)
	r.Use(WithLogging)

	r.Post("/hotels/{hotelID}/amenities", app.postAmenityHandler)
	r.Post("/flights/{flightID}/services", app.postServiceHandler)
	r.Get("/hotels/{hotelID}", app.getHotelHandler)
	r.Get("/flights/{flightID}", app.getFlightHandler)
	r.Get("/products/{productID}/tags", app.getTagsHandler)

	r.Get("/intents", app.getIntentsHandler)
	r.Get("/intents/{intent}", app.getIntentHandler)
	r.Get("/search", app.searchHandler)
	r.Get("/classifier/activity", app.activityHandler)

	r.Post("/bookings", app.postBookingHandler)
	r.Get("/bookings/{code}", app.getBookingHandler)

	r.Get("/healthz", app.healthHandler)
	r.Get("/debug/metrics", app.metricsHandler)
	r.Handle("/debug/vars", expvar.Handler())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", app.openapiHandler)
	r.Get("/docs", app.docsHandler)
	return r
}
