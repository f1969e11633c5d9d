// Package booking simulates the external booking collaborator consulted
// after a search.
package booking

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/obs"
	"github.com/fairyhunter13/travel-intent-service-simulator/internal/pricing"
)

// Confirmation is the record returned to the agent for a processed booking.
type Confirmation struct {
	ProductID        string            `json:"product_id"`
	ConfirmationCode string            `json:"confirmation_code"`
	Status           string            `json:"status"`
	Pricing          *model.PriceQuote `json:"pricing,omitempty"`
	Message          string            `json:"message"`
}

// Service processes mock booking requests and retains confirmations by code.
type Service struct {
	prices *pricing.Book

	mu       sync.RWMutex
	bookings map[string]Confirmation
}

// New builds a Service over the pricing collaborator.
func New(prices *pricing.Book) *Service {
	return &Service{prices: prices, bookings: make(map[string]Confirmation)}
}

// Book confirms a reservation for productID. details, when present, is
// woven into the confirmation message.
func (s *Service) Book(productID, userReference, details string) Confirmation {
	_ = userReference // recorded by the real collaborator, unused in the mock
	conf := Confirmation{
		ProductID:        productID,
		ConfirmationCode: generateCode(productID),
		Status:           "CONFIRMED",
		Message:          buildMessage(productID, details),
	}
	if quote, ok := s.prices.Get(productID); ok {
		conf.Pricing = &quote
	}
	s.mu.Lock()
	s.bookings[conf.ConfirmationCode] = conf
	s.mu.Unlock()
	obs.BookingsConfirmed.Inc()
	return conf
}

// Get returns the confirmation stored under code.
func (s *Service) Get(code string) (Confirmation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conf, ok := s.bookings[code]
	return conf, ok
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateCode(productID string) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	prefix := "FLT"
	if strings.HasPrefix(productID, "hotel") {
		prefix = "HTL"
	}
	return prefix + "-" + string(suffix)
}

func buildMessage(productID, details string) string {
	base := "Flight booked"
	if strings.HasPrefix(productID, "hotel") {
		base = "Reservation confirmed"
	}
	if details != "" {
		base += " for " + details
	}
	return base + "."
}
