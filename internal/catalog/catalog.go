// Package catalog supplies the itineraries offered once trip intake completes.
package catalog

import (
	"context"
	"errors"
)

var ErrNoItineraries = errors.New("no itineraries available")

type DayPlan struct {
	DayNumber int    `json:"day"`
	Date      string `json:"date,omitempty"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

type Itinerary struct {
	Title       string    `json:"title"`
	TotalDays   int       `json:"days"`
	BudgetRange string    `json:"budget"`
	DayPlans    []DayPlan `json:"dayPlans"`
}

// Clone returns a deep copy of the itinerary.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.DayPlans = append([]DayPlan(nil), it.DayPlans...)
	return out
}

// TripRequest carries the attributes collected during intake.
type TripRequest struct {
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Style       string `json:"style"`
	Budget      string `json:"budget"`
}

// ItineraryProvider produces candidate itineraries for a trip request.
// Implementations must return copies the caller may keep.
type ItineraryProvider interface {
	Itineraries(ctx context.Context, req TripRequest) ([]Itinerary, error)
}

// Static serves a fixed list of itineraries regardless of the request.
type Static struct {
	entries []Itinerary
}

func NewStatic(entries []Itinerary) *Static {
	s := &Static{entries: make([]Itinerary, len(entries))}
	for i, it := range entries {
		s.entries[i] = it.Clone()
	}
	return s
}

func (s *Static) Itineraries(ctx context.Context, _ TripRequest) ([]Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.entries) == 0 {
		return nil, ErrNoItineraries
	}
	out := make([]Itinerary, len(s.entries))
	for i, it := range s.entries {
		out[i] = it.Clone()
	}
	return out, nil
}

// ProviderFunc adapts a function to ItineraryProvider.
type ProviderFunc func(ctx context.Context, req TripRequest) ([]Itinerary, error)

func (f ProviderFunc) Itineraries(ctx context.Context, req TripRequest) ([]Itinerary, error) {
	return f(ctx, req)
}
