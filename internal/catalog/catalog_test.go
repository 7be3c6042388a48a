package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoaCatalog(t *testing.T) {
	its, err := Goa().Itineraries(context.Background(), TripRequest{Destination: "Goa"})
	require.NoError(t, err)
	require.Len(t, its, 3)

	titles := []string{its[0].Title, its[1].Title, its[2].Title}
	assert.Equal(t, []string{"Cultural Explorer", "Adventure Seeker", "Relaxation Retreat"}, titles)
	for _, it := range its {
		assert.Equal(t, it.TotalDays, len(it.DayPlans), it.Title)
		for i, d := range it.DayPlans {
			assert.Equal(t, i+1, d.DayNumber)
		}
	}
}

func TestStaticReturnsCopies(t *testing.T) {
	provider := Goa()
	its, err := provider.Itineraries(context.Background(), TripRequest{})
	require.NoError(t, err)

	its[0].Title = "Changed"
	its[0].DayPlans[0].Morning = "Changed"

	again, err := provider.Itineraries(context.Background(), TripRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Cultural Explorer", again[0].Title)
	assert.Equal(t, "Visit Basilica of Bom Jesus and Se Cathedral", again[0].DayPlans[0].Morning)
}

func TestStaticEmpty(t *testing.T) {
	_, err := NewStatic(nil).Itineraries(context.Background(), TripRequest{})
	assert.ErrorIs(t, err, ErrNoItineraries)
}

func TestStaticHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Goa().Itineraries(ctx, TripRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProviderFunc(t *testing.T) {
	var got TripRequest
	p := ProviderFunc(func(_ context.Context, req TripRequest) ([]Itinerary, error) {
		got = req
		return []Itinerary{{Title: "Custom", TotalDays: 2}}, nil
	})
	its, err := p.Itineraries(context.Background(), TripRequest{Destination: "Leh"})
	require.NoError(t, err)
	assert.Equal(t, "Leh", got.Destination)
	assert.Equal(t, "Custom", its[0].Title)
}
