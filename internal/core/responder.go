package core

import (
	"math/rand"
	"sync"
)

// Responder picks the assistant reply to free-form chat once itineraries
// are on screen.
type Responder interface {
	Reply(userText string) string
}

var defaultReplies = []string{
	"That's a great question! Based on your interest, I'd recommend exploring the cultural heritage sites. Would you like specific suggestions?",
	"India has amazing destinations! Are you interested in mountains, beaches, or cultural experiences?",
	"I can help you plan the perfect trip! Tell me more about your preferences - adventure, relaxation, or cultural immersion?",
	"Great choice! The best time to visit is during October to March when the weather is pleasant. Would you like itinerary suggestions?",
}

// CyclingResponder returns its replies in order, wrapping around.
type CyclingResponder struct {
	mu      sync.Mutex
	replies []string
	next    int
}

func NewCyclingResponder(replies ...string) *CyclingResponder {
	if len(replies) == 0 {
		replies = defaultReplies
	}
	return &CyclingResponder{replies: replies}
}

func (r *CyclingResponder) Reply(string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	reply := r.replies[r.next%len(r.replies)]
	r.next++
	return reply
}

// RandomResponder picks a reply at random from a seeded source.
type RandomResponder struct {
	mu      sync.Mutex
	rng     *rand.Rand
	replies []string
}

func NewRandomResponder(seed int64, replies ...string) *RandomResponder {
	if len(replies) == 0 {
		replies = defaultReplies
	}
	return &RandomResponder{rng: rand.New(rand.NewSource(seed)), replies: replies}
}

func (r *RandomResponder) Reply(string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replies[r.rng.Intn(len(r.replies))]
}
