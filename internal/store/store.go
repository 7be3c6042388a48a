package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const (
	KeyUser          = "travel_planner_user"
	KeyConversations = "travel_planner_conversations"
	KeyPlans         = "travel_planner_plans"

	DefaultUserName = "Anish"
)

// Store persists the user profile, finalized conversations and saved plans.
// Collections are kept most-recent-first. Reads never fail: missing or
// unreadable data comes back as the type's default.
type Store struct {
	kv          KV
	log         *zap.SugaredLogger
	defaultUser User

	mu sync.Mutex // serializes read-modify-write of collections
}

type Option func(*Store)

// WithDefaultUserName sets the name returned by GetUser before a profile is saved.
func WithDefaultUserName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.defaultUser.Name = name
		}
	}
}

func New(kv KV, log *zap.SugaredLogger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Store{
		kv:          kv,
		log:         log,
		defaultUser: User{Name: DefaultUserName},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() error {
	return s.kv.Close()
}

// load decodes the value under key into dst and reports whether it did.
func (s *Store) load(key string, dst any) bool {
	raw, found, err := s.kv.Get(key)
	if err != nil {
		s.log.Warnf("Failed to read %s, using default: %v", key, err)
		return false
	}
	if !found || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warnf("Corrupted data under %s (%.50s...), using default: %v", key, raw, err)
		return false
	}
	return true
}

func (s *Store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// User methods
func (s *Store) GetUser() User {
	var u User
	if !s.load(KeyUser, &u) {
		return s.defaultUser
	}
	return u
}

func (s *Store) SaveUser(u User) error {
	return s.write(KeyUser, u)
}

// Conversation methods
func (s *Store) GetConversations() []Conversation {
	var convs []Conversation
	if !s.load(KeyConversations, &convs) || convs == nil {
		return []Conversation{}
	}
	return convs
}

// GetConversation returns the stored conversation with the given id, or nil.
func (s *Store) GetConversation(id string) *Conversation {
	for _, c := range s.GetConversations() {
		if c.ID == id {
			conv := c
			return &conv
		}
	}
	return nil
}

// SaveConversation replaces the conversation with the same id in place, or
// prepends it when the id is new.
func (s *Store) SaveConversation(conv Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv.UpdatedAt < conv.CreatedAt {
		conv.UpdatedAt = conv.CreatedAt
	}
	if conv.Messages == nil {
		conv.Messages = []Message{}
	}

	convs := s.GetConversations()
	replaced := false
	for i := range convs {
		if convs[i].ID == conv.ID {
			convs[i] = conv
			replaced = true
			break
		}
	}
	if !replaced {
		convs = append([]Conversation{conv}, convs...)
	}
	return s.write(KeyConversations, convs)
}

// Plan methods
func (s *Store) GetPlans() []SavedPlan {
	var plans []SavedPlan
	if !s.load(KeyPlans, &plans) || plans == nil {
		return []SavedPlan{}
	}
	return plans
}

// SavePlan always prepends; identical plans are kept as separate records.
func (s *Store) SavePlan(plan SavedPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := append([]SavedPlan{plan}, s.GetPlans()...)
	return s.write(KeyPlans, plans)
}
