package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"wanderly.app/trip-planner/internal/catalog"
	"wanderly.app/trip-planner/internal/store"
	"wanderly.app/trip-planner/internal/utils"
)

var (
	ErrItineraryOutOfRange  = errors.New("itinerary index out of range")
	ErrPersistence          = errors.New("failed to persist plan")
	ErrConversationNotFound = errors.New("conversation not found")
)

const providerTimeout = 30 * time.Second

// PlanStore is the persistence the planner writes finalized plans to.
type PlanStore interface {
	GetConversations() []store.Conversation
	GetConversation(id string) *store.Conversation
	SaveConversation(conv store.Conversation) error
	SavePlan(plan store.SavedPlan) error
}

type EventKind int

const (
	EventMessage EventKind = iota
	EventItinerariesReady
	EventFinalized
	EventReset
)

// Event is delivered to the listener after the planner state changed.
type Event struct {
	Kind         EventKind
	Message      *store.Message
	Conversation *store.Conversation
}

// Snapshot is the view of a session handed to the presentation layer.
type Snapshot struct {
	Generation              uint64              `json:"generation"`
	Messages                []store.Message     `json:"messages"`
	Step                    IntakeStep          `json:"step"`
	Trip                    TripDetails         `json:"trip"`
	Busy                    bool                `json:"busy"`
	Generating              bool                `json:"generating"`
	Enhancing               bool                `json:"enhancing"`
	ItinerariesReady        bool                `json:"itinerariesReady"`
	Itineraries             []catalog.Itinerary `json:"itineraries,omitempty"`
	Suggestions             []string            `json:"suggestions,omitempty"`
	FinalizedConversationID string              `json:"finalizedConversationId,omitempty"`
}

type Option func(*PlannerService)

func WithScheduler(sch Scheduler) Option {
	return func(s *PlannerService) { s.scheduler = sch }
}

func WithResponder(r Responder) Option {
	return func(s *PlannerService) { s.responder = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *PlannerService) { s.now = now }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *PlannerService) { s.log = log }
}

func WithSuggestions(suggestions []string) Option {
	return func(s *PlannerService) { s.suggestionSet = suggestions }
}

// WithListener registers fn to be called, outside the planner lock, for
// every state change.
func WithListener(fn func(Event)) Option {
	return func(s *PlannerService) { s.listener = fn }
}

// PlannerService owns one planning dialogue: the message log, the intake
// machine, the presented itineraries and the finalize step.
type PlannerService struct {
	store         PlanStore
	provider      catalog.ItineraryProvider
	scheduler     Scheduler
	responder     Responder
	suggestionSet []string
	now           func() time.Time
	log           *zap.SugaredLogger
	listener      func(Event)

	mu          sync.Mutex
	generation  uint64
	messages    []store.Message
	intake      Intake
	pending     int // scheduled steps that block Submit
	generating  bool
	enhancing   int
	itineraries []catalog.Itinerary
	suggestions []string
	finalizedID string
	taskSeq     int
	cancels     map[int]func() bool
	fetchCancel context.CancelFunc
	events      []Event
}

func NewPlannerService(db PlanStore, provider catalog.ItineraryProvider, opts ...Option) *PlannerService {
	s := &PlannerService{
		store:         db,
		provider:      provider,
		scheduler:     NewTimerScheduler(1),
		responder:     NewCyclingResponder(),
		suggestionSet: catalog.FollowUpSuggestions,
		now:           time.Now,
		cancels:       make(map[int]func() bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}

	s.mu.Lock()
	s.restart(true)
	s.events = nil
	s.mu.Unlock()
	return s
}

// Reset discards the current dialogue and starts a new one with a welcome
// message. Steps scheduled by the old dialogue never take effect.
func (s *PlannerService) Reset() {
	s.mu.Lock()
	s.restart(true)
	s.unlockAndNotify()
}

// Begin starts a new dialogue. A non-empty query is submitted as the
// destination instead of showing the welcome message.
func (s *PlannerService) Begin(query string) {
	query = utils.NormalizeInput(query)
	if query == "" {
		s.Reset()
		return
	}
	s.mu.Lock()
	s.restart(false)
	s.unlockAndNotify()
	s.Submit(query)
}

// Resume starts a new dialogue showing the transcript of a stored conversation.
func (s *PlannerService) Resume(conversationID string) error {
	conv := s.store.GetConversation(conversationID)
	if conv == nil {
		return fmt.Errorf("%w: %s", ErrConversationNotFound, conversationID)
	}
	s.mu.Lock()
	s.restart(false)
	s.messages = append(s.messages, conv.Messages...)
	s.unlockAndNotify()
	return nil
}

// Submit handles a free-text user message. It reports false when the text
// was ignored: empty after trimming, or a previous step is still pending.
func (s *PlannerService) Submit(text string) bool {
	text = utils.NormalizeInput(text)

	s.mu.Lock()
	if text == "" || s.pending > 0 {
		s.mu.Unlock()
		return false
	}

	if s.intake.Complete() {
		s.appendMessage(store.RoleUser, text)
		s.pending++
		s.schedule(replyDelay, func() {
			s.pending--
			s.appendMessage(store.RoleAssistant, s.responder.Reply(text))
		})
		s.unlockAndNotify()
		return true
	}

	step := s.intake.Step()
	prompt, ok := s.intake.Accept(text)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.appendMessage(store.RoleUser, text)
	s.pending++

	if s.intake.Complete() {
		s.schedule(promptDelay, func() {
			s.generating = true
			s.appendMessage(store.RoleAssistant, generatingMessage)
			s.scheduleFetch(generatingDelay)
		})
	} else {
		s.schedule(delayFor(step), func() {
			s.pending--
			s.appendMessage(store.RoleAssistant, prompt)
		})
	}
	s.unlockAndNotify()
	return true
}

// Enhance asks for changes to a presented itinerary. The confirmation is
// descriptive; the itinerary itself is not modified.
func (s *PlannerService) Enhance(index int, text string) error {
	s.mu.Lock()
	if err := s.checkIndex(index); err != nil {
		s.mu.Unlock()
		return err
	}
	text = utils.NormalizeInput(text)
	if text == "" {
		s.mu.Unlock()
		return nil
	}
	title := s.itineraries[index].Title

	s.appendMessage(store.RoleUser, fmt.Sprintf(enhanceRequestFormat, index+1, text))
	s.enhancing++
	s.schedule(promptDelay, func() {
		s.appendMessage(store.RoleAssistant, enhancingMessage)
		s.schedule(enhanceDelay, func() {
			s.enhancing--
			s.appendMessage(store.RoleAssistant, fmt.Sprintf(enhancedFormat, title))
		})
	})
	s.unlockAndNotify()
	return nil
}

// Finalize saves the conversation so far together with a snapshot of the
// chosen itinerary. On a store failure the error wraps ErrPersistence and
// the dialogue is left as it was so the user can retry.
func (s *PlannerService) Finalize(index int) (*store.Conversation, error) {
	s.mu.Lock()
	if err := s.checkIndex(index); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	it := s.itineraries[index].Clone()
	destination := s.intake.Details().Destination
	if destination == "" {
		destination = "Travel"
	}

	now := s.now().UnixMilli()
	conv := store.Conversation{
		ID:        utils.NewID(utils.PrefixConversation),
		Title:     fmt.Sprintf("%s - %s", destination, it.Title),
		Messages:  append([]store.Message(nil), s.messages...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.SaveConversation(conv); err != nil {
		s.mu.Unlock()
		s.log.Errorf("Failed to save conversation %s: %v", conv.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	payload, err := json.Marshal(it)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to encode itinerary: %w", err)
	}
	plan := store.SavedPlan{
		ID:             utils.NewID(utils.PrefixPlan),
		ConversationID: conv.ID,
		Destination:    destination,
		Days:           it.TotalDays,
		Itinerary:      payload,
		CreatedAt:      now,
	}
	if err := s.store.SavePlan(plan); err != nil {
		s.mu.Unlock()
		s.log.Errorf("Failed to save plan for conversation %s: %v", conv.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.appendMessage(store.RoleAssistant, fmt.Sprintf(finalizedFormat, it.Title))
	s.finalizedID = conv.ID
	s.events = append(s.events, Event{Kind: EventFinalized, Conversation: &conv})
	s.log.Infof("Finalized '%s' as conversation %s (plan %s)", conv.Title, conv.ID, plan.ID)
	s.unlockAndNotify()
	return &conv, nil
}

// DismissFinalized clears the finalized signal once the confirmation was shown.
func (s *PlannerService) DismissFinalized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalizedID = ""
}

func (s *PlannerService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Generation:              s.generation,
		Messages:                append([]store.Message{}, s.messages...),
		Step:                    s.intake.Step(),
		Trip:                    s.intake.Details(),
		Busy:                    s.pending > 0,
		Generating:              s.generating,
		Enhancing:               s.enhancing > 0,
		ItinerariesReady:        s.itineraries != nil,
		Suggestions:             append([]string(nil), s.suggestions...),
		FinalizedConversationID: s.finalizedID,
	}
	if s.itineraries != nil {
		snap.Itineraries = make([]catalog.Itinerary, len(s.itineraries))
		for i, it := range s.itineraries {
			snap.Itineraries[i] = it.Clone()
		}
	}
	return snap
}

func (s *PlannerService) Messages() []store.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.Message{}, s.messages...)
}

// RecentConversations returns up to n stored conversations, newest first.
// n <= 0 returns all of them.
func (s *PlannerService) RecentConversations(n int) []store.Conversation {
	convs := s.store.GetConversations()
	if n > 0 && len(convs) > n {
		convs = convs[:n]
	}
	return convs
}

// restart must be called with s.mu held.
func (s *PlannerService) restart(welcome bool) {
	s.generation++
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = make(map[int]func() bool)
	if s.fetchCancel != nil {
		s.fetchCancel()
		s.fetchCancel = nil
	}

	s.messages = nil
	s.intake = Intake{}
	s.pending = 0
	s.generating = false
	s.enhancing = 0
	s.itineraries = nil
	s.suggestions = nil
	s.finalizedID = ""
	s.events = append(s.events, Event{Kind: EventReset})

	if welcome {
		s.appendMessage(store.RoleAssistant, welcomeMessage)
	}
}

func (s *PlannerService) checkIndex(index int) error {
	if index < 0 || index >= len(s.itineraries) {
		s.log.Warnf("Rejected itinerary index %d (presented: %d)", index, len(s.itineraries))
		return fmt.Errorf("%w: %d", ErrItineraryOutOfRange, index)
	}
	return nil
}

func (s *PlannerService) appendMessage(role, content string) {
	msg := store.Message{
		ID:        utils.NewID(utils.PrefixMessage),
		Role:      role,
		Content:   content,
		Timestamp: s.now().UnixMilli(),
	}
	s.messages = append(s.messages, msg)
	s.events = append(s.events, Event{Kind: EventMessage, Message: &msg})
}

// schedule runs f under the planner lock after d, unless the dialogue was
// restarted in the meantime. Must be called with s.mu held.
func (s *PlannerService) schedule(d time.Duration, f func()) {
	gen := s.generation
	s.taskSeq++
	id := s.taskSeq
	s.cancels[id] = s.scheduler.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.cancels, id)
		if gen != s.generation {
			s.mu.Unlock()
			return
		}
		f()
		s.unlockAndNotify()
	})
}

// scheduleFetch asks the provider for itineraries after d. The provider is
// called without holding the lock. Must be called with s.mu held.
func (s *PlannerService) scheduleFetch(d time.Duration) {
	gen := s.generation
	s.taskSeq++
	id := s.taskSeq
	s.cancels[id] = s.scheduler.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.cancels, id)
		if gen != s.generation {
			s.mu.Unlock()
			return
		}
		req := s.intake.Details().Request()
		ctx, cancel := context.WithTimeout(context.Background(), providerTimeout)
		s.fetchCancel = cancel
		s.mu.Unlock()

		its, err := s.provider.Itineraries(ctx, req)
		cancel()

		s.mu.Lock()
		if gen != s.generation {
			s.mu.Unlock()
			return
		}
		s.fetchCancel = nil
		s.pending--
		s.generating = false
		if err != nil || len(its) == 0 {
			if err == nil {
				err = catalog.ErrNoItineraries
			}
			s.log.Warnf("Failed to load itineraries for %q: %v", req.Destination, err)
			s.appendMessage(store.RoleAssistant, itinerariesFailed)
			s.unlockAndNotify()
			return
		}
		s.itineraries = its
		s.suggestions = append([]string(nil), s.suggestionSet...)
		s.appendMessage(store.RoleAssistant, fmt.Sprintf(itinerariesReadyFmt, len(its)))
		s.events = append(s.events, Event{Kind: EventItinerariesReady})
		s.unlockAndNotify()
	})
}

// unlockAndNotify releases s.mu and hands queued events to the listener.
func (s *PlannerService) unlockAndNotify() {
	events := s.events
	s.events = nil
	s.mu.Unlock()

	if s.listener == nil {
		return
	}
	for _, ev := range events {
		s.listener(ev)
	}
}
