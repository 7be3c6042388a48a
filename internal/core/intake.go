package core

import (
	"fmt"
	"time"

	"wanderly.app/trip-planner/internal/catalog"
	"wanderly.app/trip-planner/internal/utils"
)

const (
	welcomeMessage = "Hello! 👋 I'm your AI travel assistant. I can help you plan the perfect trip! Tell me:\n\n" +
		"• Where would you like to go?\n• How many days?\n• What's your budget?\n" +
		"• Any specific interests (adventure, culture, relaxation, etc.)?"

	destinationAckFormat = "Great choice! %s is amazing! 🌟\n\nWhat's your preferred travel duration? (e.g., 5 days, 1 week)"
	stylePrompt          = "Would you like more cultural, historical, or adventurous experiences?"
	budgetPrompt         = "What is your approximate budget range? (e.g., ₹30,000-₹50,000)"
	generatingMessage    = "✨ Creating plans and exploring places..."
	itinerariesReadyFmt  = "Here are %d personalized itineraries I've created for you! Each one offers a unique experience."
	itinerariesFailed    = "I'm sorry, I couldn't put together itineraries right now. Please start a new plan and try again."
	enhancingMessage     = "✨ Updating your itinerary..."
	enhancedFormat       = "Perfect! I've updated the %s plan with your preferences."
	enhanceRequestFormat = "Enhance plan %d: %s"
	finalizedFormat      = "✅ Your %s has been finalized and saved!"
)

// Simulated processing delays.
const (
	destinationDelay = 800 * time.Millisecond
	promptDelay      = 500 * time.Millisecond
	generatingDelay  = 2500 * time.Millisecond
	enhanceDelay     = 1500 * time.Millisecond
	replyDelay       = 1000 * time.Millisecond
)

type IntakeStep int

const (
	StepIdle IntakeStep = iota
	StepAwaitingDuration
	StepAwaitingStyle
	StepAwaitingBudget
	StepComplete
)

func (s IntakeStep) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepAwaitingDuration:
		return "awaiting_duration"
	case StepAwaitingStyle:
		return "awaiting_style"
	case StepAwaitingBudget:
		return "awaiting_budget"
	case StepComplete:
		return "complete"
	default:
		return fmt.Sprintf("IntakeStep(%d)", int(s))
	}
}

func (s IntakeStep) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *IntakeStep) UnmarshalText(text []byte) error {
	for step := StepIdle; step <= StepComplete; step++ {
		if step.String() == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown intake step %q", text)
}

// TripDetails holds the attributes collected during intake.
type TripDetails struct {
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Style       string `json:"style"`
	Budget      string `json:"budget"`
}

func (d TripDetails) Request() catalog.TripRequest {
	return catalog.TripRequest{
		Destination: d.Destination,
		Duration:    d.Duration,
		Style:       d.Style,
		Budget:      d.Budget,
	}
}

// Intake is the four-step question/answer machine. It has no timing of
// its own; the planner decides when prompts become visible.
type Intake struct {
	step    IntakeStep
	details TripDetails
}

func (in *Intake) Step() IntakeStep { return in.step }
func (in *Intake) Details() TripDetails { return in.details }
func (in *Intake) Complete() bool { return in.step == StepComplete }

// Accept records text for the current step and advances. It returns the
// assistant prompt for the next step ("" when entering StepComplete) and
// false when the input was ignored: empty after trimming, or intake is done.
func (in *Intake) Accept(text string) (prompt string, ok bool) {
	text = utils.NormalizeInput(text)
	if text == "" {
		return "", false
	}
	switch in.step {
	case StepIdle:
		in.details.Destination = text
		in.step = StepAwaitingDuration
		return fmt.Sprintf(destinationAckFormat, text), true
	case StepAwaitingDuration:
		in.details.Duration = text
		in.step = StepAwaitingStyle
		return stylePrompt, true
	case StepAwaitingStyle:
		in.details.Style = text
		in.step = StepAwaitingBudget
		return budgetPrompt, true
	case StepAwaitingBudget:
		in.details.Budget = text
		in.step = StepComplete
		return "", true
	default:
		return "", false
	}
}

// delayFor returns how long the reply to an answer given in step takes.
func delayFor(step IntakeStep) time.Duration {
	if step == StepIdle {
		return destinationDelay
	}
	return promptDelay
}
