package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntakeAccept(t *testing.T) {
	var in Intake

	prompt, ok := in.Accept("   ")
	assert.False(t, ok)
	assert.Empty(t, prompt)
	assert.Equal(t, StepIdle, in.Step())

	prompt, ok = in.Accept("Goa")
	assert.True(t, ok)
	assert.Contains(t, prompt, "Goa is amazing")
	assert.Equal(t, StepAwaitingDuration, in.Step())

	prompt, ok = in.Accept("5 days")
	assert.True(t, ok)
	assert.Equal(t, stylePrompt, prompt)

	prompt, ok = in.Accept("adventure")
	assert.True(t, ok)
	assert.Equal(t, budgetPrompt, prompt)

	prompt, ok = in.Accept("₹50,000")
	assert.True(t, ok)
	assert.Empty(t, prompt)
	assert.True(t, in.Complete())

	// captured attributes cannot be changed
	_, ok = in.Accept("Manali")
	assert.False(t, ok)
	assert.Equal(t, TripDetails{Destination: "Goa", Duration: "5 days", Style: "adventure", Budget: "₹50,000"}, in.Details())
}

func TestIntakeStepString(t *testing.T) {
	tests := []struct {
		step IntakeStep
		want string
	}{
		{StepIdle, "idle"},
		{StepAwaitingDuration, "awaiting_duration"},
		{StepAwaitingStyle, "awaiting_style"},
		{StepAwaitingBudget, "awaiting_budget"},
		{StepComplete, "complete"},
		{IntakeStep(9), "IntakeStep(9)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.String())
			text, err := tt.step.MarshalText()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(text))
		})
	}

	var step IntakeStep
	assert.NoError(t, step.UnmarshalText([]byte("awaiting_budget")))
	assert.Equal(t, StepAwaitingBudget, step)
	assert.Error(t, step.UnmarshalText([]byte("IntakeStep(9)")))
}

func TestDelayFor(t *testing.T) {
	assert.Equal(t, destinationDelay, delayFor(StepIdle))
	assert.Equal(t, promptDelay, delayFor(StepAwaitingDuration))
	assert.Equal(t, promptDelay, delayFor(StepAwaitingBudget))
}
