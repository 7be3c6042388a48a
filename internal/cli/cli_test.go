package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "bolt")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "cli.bolt"))
	t.Setenv("DELAY_SCALE", "0")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_FILE", "")
	t.Setenv("DEFAULT_USER_NAME", "Anish")
}

// resetFlags undoes flag values left behind by a previous Execute.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()
	out, err := run(t, input, args...)
	require.NoError(t, err, out)
	return out
}

func TestUserCommand(t *testing.T) {
	setupEnv(t)

	out := execute(t, "", "user")
	assert.Contains(t, out, "Name:   Anish")

	out = execute(t, "", "user", "--name", "Kavya", "--avatar", "k.png")
	assert.Contains(t, out, "Name:   Kavya")
	assert.Contains(t, out, "Avatar: k.png")

	out = execute(t, "", "user")
	assert.Contains(t, out, "Name:   Kavya")

	_, err := run(t, "", "user", "--name", "")
	assert.Error(t, err)
}

func TestEmptyHistory(t *testing.T) {
	setupEnv(t)

	assert.Contains(t, execute(t, "", "conversations"), "No conversations found.")
	assert.Contains(t, execute(t, "", "plans"), "No saved plans.")

	_, err := run(t, "", "conversations", "--limit", "-1")
	assert.Error(t, err)
}

func TestChatFinalizesPlan(t *testing.T) {
	setupEnv(t)

	input := strings.Join([]string{
		"Goa",
		"5 days",
		"adventure",
		"₹50,000",
		"/enhance 1 more beach time",
		"/finalize 9",
		"/finalize two",
		"/finalize 2",
		"/quit",
	}, "\n") + "\n"

	out := execute(t, input, "chat")
	assert.Contains(t, out, "Assistant: Hello!")
	assert.Contains(t, out, "[1] Cultural Explorer")
	assert.Contains(t, out, "[2] Adventure Seeker")
	assert.Contains(t, out, "[3] Relaxation Retreat")
	assert.Contains(t, out, "Pick an itinerary between 1 and 3.")
	assert.Contains(t, out, `Itinerary number must be a number, got "two"`)
	assert.Contains(t, out, `Saved as "Goa - Adventure Seeker"`)

	out = execute(t, "", "conversations")
	assert.Contains(t, out, "Conversations (1 of 1)")
	assert.Contains(t, out, "- Goa - Adventure Seeker [conv_")

	out = execute(t, "", "plans")
	assert.Contains(t, out, "- Goa: Adventure Seeker, 5 days")
}

func TestChatWithQuery(t *testing.T) {
	setupEnv(t)

	out := execute(t, "/bogus\n/finalize 1\n/quit\n", "chat", "--query", "Cultural tour of Rajasthan")
	assert.Contains(t, out, "You: Cultural tour of Rajasthan")
	assert.NotContains(t, out, "Assistant: Hello!")
	assert.Contains(t, out, "Unknown command /bogus")
	assert.Contains(t, out, "There are no itineraries to choose from yet.")
}
