package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wanderly.app/trip-planner/internal/catalog"
	"wanderly.app/trip-planner/internal/core"
	"wanderly.app/trip-planner/internal/store"
)

var (
	chatQuery string
	chatSeed  int64
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Plan a trip from the terminal",
	Long: `Start an interactive planning session.

Answer the assistant's questions, then pick one of the presented itineraries.

Commands:
  /enhance N text   ask for changes to itinerary N
  /finalize N       save itinerary N with this conversation
  /resume ID        reopen a saved conversation
  /reset            start over
  /quit             leave

Examples:
  tripplanner chat
  tripplanner chat --query "Romantic week in Goa beaches"`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatQuery, "query", "q", "", "start with this destination instead of the welcome message")
	chatCmd.Flags().Int64Var(&chatSeed, "seed", 0, "pick free-chat replies at random with this seed")
}

// console serializes writes from the input loop and from scheduled replies.
type console struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

func (c *console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	fmt.Fprintf(c.w, format, args...)
}

func (c *console) close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func runChat(cmd *cobra.Command, args []string) error {
	out := &console{w: cmd.OutOrStdout()}

	// buffered so a state change between Snapshot and the wait is not lost
	changed := make(chan struct{}, 1)

	var planner *core.PlannerService
	opts := []core.Option{
		core.WithScheduler(core.NewTimerScheduler(cfg.DelayScale)),
		core.WithLogger(log),
		core.WithListener(func(ev core.Event) {
			printEvent(out, planner, ev)
			select {
			case changed <- struct{}{}:
			default:
			}
		}),
	}
	if chatSeed != 0 {
		opts = append(opts, core.WithResponder(core.NewRandomResponder(chatSeed)))
	}
	planner = core.NewPlannerService(dbStore, catalog.Goa(), opts...)
	defer func() {
		out.close()
		// drops anything still scheduled
		planner.Reset()
	}()

	ctx := cmd.Context()
	if chatQuery != "" {
		out.printf("You: %s\n", chatQuery)
		planner.Begin(chatQuery)
	} else {
		printTranscript(out, planner.Messages())
	}
	waitIdle(ctx, planner, changed)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		out.printf("> ")
		if !scanner.Scan() {
			out.printf("\n")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := runChatCommand(out, planner, line); quit {
				return nil
			}
		} else if !planner.Submit(line) {
			out.printf("Still working on your last message, one moment...\n")
		}
		waitIdle(ctx, planner, changed)
	}
}

// runChatCommand executes a slash command and reports whether to quit.
func runChatCommand(out *console, planner *core.PlannerService, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/reset":
		planner.Reset()
	case "/resume":
		if len(fields) < 2 {
			out.printf("Usage: /resume ID\n")
			return false
		}
		if err := planner.Resume(fields[1]); err != nil {
			out.printf("Error: %v\n", err)
			return false
		}
		printTranscript(out, planner.Messages())
	case "/enhance":
		if len(fields) < 3 {
			out.printf("Usage: /enhance N text\n")
			return false
		}
		index, ok := parseItineraryNumber(out, fields[1])
		if !ok {
			return false
		}
		if err := planner.Enhance(index, strings.Join(fields[2:], " ")); err != nil {
			printSelectionError(out, planner, err)
		}
	case "/finalize":
		if len(fields) != 2 {
			out.printf("Usage: /finalize N\n")
			return false
		}
		index, ok := parseItineraryNumber(out, fields[1])
		if !ok {
			return false
		}
		if _, err := planner.Finalize(index); err != nil {
			printSelectionError(out, planner, err)
		}
	case "/help":
		out.printf("Commands: /enhance N text, /finalize N, /resume ID, /reset, /quit\n")
	default:
		out.printf("Unknown command %s. Type /help for a list.\n", fields[0])
	}
	return false
}

// parseItineraryNumber converts the 1-based number shown to the user into an index.
func parseItineraryNumber(out *console, s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		out.printf("Itinerary number must be a number, got %q\n", s)
		return 0, false
	}
	return n - 1, true
}

func printSelectionError(out *console, planner *core.PlannerService, err error) {
	switch {
	case errors.Is(err, core.ErrItineraryOutOfRange):
		n := len(planner.Snapshot().Itineraries)
		if n == 0 {
			out.printf("There are no itineraries to choose from yet.\n")
			return
		}
		out.printf("Pick an itinerary between 1 and %d.\n", n)
	case errors.Is(err, core.ErrPersistence):
		out.printf("Your plan could not be saved. Please try again.\n")
	default:
		out.printf("Error: %v\n", err)
	}
}

// waitIdle blocks until no scheduled step is outstanding.
func waitIdle(ctx context.Context, planner *core.PlannerService, changed <-chan struct{}) {
	for {
		snap := planner.Snapshot()
		if !snap.Busy && !snap.Enhancing {
			return
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return
		}
	}
}

func printEvent(out *console, planner *core.PlannerService, ev core.Event) {
	switch ev.Kind {
	case core.EventMessage:
		if ev.Message.Role == store.RoleAssistant {
			printMessage(out, *ev.Message)
		}
	case core.EventItinerariesReady:
		snap := planner.Snapshot()
		printItineraries(out, snap.Itineraries)
		if len(snap.Suggestions) > 0 {
			out.printf("Try asking: %s\n", strings.Join(snap.Suggestions, " | "))
		}
	case core.EventFinalized:
		out.printf("Saved as %q (%s)\n", ev.Conversation.Title, ev.Conversation.ID)
	}
}

func printMessage(out *console, msg store.Message) {
	if msg.Role == store.RoleUser {
		out.printf("You: %s\n", msg.Content)
		return
	}
	out.printf("Assistant: %s\n", msg.Content)
}

func printTranscript(out *console, msgs []store.Message) {
	for _, msg := range msgs {
		printMessage(out, msg)
	}
}

func printItineraries(out *console, its []catalog.Itinerary) {
	for i, it := range its {
		out.printf("\n[%d] %s (%d days, %s)\n", i+1, it.Title, it.TotalDays, it.BudgetRange)
		for _, day := range it.DayPlans {
			out.printf("  Day %d %s\n", day.DayNumber, day.Date)
			out.printf("    Morning:   %s\n", day.Morning)
			out.printf("    Afternoon: %s\n", day.Afternoon)
			out.printf("    Evening:   %s\n", day.Evening)
		}
	}
	out.printf("\nUse /enhance N text or /finalize N to choose.\n")
}
