package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wanderly.app/trip-planner/internal/catalog"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List saved plans",
	RunE:  runPlans,
}

func runPlans(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	plans := dbStore.GetPlans()
	if len(plans) == 0 {
		fmt.Fprintln(out, "No saved plans.")
		return nil
	}

	fmt.Fprintf(out, "Saved plans (%d):\n\n", len(plans))
	for _, p := range plans {
		title := "untitled"
		var it catalog.Itinerary
		if err := json.Unmarshal(p.Itinerary, &it); err != nil {
			log.Warnf("Unreadable itinerary in plan %s: %v", p.ID, err)
		} else if it.Title != "" {
			title = it.Title
		}
		saved := time.UnixMilli(p.CreatedAt).Format("Jan 2, 2006")
		fmt.Fprintf(out, "- %s: %s, %d days (saved %s)\n", p.Destination, title, p.Days, saved)
		if p.ConversationID != "" {
			fmt.Fprintf(out, "  conversation %s\n", p.ConversationID)
		}
	}
	return nil
}
