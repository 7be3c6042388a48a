package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wanderly.app/trip-planner/internal/utils"
)

var conversationsLimit int

var conversationsCmd = &cobra.Command{
	Use:     "conversations",
	Aliases: []string{"history"},
	Short:   "List finalized conversations",
	Long: `List finalized conversations, most recent first.

Examples:
  tripplanner conversations
  tripplanner conversations --limit 2`,
	RunE: runConversations,
}

func init() {
	conversationsCmd.Flags().IntVarP(&conversationsLimit, "limit", "n", 0, "max results (0 for all)")
}

func runConversations(cmd *cobra.Command, args []string) error {
	if conversationsLimit < 0 {
		return fmt.Errorf("invalid limit %d", conversationsLimit)
	}
	out := cmd.OutOrStdout()

	convs := dbStore.GetConversations()
	if len(convs) == 0 {
		fmt.Fprintln(out, "No conversations found.")
		return nil
	}
	total := len(convs)
	if conversationsLimit > 0 && total > conversationsLimit {
		convs = convs[:conversationsLimit]
	}

	fmt.Fprintf(out, "Conversations (%d of %d):\n\n", len(convs), total)
	for _, c := range convs {
		updated := time.UnixMilli(c.UpdatedAt).Format("Jan 2, 2006 15:04")
		fmt.Fprintf(out, "- %s [%s]\n", utils.Truncate(c.Title, 60), c.ID)
		fmt.Fprintf(out, "  %d messages, updated %s\n", len(c.Messages), updated)
	}
	return nil
}
