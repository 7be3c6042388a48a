package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	userName   string
	userAvatar string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show or update the user profile",
	Long: `Show the user profile, or update it with --name and --avatar.

Examples:
  tripplanner user
  tripplanner user --name Kavya --avatar https://example.com/k.png`,
	RunE: runUser,
}

func init() {
	userCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCmd.Flags().StringVar(&userAvatar, "avatar", "", "avatar URL")
}

func runUser(cmd *cobra.Command, args []string) error {
	user := dbStore.GetUser()

	nameSet := cmd.Flags().Changed("name")
	avatarSet := cmd.Flags().Changed("avatar")
	if nameSet || avatarSet {
		if nameSet {
			if userName == "" {
				return fmt.Errorf("name must not be empty")
			}
			user.Name = userName
		}
		if avatarSet {
			user.Avatar = userAvatar
		}
		if err := dbStore.SaveUser(user); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:   %s\n", user.Name)
	if user.Avatar != "" {
		fmt.Fprintf(out, "Avatar: %s\n", user.Avatar)
	}
	return nil
}
