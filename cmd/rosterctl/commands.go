package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
)

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every activity with its participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			activities, err := c.svc.ListActivities(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing activities: %w", err)
			}

			names := lo.Keys(activities)
			slices.Sort(names)

			table := tablewriter.NewWriter(c.out)
			table.SetHeader([]string{"Activity", "Schedule", "Spots Left", "Participants"})
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)
			for _, name := range names {
				a := activities[name]
				table.Append([]string{
					a.Name,
					a.Schedule,
					strconv.Itoa(a.SpotsLeft()),
					strings.Join(a.Participants, ", "),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <activity>",
		Short: "Show one activity and its participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.svc.GetActivity(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("showing %q: %w", args[0], err)
			}
			printActivity(c, a)
			return nil
		},
	}
}

func newSignupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <activity> <email>",
		Short: "Sign a participant up for an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, email := args[0], args[1]
			a, err := c.svc.Signup(cmd.Context(), name, email)
			if err != nil {
				return fmt.Errorf("signing up %s for %q: %w", email, name, err)
			}
			fmt.Fprintf(c.out, "Signed up %s for %s (spots left: %d)\n", email, a.Name, a.SpotsLeft())
			return nil
		},
	}
}

func newUnregisterCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "unregister <activity> <email>",
		Short: "Remove a participant from an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, email := args[0], args[1]
			a, err := c.svc.Unregister(cmd.Context(), name, email)
			if err != nil {
				return fmt.Errorf("unregistering %s from %q: %w", email, name, err)
			}
			fmt.Fprintf(c.out, "Unregistered %s from %s (spots left: %d)\n", email, a.Name, a.SpotsLeft())
			return nil
		},
	}
}

func printActivity(c *cli, a *activity.Activity) {
	fmt.Fprintf(c.out, "%s\n", a.Name)
	fmt.Fprintf(c.out, "  %s\n", a.Description)
	fmt.Fprintf(c.out, "  Schedule:     %s\n", a.Schedule)
	fmt.Fprintf(c.out, "  Participants: %d/%d\n", len(a.Participants), a.MaxParticipants)
	for _, p := range a.Participants {
		fmt.Fprintf(c.out, "    - %s\n", p)
	}
}
