package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team management commands",
	}

	cmd.AddCommand(newTeamCreateCmd())
	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamGetCmd())
	cmd.AddCommand(newTeamScoreCmd())

	return cmd
}

func newTeamCreateCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "create <session-id>",
		Short: "Create teams with generated names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TeamList

			path := fmt.Sprintf("/api/v1/sessions/%s/teams", args[0])
			if err := client.Post(path, map[string]int{"count": count}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 4, "Number of teams to create")

	return cmd
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <session-id>",
		Short: "List a session's teams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TeamList

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/teams", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id> <team-id>",
		Short: "Get team details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Team

			path := fmt.Sprintf("/api/v1/sessions/%s/teams/%s", args[0], args[1])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <session-id> <team-id> <score>",
		Short: "Set a team's score to an absolute value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[2], err)
			}

			path := fmt.Sprintf("/api/v1/sessions/%s/teams/%s/score", args[0], args[1])
			if err := client.Put(path, map[string]int{"score": score}, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Score set to %d", score))
			return nil
		},
	}
}
