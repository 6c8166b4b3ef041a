package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionGetCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var teams int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var created SessionCreated

			if err := client.Post("/api/v1/sessions", nil, &created); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)

			if teams > 0 {
				var result TeamList
				path := fmt.Sprintf("/api/v1/sessions/%s/teams", created.ID)
				if err := client.Post(path, map[string]int{"count": teams}, &result); err != nil {
					return err
				}
				out.Print(created)
				out.Print(result)
				return nil
			}

			out.Print(created)
			return nil
		},
	}

	cmd.Flags().IntVar(&teams, "teams", 0, "Also create this many teams")

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List session IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionList

			if err := client.Get("/api/v1/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get session details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
