package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board state commands",
	}

	cmd.AddCommand(newBoardGetCmd())
	cmd.AddCommand(newBoardMarkCmd())

	return cmd
}

func newBoardGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Show the answered cells of a session's board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/board", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBoardMarkCmd() *cobra.Command {
	var (
		row      int
		col      int
		category string
		points   int
	)

	cmd := &cobra.Command{
		Use:   "mark <session-id>",
		Short: "Mark a board cell as answered",
		Long: `Mark a board cell as answered, either by coordinates
(--row and --col) or by question identity (--category and --points).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			switch {
			case category != "":
				req["category"] = category
				req["points"] = points
			case cmd.Flags().Changed("row") && cmd.Flags().Changed("col"):
				req["row"] = row
				req["col"] = col
			default:
				return errors.New("provide either --row and --col, or --category and --points")
			}

			path := fmt.Sprintf("/api/v1/sessions/%s/board/answered", args[0])
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Cell marked as answered")
			return nil
		},
	}

	cmd.Flags().IntVar(&row, "row", 0, "Row index (0-4)")
	cmd.Flags().IntVar(&col, "col", 0, "Column index (0-4)")
	cmd.Flags().StringVar(&category, "category", "", "Question category")
	cmd.Flags().IntVar(&points, "points", 0, "Question point value")

	return cmd
}
