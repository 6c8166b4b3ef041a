package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuestionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Question catalog commands",
	}

	cmd.AddCommand(newQuestionListCmd())
	cmd.AddCommand(newQuestionGetCmd())

	return cmd
}

func newQuestionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the full question catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result QuestionCatalog

			if err := client.Get("/api/v1/questions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newQuestionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <category> <points>",
		Short: "Get one question by category and point value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Question

			path := fmt.Sprintf("/api/v1/questions/%s/%s", args[0], args[1])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
