package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/movie-notes/internal/client"
)

func newAddCmd() *cobra.Command {
	var (
		note   int
		accept bool
	)

	cmd := &cobra.Command{
		Use:   "add <comment>",
		Short: "Add a rated comment",
		Long:  "Add a comment with a 1-5 rating to the movie shown by a running server. The conditions must be accepted with --accept.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, strings.Join(args, " "), note, accept)
		},
	}

	cmd.Flags().IntVar(&note, "note", 0, "rating from 1 to 5")
	cmd.Flags().BoolVar(&accept, "accept", false, "accept the conditions")

	return cmd
}

func runAdd(cmd *cobra.Command, text string, note int, accept bool) error {
	req := client.AddCommentRequest{
		Comment:          text,
		AcceptConditions: accept,
	}
	// Without --note the field is omitted so the server reports it missing.
	if cmd.Flags().Changed("note") {
		req.Note = &note
	}

	c, err := newAPIClient().AddComment(req)
	if err != nil {
		return fmt.Errorf("adding comment: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), c)
	}

	printCommentSingle(cmd.OutOrStdout(), c)
	return nil
}
