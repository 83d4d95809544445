package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a comment",
		Long:  "Remove a comment by ID. Removing an ID that does not exist is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid comment ID: %s", args[0])
	}

	if err := newAPIClient().DeleteComment(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"id":      id,
			"removed": true,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Comment #%d removed.\n", id)
	return nil
}
