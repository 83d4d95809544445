package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List comments",
		Long:  "List the comments held by a running server, oldest first.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	comments, err := newAPIClient().ListComments()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), comments)
	}

	return printCommentTable(cmd.OutOrStdout(), comments)
}
