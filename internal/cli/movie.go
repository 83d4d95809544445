package cli

import (
	"github.com/spf13/cobra"
)

func newMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "movie",
		Short: "Show the current movie",
		Long:  "Show the movie loaded by a running server, or its loading or error state.",
		Args:  cobra.NoArgs,
		RunE:  runMovie,
	}
}

func runMovie(cmd *cobra.Command, args []string) error {
	snap, err := newAPIClient().GetMovie()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), snap)
	}

	printMovie(cmd.OutOrStdout(), snap)
	return nil
}
