// Package cli defines the cobra command tree for movie-notes.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/evcraddock/movie-notes/internal/client"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mn",
		Short:         "Comment on and rate a random movie",
		Long:          "A tool that shows a random movie and keeps an in-memory list of rated comments about it, via the web UI or the CLI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv(".env")
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newServeCmd(),
		newAddCmd(),
		newListCmd(),
		newRemoveCmd(),
		newMovieCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// loadDotEnv loads environment variables from path if the file exists.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// newAPIClient creates an HTTP client for the movie-notes API.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
