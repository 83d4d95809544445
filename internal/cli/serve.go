package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/movie-notes/internal/comment"
	"github.com/evcraddock/movie-notes/internal/logging"
	"github.com/evcraddock/movie-notes/internal/movie"
	"github.com/evcraddock/movie-notes/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port     int
		movieURL string
		dev      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long:  "Start an HTTP server for the web UI. The movie is fetched once at startup; comments live in memory until the server stops.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				p, err := getPort()
				if err != nil {
					return err
				}
				port = p
			}
			if movieURL == "" {
				movieURL = getMovieURL()
			}
			return runServe(cmd.Context(), port, movieURL, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", defaultPort, "port to listen on")
	cmd.Flags().StringVar(&movieURL, "movie-url", "", "movie API URL (default: "+movie.DefaultURL+")")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable debug logging")

	return cmd
}

func runServe(ctx context.Context, port int, movieURL string, dev bool) error {
	logging.Setup(dev)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := comment.NewStore()
	loader := movie.NewLoader(movie.NewClient(movieURL))
	loader.Start(ctx)

	srv, err := web.NewServer(store, loader)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer srv.Close()

	return srv.ListenAndServe(ctx, port)
}
