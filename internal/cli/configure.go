package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update saved settings",
		Long:  "Without flags, print the saved settings. With flags, update ~/.config/mn/config.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.ServerURL, "server-url", "", "server URL used by client commands")
	cmd.Flags().StringVar(&cfg.MovieURL, "movie-url", "", "movie API URL used by serve")
	cmd.Flags().IntVar(&cfg.Port, "port", 0, "port used by serve")

	return cmd
}

func runConfig(cmd *cobra.Command, update Config) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("server-url") {
		cfg.ServerURL = update.ServerURL
		changed = true
	}
	if cmd.Flags().Changed("movie-url") {
		cfg.MovieURL = update.MovieURL
		changed = true
	}
	if cmd.Flags().Changed("port") {
		if update.Port < 0 || update.Port > 65535 {
			return fmt.Errorf("invalid port: %d", update.Port)
		}
		cfg.Port = update.Port
		changed = true
	}

	if changed {
		if err := saveConfig(cfg); err != nil {
			return err
		}
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), cfg)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Server URL: %s\n", valueOr(cfg.ServerURL, defaultServerURL+" (default)"))
	fmt.Fprintf(out, "Movie URL:  %s\n", valueOr(cfg.MovieURL, "(default)"))
	if cfg.Port != 0 {
		fmt.Fprintf(out, "Port:       %d\n", cfg.Port)
	} else {
		fmt.Fprintf(out, "Port:       %d (default)\n", defaultPort)
	}
	return nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
