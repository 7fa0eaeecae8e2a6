package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aadk-dev/aadk/internal/config"
	"github.com/aadk-dev/aadk/internal/daemon"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		only      string
		verbosity string
	)

	rootCmd := &cobra.Command{
		Use:   "aadkd",
		Short: "Run the aadk control plane daemon",
		Long: `aadkd hosts the job, observe, and workflow services, each on its
own listener. Addresses and the data directory come from AADK_*
environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(verbosity)
			if err != nil {
				return fmt.Errorf("invalid verbosity %q: %w", verbosity, err)
			}
			logrus.SetLevel(level)

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			var services []string
			if only != "" {
				services = strings.Split(only, ",")
				for i := range services {
					services[i] = strings.TrimSpace(services[i])
				}
			}

			d, err := daemon.New(cfg, services)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logrus.Infof("aadkd %s starting (data dir %s)", version, cfg.DataDir)
			return d.Run(ctx)
		},
	}

	rootCmd.Flags().StringVar(&only, "only", "",
		"Comma-separated services to host (job, observe, workflow)")
	rootCmd.Flags().StringVar(&verbosity, "verbosity", "info",
		"Log level (debug, info, warn, error)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("aadkd version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
