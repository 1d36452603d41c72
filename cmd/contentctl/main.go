// contentctl is the operator tool for stored job content: it audits and
// backfills encodings, renders postings on any surface, announces new
// postings to Telegram and explains icon resolution.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-jobboard/internal/config"
	"go-jobboard/internal/database"
	"go-jobboard/internal/logging"
	"go-jobboard/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	timeout time.Duration

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "contentctl",
	Short:         "Inspect and maintain job posting content",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "give up after this long")

	backfillCmd.Flags().Bool("dry-run", false, "only count the jobs that would be rewritten")
	renderCmd.Flags().String("surface", "text", "text, web, admin, mobile or pdf")
	renderCmd.Flags().StringP("out", "o", "", "write to this file instead of stdout")

	rootCmd.AddCommand(auditCmd, backfillCmd, renderCmd, announceCmd, iconCmd)
}

// connect loads the config and opens the job repository.
func connect(ctx context.Context) (*database.Repository, *services.JobService, error) {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return nil, nil, err
	}
	repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return repo, services.NewJobService(repo, logger), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
