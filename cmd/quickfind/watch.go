package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/giftig/quickfind/internal/finder"
	"github.com/giftig/quickfind/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <term>",
	Short: "Re-run a search whenever files change",
	Long: `Watch the current directory tree and re-run the given search whenever
files change, printing refreshed results after each change.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"How long to wait after a change before re-running")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	intent, err := buildIntent(args[0])
	if err != nil {
		return err
	}

	cfg, logger, runner, err := setup()
	if err != nil {
		return err
	}

	f := finder.New(runner, cfg.Search.Exclude, nil, logger)

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	w := watch.New(cwd, watchDebounce, logger)
	return w.Run(ctx, func(ctx context.Context) error {
		results, err := f.Run(ctx, intent)
		if err != nil {
			return err
		}

		fmt.Printf("-- %s: %d result(s)\n", time.Now().Format(time.TimeOnly), len(results))
		for _, line := range results {
			fmt.Println(line)
		}
		return nil
	})
}
