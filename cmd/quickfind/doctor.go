package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giftig/quickfind/internal/backend"
	"github.com/giftig/quickfind/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which search backends are installed",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, name := range []string{"rg", "ag"} {
		runner, err := backend.Detect(name, nil)
		if err != nil {
			return err
		}

		status := "not installed"
		if runner.Available() {
			status = "ok"
		}
		cmd.Printf("  %-3s %s\n", runner.Name(), status)
	}

	name := flagBackend
	if name == "" {
		name = cfg.Backend.Name
	}

	runner, err := backend.Detect(name, cfg.Backend.ExtraArgs)
	if err != nil {
		return err
	}

	cmd.Printf("\nSelected backend: %s\n", runner.Name())
	return nil
}
