package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/warp/config"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// isolated between test runs.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "warp",
		Short: "Align numeric sequences with Dynamic Time Warping.",
		Long: `Warp computes the minimal-cost Dynamic Time Warping alignment between numeric
sequences under one of three step patterns (case1, case2, case3). The align
command handles a single pair; the batch command aligns every pair listed in a
YAML job file on a worker pool, optionally memoizing results in Redis.
Defaults are read from ~/.warp.yaml unless --config points elsewhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML configuration file (default "+
		config.DefaultPath+").")
	if err := rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(newAlignCmd(), newBatchCmd())
	return rootCmd
}

// loadConfig reads the file named by --config (or the default one).
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, errors.Wrap(err, "failed to load the configuration")
	}
	return cfg, nil
}
