package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dnf_rate/pkg/logx"
)

var verbose bool //nolint:gochecknoglobals

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "ratecli",
	Short: "ratecli queries DNF cross-area gold ratios from yxdr.com.",
	PersistentPreRun: func(*cobra.Command, []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(logx.NewHandler(os.Stderr, level, time.Kitchen)))
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log upstream requests")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
