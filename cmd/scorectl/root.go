package main

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/mind-engage/assessment-engine/internal/scoring"
	_ "github.com/mind-engage/assessment-engine/internal/scoring/all"
)

var (
	logLevel string
	output   string
	pretty   bool
)

var rootCmd = &cobra.Command{
	Use:   "scorectl",
	Short: "Score psychometric assessment attempts",
	Long: `scorectl runs the assessment scoring engine over a raw-response blob.

It reads the JSON object accumulated by the answer endpoint, routes it to the
scorer for the named instrument, and emits the result blob that the platform
persists verbatim.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns any error.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scorectl:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("SCORECTL_LOG_LEVEL", "warn"), "log level (debug|info|warn|error|off)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", envOr("SCORECTL_OUTPUT", ""), "write the result blob to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "indent the result blob")
}

func setupLogging() error {
	lvl, ok := map[string]log.Lvl{
		"debug": log.DEBUG,
		"info":  log.INFO,
		"warn":  log.WARN,
		"error": log.ERROR,
		"off":   log.OFF,
	}[logLevel]
	if !ok {
		return fmt.Errorf("unknown log level %q", logLevel)
	}
	scoring.SetLogLevel(lvl)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
