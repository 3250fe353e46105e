// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "bloch-sim",
	Short: "Bloch-equation NMR/MRI signal simulator",
}

// Execute runs the root command; invoked from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(convertCmd)
}
