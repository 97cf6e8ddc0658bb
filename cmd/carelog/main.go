// Package main provides the carelog binary entry point.
// Carelog is a patient-record manager driven by a line-oriented command
// language: records are created, tagged, scheduled and archived through
// prefix-tagged commands and persisted between sessions.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	// Version is the release version.
	Version = "0.1.0"
	// BuildTime is stamped at build time.
	BuildTime = "dev"
	appName   = "carelog"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		prefsPath string
		dataPath  string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "carelog",
		Short: "Patient-record manager",
		Long: `Carelog is a patient-record manager driven by a line-oriented
command language.

It provides:
- Structured patient records (name, phone, email, address)
- Allergy, condition and insurance tag categories
- Appointment scheduling and archiving
- Persistence between sessions

Type "help" at the prompt for the command reference.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(prefsPath, dataPath, logLevel)
		},
	}

	cmd.Flags().StringVarP(&prefsPath, "config", "c", "", "Preferences file path (YAML)")
	cmd.Flags().StringVar(&dataPath, "data", "", "Record file path (overrides preferences)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
