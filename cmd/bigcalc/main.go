package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	resultColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:           "bigcalc",
	Short:         "Arbitrary-precision integer and decimal calculator",
	Long:          `bigcalc evaluates arbitrary-precision integer and decimal expressions from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(intCmd)
	rootCmd.AddCommand(decCmd)
	rootCmd.AddCommand(factorCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config with default precision and rounding")
	rootCmd.PersistentFlags().Int("precision", -1, "significant digits of decimal results (0 = unlimited)")
	rootCmd.PersistentFlags().String("rounding", "", "rounding mode (up|down|ceiling|floor|half-up|half-down|half-even|unnecessary)")

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
