// Package cmd provides the command-line interface of fuelsim.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	envFile   string
	verbosity int
	logger    logr.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fuelsim",
	Short: "fuelsim simulates resource flow between the parts of a vessel.",
	Long: `fuelsim runs fuel lines that balance tanks and segmented boosters ` +
		`that feed their engine, on vessels described by YAML scenario files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadEnv(envFile); err != nil {
			return err
		}

		v := verbosity
		if !cmd.Flags().Changed("verbose") {
			v = envInt("FUELSIM_VERBOSITY", 0)
		}

		stdr.SetVerbosity(v)
		logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env",
		"Environment file with FUELSIM_* defaults")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0,
		"Log verbosity (default: FUELSIM_VERBOSITY or 0)")
}
