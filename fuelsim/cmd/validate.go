package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type activator interface {
	Activate() error
}

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>",
	Short: "Checks a scenario and the configuration of its modules",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		flight, err := loadFlight(args[0])
		if err != nil {
			return err
		}

		var faults []error

		for _, m := range flight.Modules() {
			a, ok := m.(activator)
			if !ok {
				continue
			}

			if err := a.Activate(); err != nil {
				faults = append(faults, fmt.Errorf("%s: %w", m.Name(), err))
				continue
			}

			fmt.Printf("%s: ok\n", m.Name())
		}

		return errors.Join(faults...)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
