package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/fuelsim/scenario"
)

type describer interface {
	Info() string
}

var infoCmd = &cobra.Command{
	Use:   "info <scenario.yaml>",
	Short: "Describes the modules of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		flight, err := loadFlight(args[0])
		if err != nil {
			return err
		}

		for _, m := range flight.Modules() {
			fmt.Printf("%s (on %s)\n", m.Name(), m.Part())

			if d, ok := m.(describer); ok {
				fmt.Println(d.Info())
			}

			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func loadFlight(path string) (*scenario.Flight, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}

	return sc.Build(scenario.Options{Logger: logger})
}
