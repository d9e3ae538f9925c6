package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/fuelsim/datarecording"
	"github.com/sarchlab/fuelsim/monitoring"
	"github.com/sarchlab/fuelsim/scenario"
	"github.com/sarchlab/fuelsim/sim/timing"
	"github.com/sarchlab/fuelsim/telemetry"
	"github.com/sarchlab/fuelsim/vessel"
)

type runSettings struct {
	duration float64
	freq     float64
	warp     float64
	db       string
	monitor  bool
	port     int
	open     bool
}

var runFlags runSettings

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Runs a scenario",
	Long: `Builds the vessel of a scenario, runs it until the end time and ` +
		`prints the final state of every pool. Status changes and rates can ` +
		`be recorded into a SQLite database with --db, and the run can be ` +
		`watched in a browser with --monitor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenario(args[0], resolveRunSettings(cmd))
	},
}

func init() {
	f := runCmd.Flags()
	f.Float64Var(&runFlags.duration, "duration", 0,
		"Simulated seconds (default: FUELSIM_DURATION or the scenario's)")
	f.Float64Var(&runFlags.freq, "freq", 0,
		"Physics ticks per second (default: FUELSIM_FREQ or the scenario's)")
	f.Float64Var(&runFlags.warp, "warp", 0,
		"Time warp factor (default: FUELSIM_WARP or the scenario's)")
	f.StringVar(&runFlags.db, "db", "",
		"Record into this SQLite database (default: FUELSIM_DB)")
	f.BoolVar(&runFlags.monitor, "monitor", false,
		"Serve the monitor while running")
	f.IntVar(&runFlags.port, "port", 0,
		"Monitor port (default: FUELSIM_MONITOR_PORT or random)")
	f.BoolVar(&runFlags.open, "open", false,
		"Open the monitor in a browser")

	rootCmd.AddCommand(runCmd)
}

func resolveRunSettings(cmd *cobra.Command) runSettings {
	s := runFlags
	f := cmd.Flags()

	if !f.Changed("duration") {
		s.duration = envFloat("FUELSIM_DURATION", 0)
	}

	if !f.Changed("freq") {
		s.freq = envFloat("FUELSIM_FREQ", 0)
	}

	if !f.Changed("warp") {
		s.warp = envFloat("FUELSIM_WARP", 0)
	}

	if !f.Changed("db") {
		s.db = envString("FUELSIM_DB", "")
	}

	if !f.Changed("port") {
		s.port = envInt("FUELSIM_MONITOR_PORT", 0)
	}

	if s.open {
		s.monitor = true
	}

	return s
}

func runScenario(path string, s runSettings) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	flight, err := sc.Build(scenario.Options{
		Duration: s.duration,
		Freq:     s.freq,
		Warp:     s.warp,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	flight.Engine.AcceptHook(timing.NewEventLogger(logger))
	flight.Vessel.AcceptHook(telemetry.NewLogHook(logger))

	statusTimes := telemetry.NewStatusTimeTracer()
	flight.Vessel.AcceptHook(statusTimes)

	if s.db != "" {
		recorder, err := datarecording.New(s.db)
		if err != nil {
			return err
		}
		defer recorder.Close()

		samples := uint64(math.Max(1, math.Round(float64(flight.Vessel.Freq))))
		flight.Vessel.AcceptHook(
			telemetry.NewRecorderHook(recorder).SamplePools(flight.Vessel, samples))

		fmt.Fprintf(os.Stderr, "Recording to %s\n", recorder.Filename())
	}

	if s.monitor {
		if err := startMonitor(flight, s); err != nil {
			return err
		}
	}

	if err := flight.Run(); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}

	printPools(flight.Vessel.Snapshot())
	printStatusTimes(statusTimes.Times())

	return nil
}

func startMonitor(flight *scenario.Flight, s runSettings) error {
	m := monitoring.NewMonitor().WithPortNumber(s.port).WithLogger(logger)
	m.RegisterEngine(flight.Engine)
	m.RegisterVessel(flight.Vessel)
	m.RegisterWarp(flight.Warp)

	bar := m.CreateProgressBar(flight.Vessel.Name(), flight.Vessel.EndTime())
	flight.Vessel.AcceptHook(monitoring.NewProgressHook(bar))

	url, err := m.StartServer()
	if err != nil {
		return err
	}

	if s.open {
		if err := browser.OpenURL(url); err != nil {
			logger.Error(err, "cannot open browser", "url", url)
		}
	}

	return nil
}

func printPools(parts []vessel.PartSnapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tSTATUS\tRESOURCE\tAMOUNT\tMAX")

	for _, p := range parts {
		for _, pool := range p.Pools {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%.4f\n",
				p.ID, p.Status, pool.Resource, pool.Amount, pool.MaxAmount)
		}
	}

	w.Flush()
}

func printStatusTimes(times []telemetry.StatusTime) {
	if len(times) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nPART\tSTATUS\tTIME (s)")

	for _, t := range times {
		fmt.Fprintf(w, "%s\t%s\t%.3f\n", t.Part, t.Status, t.Time)
	}

	w.Flush()
}
