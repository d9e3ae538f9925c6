package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/fuelsim/datarecording"
	"github.com/sarchlab/fuelsim/telemetry"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <recording.sqlite3>",
	Short: "Summarizes a recorded run",
	Long: `Prints the last status of every part and the peak of every rate ` +
		`stored by "fuelsim run --db".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return summarize(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func summarize(ctx context.Context, path string) error {
	reader, err := datarecording.NewSQLiteReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	reader.MapTable(telemetry.StatusTable, telemetry.StatusRow{})
	reader.MapTable(telemetry.RateTable, telemetry.RateRow{})

	statuses, _, err := reader.Query(ctx, telemetry.StatusTable,
		datarecording.QueryParams{OrderBy: "Time"})
	if err != nil {
		return fmt.Errorf("reading statuses: %w", err)
	}

	rates, _, err := reader.Query(ctx, telemetry.RateTable,
		datarecording.QueryParams{})
	if err != nil {
		return fmt.Errorf("reading rates: %w", err)
	}

	last := make(map[string]string)
	for _, row := range statuses {
		s := row.(*telemetry.StatusRow)
		last[s.Part] = s.Status
	}

	peaks := make(map[[2]string]float64)
	for _, row := range rates {
		r := row.(*telemetry.RateRow)
		key := [2]string{r.Part, r.Metric}
		peaks[key] = math.Max(peaks[key], math.Abs(r.Value))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PART\tLAST STATUS")

	for _, part := range sortedKeys(last) {
		fmt.Fprintf(w, "%s\t%s\n", part, last[part])
	}

	fmt.Fprintln(w, "\nPART\tMETRIC\tPEAK")

	keys := make([][2]string, 0, len(peaks))
	for k := range peaks {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}

		return keys[i][1] < keys[j][1]
	})

	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\t%.6f\n", k[0], k[1], peaks[k])
	}

	return w.Flush()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
