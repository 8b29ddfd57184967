package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bgraf/trackpic/geotrack"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary TRACK-FILE",
	Short: "Print point count, time span, bounds and length of a track",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Bool("json", false, "Print the summary as JSON")
}

type trackSummary struct {
	Points   int             `json:"points"`
	Start    time.Time       `json:"start"`
	End      time.Time       `json:"end"`
	Duration string          `json:"duration"`
	LengthKM float64         `json:"lengthKm"`
	Bounds   geotrack.Bounds `json:"bounds"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		panic(err) // Should not happen
	}

	summary, err := summarizeTrack(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	b := summary.Bounds
	fmt.Printf("Track points:  %d\n", summary.Points)
	fmt.Printf("Start:         %s\n", summary.Start.Format(time.RFC3339))
	fmt.Printf("End:           %s\n", summary.End.Format(time.RFC3339))
	fmt.Printf("Duration:      %s\n", summary.Duration)
	fmt.Printf("Length:        %.2fkm\n", summary.LengthKM)
	fmt.Printf("Min elevation: %g\n", b.MinElevation)
	fmt.Printf("Max elevation: %g\n", b.MaxElevation)
	fmt.Printf("Min longitude: %g\n", b.MinLon)
	fmt.Printf("Max longitude: %g\n", b.MaxLon)
	fmt.Printf("Min latitude:  %g\n", b.MinLat)
	fmt.Printf("Max latitude:  %g\n", b.MaxLat)

	return nil
}

func summarizeTrack(trackFile string) (trackSummary, error) {
	points, err := geotrack.LoadTrack(trackFile)
	if err != nil {
		return trackSummary{}, fmt.Errorf("load track '%s': %w", trackFile, err)
	}

	bounds, err := geotrack.Summarize(points)
	if err != nil {
		return trackSummary{}, fmt.Errorf("summarize track '%s': %w", trackFile, err)
	}

	return trackSummary{
		Points:   len(points),
		Start:    points[0].Time,
		End:      points[len(points)-1].Time,
		Duration: geotrack.Duration(points).String(),
		LengthKM: geotrack.TrackLength(points),
		Bounds:   bounds,
	}, nil
}
