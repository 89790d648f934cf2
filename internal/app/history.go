package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/YCTS-otree/codelife/internal/config"
	"github.com/YCTS-otree/codelife/internal/output"
	"github.com/YCTS-otree/codelife/internal/store"
	"github.com/YCTS-otree/codelife/internal/summary"
)

var (
	historyFlagLimit int
	historyFlagJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs and how the totals moved",
	Long: `History lists report runs recorded in the local database, newest
first, with trend arrows showing how total lines moved between consecutive
runs of the same mode.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(flagNoColor || !cfg.Output.Color)

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListRuns(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if historyFlagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println(output.StyleMuted.Render(" No runs recorded yet. Run 'codelife report' first."))
		return nil
	}

	fmt.Println(output.Section("Run History"))
	fmt.Println()

	tbl := output.NewTable("When", "Mode", "Projects", "Files", "Lines", "Trend", "Size")
	for i, r := range runs {
		mode := r.Mode
		if r.Year != 0 {
			mode = fmt.Sprintf("%s %d", r.Mode, r.Year)
		}
		tbl.AddRow(
			r.TakenAt.Local().Format("2006-01-02 15:04"),
			mode,
			fmt.Sprintf("%d", r.ProjectCount),
			fmt.Sprintf("%d", r.TotalFiles),
			humanize.Comma(int64(r.TotalLines)),
			lineTrend(runs, i),
			summary.HumanSize(r.TotalSize),
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}

// lineTrend compares a run's line total against the previous run of the same
// mode (runs are listed newest first, so the previous run sits further down).
func lineTrend(runs []store.Run, i int) string {
	cur := runs[i]
	for _, older := range runs[i+1:] {
		if older.Mode == cur.Mode && older.Year == cur.Year {
			return output.TrendArrow(int64(cur.TotalLines) - int64(older.TotalLines))
		}
	}
	return output.StyleMuted.Render("─")
}
