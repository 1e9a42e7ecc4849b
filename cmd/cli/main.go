package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/de-tools/focus-atlas/pkg/services/report"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	sessionstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/session"
	taskstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/task"
	userstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/user"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	userID string
	period string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "focus-atlas",
		Short: "Inspect Focus Atlas data from the terminal",
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print an activity report for a user",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVar(&dbPath, "db", "focus-atlas.db", "Path to the SQLite database")
	reportCmd.Flags().StringVar(&userID, "user", "", "User id to report on")
	reportCmd.Flags().StringVar(&period, "period", "week", "Report period: day, week, month or year")
	_ = reportCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := sessionstore.NewStore(db)
	if err != nil {
		return err
	}
	tasks, err := taskstore.NewStore(db)
	if err != nil {
		return err
	}
	users, err := userstore.NewStore(db)
	if err != nil {
		return err
	}

	engine := report.NewEngine(sessions, tasks, users)
	summary, err := engine.Summary(cmd.Context(), userID, report.Normalize(period))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Report for %s (%s, since %s)\n\n",
		userID, summary.Period, summary.StartDate.Format("2006-01-02"))
	fmt.Fprintf(out, "Hours focused:\t%.1f\n", summary.ActivitySummary.HoursFocused)
	fmt.Fprintf(out, "Days accessed:\t%d\n", summary.ActivitySummary.DaysAccessed)
	fmt.Fprintf(out, "Day streak:\t%d\n\n", summary.ActivitySummary.DayStreak)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tCOUNT\tPLANNED MIN\tACTUAL MIN")
	types := make([]string, 0, len(summary.TimerStats))
	for t := range summary.TimerStats {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		s := summary.TimerStats[t]
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\n", t, s.Count, s.TotalDuration, s.TotalActualDuration)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(w, "DATE\tFOCUS H\tSESSIONS")
	for _, d := range summary.DailyStats {
		fmt.Fprintf(w, "%s\t%.1f\t%d\n", d.Date, d.FocusHours, d.Sessions)
	}
	return w.Flush()
}
