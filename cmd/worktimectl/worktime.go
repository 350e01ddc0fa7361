/**
 * CONTEXT:   "worktime" subcommand - the caller's monthly worktime entries and derived
 *            month summary (spec section 4.6), the read-only reporting surface SPEC_FULL.md
 *            section 1 advertises
 * INPUT:     worktimectl worktime show [--year Y] [--month M] [--schedule H]
 * OUTPUT:    A tabular rendering of the month's entries plus the summary row
 * CHANGE:    Initial implementation.
 * RISK:      Low - read-only reporting, no writes
 */

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/worktime-tracker/system/internal/calc"
)

var (
	worktimeYear     int
	worktimeMonth    int
	worktimeSchedule int
)

var worktimeCmd = &cobra.Command{
	Use:   "worktime",
	Short: "Inspect the caller's monthly worktime table",
}

func init() {
	worktimeShowCmd.Flags().IntVar(&worktimeYear, "year", 0, "year (defaults to current)")
	worktimeShowCmd.Flags().IntVar(&worktimeMonth, "month", 0, "month 1-12 (defaults to current)")
	worktimeShowCmd.Flags().IntVar(&worktimeSchedule, "schedule", 8, "nominal daily schedule in hours (6, 7, or 8)")
	worktimeCmd.AddCommand(worktimeShowCmd)
}

var worktimeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show this month's worktime entries and summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		now := time.Now().In(a.cfg.Location)
		year := worktimeYear
		if year == 0 {
			year = now.Year()
		}
		month := worktimeMonth
		if month == 0 {
			month = int(now.Month())
		}

		acc := a.factory.For(a.role, true)
		entries, err := acc.ReadWorktime(a.caller, year, month)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Date", "Worked", "Overtime", "Temp Stop", "Time Off", "Status"})
		for _, e := range entries {
			table.Append([]string{
				e.WorkDate.Format("2006-01-02"),
				fmt.Sprintf("%dm", e.TotalWorkedMinutes),
				fmt.Sprintf("%dm", e.TotalOvertimeMinutes),
				fmt.Sprintf("%dm", e.TotalTemporaryStopMinutes),
				e.TimeOffType,
				e.AdminSync,
			})
		}
		table.Render()

		summary := calc.MonthSummaryFromEntries(entries, worktimeSchedule, year, time.Month(month))
		headerColor.Printf("\n%d-%02d summary for %s\n", year, month, a.caller.Username)
		infoColor.Printf("days worked: %d  SN: %d  CO: %d  CM: %d\n",
			summary.DaysWorked, summary.SNDays, summary.CODays, summary.CMDays)
		infoColor.Printf("regular minutes: %d  overtime minutes: %d\n",
			summary.RegularMinutes, summary.OvertimeMinutes)
		infoColor.Printf("work days in month: %d  remaining: %d\n",
			summary.TotalWorkDays, summary.RemainingWorkDays)
		return nil
	},
}
