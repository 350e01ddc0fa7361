/**
 * CONTEXT:   "health" subcommand - queries a running `worktimectl serve` daemon's
 *            /diagnostics endpoint for the Scheduler Health Monitor's per-task report
 *            (spec section 4.9 and section 6's "diagnostics endpoints")
 * INPUT:     worktimectl health report [--addr http://localhost:8080]
 * OUTPUT:    A tabular rendering of every registered task's health
 * CHANGE:    Initial implementation.
 * RISK:      Low - read-only diagnostics client
 */

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var healthAddr string

func init() {
	healthReportCmd.Flags().StringVar(&healthAddr, "addr", "http://localhost:8080", "base URL of a running 'worktimectl serve' daemon")
	healthCmd.AddCommand(healthReportCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query a running daemon's scheduler health",
}

type diagnosticsTask struct {
	ID                  string  `json:"id"`
	ExpectedIntervalSec float64 `json:"expected_interval_seconds"`
	LastRun             string  `json:"last_run,omitempty"`
	ConsecutiveFailures int     `json:"consecutive_failures"`
	LastError           string  `json:"last_error,omitempty"`
	Unhealthy           bool    `json:"unhealthy"`
}

var healthReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show scheduled background task health from a running daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(healthAddr + "/diagnostics")
		if err != nil {
			return fmt.Errorf("reach daemon at %s: %w (is 'worktimectl serve' running?)", healthAddr, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("daemon returned %s", resp.Status)
		}

		var tasks []diagnosticsTask
		if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
			return fmt.Errorf("decode diagnostics response: %w", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Task", "Expected Interval", "Last Run", "Failures", "Unhealthy", "Last Error"})
		for _, t := range tasks {
			unhealthy := "no"
			if t.Unhealthy {
				unhealthy = "yes"
			}
			lastRun := t.LastRun
			if lastRun == "" {
				lastRun = "never"
			}
			table.Append([]string{
				t.ID,
				fmt.Sprintf("%.0fs", t.ExpectedIntervalSec),
				lastRun,
				fmt.Sprintf("%d", t.ConsecutiveFailures),
				unhealthy,
				t.LastError,
			})
		}
		table.Render()
		return nil
	},
}
