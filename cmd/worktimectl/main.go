/**
 * CONTEXT:   Single binary CLI for the work-time tracker, adapted from the teacher's
 *            claude-monitor root command (cobra, fatih/color theming, persistent flags)
 * INPUT:     Command line arguments determining which subcommand runs
 * OUTPUT:    Session/worktime/backup/health reports on stdout, or a running daemon
 * CHANGE:    Initial implementation.
 * RISK:      Medium - The only operator-facing surface of the whole system
 */

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgMagenta, color.Bold)
)

var (
	configFile  string
	noColor     bool
	flagUser    int
	flagUser2   string
	flagRole    string
)

var rootCmd = &cobra.Command{
	Use:   "worktimectl",
	Short: "Work-time tracker - offline-first session and worktime management",
	Long: `worktimectl tracks per-user work sessions against a local-first, network-
synced file store.

SESSION LIFECYCLE:
  worktimectl session start       # begin today's work session
  worktimectl session pause       # enter a temporary stop
  worktimectl session resume      # leave a temporary stop
  worktimectl session stop        # end the work day

REPORTING:
  worktimectl worktime show       # this month's worktime entries and summary
  worktimectl backup list         # available tiered backups
  worktimectl health report       # scheduled background task health

DAEMON:
  worktimectl serve               # run the background coordinator and HTTP surface`,
}

func main() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (JSON)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().IntVar(&flagUser, "user-id", 1, "acting user id")
	rootCmd.PersistentFlags().StringVar(&flagUser2, "username", "", "acting username")
	rootCmd.PersistentFlags().StringVar(&flagRole, "role", "USER", "acting role: USER, TEAM_LEADER, or ADMIN")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(worktimeCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
