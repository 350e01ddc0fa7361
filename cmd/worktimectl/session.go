/**
 * CONTEXT:   "session" subcommand - start/pause/resume/stop the caller's current work
 *            session, wired straight through sessionfsm's pure transitions and the
 *            sessionstore persistence layer
 * INPUT:     worktimectl session {start,pause,resume,stop}
 * OUTPUT:    The session's new status printed to stdout, or a validation error
 * CHANGE:    Initial implementation.
 * RISK:      Medium - the only CLI surface that mutates session state
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/worktime-tracker/system/internal/sessionfsm"
	"github.com/worktime-tracker/system/internal/sessionstore"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the caller's current work session",
}

func init() {
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionPauseCmd)
	sessionCmd.AddCommand(sessionResumeCmd)
	sessionCmd.AddCommand(sessionStopCmd)
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin today's work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		store := sessionstore.New(a.resolver)
		prior, err := store.Load(a.caller)
		if err != nil {
			return err
		}

		now := time.Now().In(a.cfg.Location)
		next, err := sessionfsm.StartDay(prior, a.caller.UserID, a.caller.Username, now, store.Archive)
		if err != nil {
			return err
		}
		if err := store.Save(a.caller, next); err != nil {
			return err
		}
		a.log.Info("session started", "user", a.caller.Username, "day", next.Day.Format("2006-01-02"))
		successColor.Printf("session started at %s\n", next.CurrentStartTime.Format("15:04"))
		return nil
	},
}

var sessionPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Enter a temporary stop",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		store := sessionstore.New(a.resolver)
		cur, err := store.Load(a.caller)
		if err != nil {
			return err
		}
		if cur == nil {
			return fmt.Errorf("no session in progress; run 'session start' first")
		}

		now := time.Now().In(a.cfg.Location)
		next, err := sessionfsm.Pause(*cur, now)
		if err != nil {
			return err
		}
		if err := store.Save(a.caller, next); err != nil {
			return err
		}
		warningColor.Printf("session paused at %s\n", now.Format("15:04"))
		return nil
	},
}

var sessionResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Leave a temporary stop",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		store := sessionstore.New(a.resolver)
		cur, err := store.Load(a.caller)
		if err != nil {
			return err
		}
		if cur == nil {
			return fmt.Errorf("no session in progress; run 'session start' first")
		}

		now := time.Now().In(a.cfg.Location)
		next, err := sessionfsm.Resume(*cur, now)
		if err != nil {
			return err
		}
		if err := store.Save(a.caller, next); err != nil {
			return err
		}
		successColor.Printf("session resumed at %s\n", now.Format("15:04"))
		return nil
	},
}

var sessionStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End today's work day",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		store := sessionstore.New(a.resolver)
		cur, err := store.Load(a.caller)
		if err != nil {
			return err
		}
		if cur == nil {
			return fmt.Errorf("no session in progress; run 'session start' first")
		}

		now := time.Now().In(a.cfg.Location)
		next, err := sessionfsm.EndDay(*cur, now, nil)
		if err != nil {
			return err
		}
		if err := store.Save(a.caller, next); err != nil {
			return err
		}
		a.log.Info("session ended", "user", a.caller.Username, "worked_minutes", next.TotalWorkedMinutes)
		infoColor.Printf("worked %d minutes", next.TotalWorkedMinutes)
		if next.TotalOvertimeMinutes > 0 {
			fmt.Printf(" (%d overtime)", next.TotalOvertimeMinutes)
		}
		fmt.Println()
		return nil
	},
}
