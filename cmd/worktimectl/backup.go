/**
 * CONTEXT:   "backup" subcommand - lists and restores tiered backups for the caller's
 *            own artifacts (spec section 4.3)
 * INPUT:     worktimectl backup list [--kind worktime|register|check_register]
 *            worktimectl backup restore --path <backup-file>
 * OUTPUT:    A tabular listing of available backups, newest first, or a restored file
 * CHANGE:    Initial implementation.
 * RISK:      Medium - restore overwrites the caller's own current file
 */

package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
)

var (
	backupKind       string
	backupRestorePath string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "List and restore tiered backups",
}

func init() {
	backupListCmd.Flags().StringVar(&backupKind, "kind", "worktime", "worktime, register, or check_register")
	backupRestoreCmd.Flags().StringVar(&backupKind, "kind", "worktime", "worktime, register, or check_register")
	backupRestoreCmd.Flags().StringVar(&backupRestorePath, "path", "", "backup file path to restore from (required)")
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

func parseBackupKind(name string) (domain.FileKind, error) {
	switch name {
	case "worktime":
		return domain.FileKindWorktime, nil
	case "register":
		return domain.FileKindRegister, nil
	case "check_register":
		return domain.FileKindCheckRegister, nil
	default:
		return 0, fmt.Errorf("unknown backup kind %q: want worktime, register, or check_register", name)
	}
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available HIGH-tier backups for the caller",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		kind, err := parseBackupKind(backupKind)
		if err != nil {
			return err
		}

		backups, err := a.backup.ListAvailableBackups(a.caller, kind)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Timestamp", "Path"})
		for _, b := range backups {
			table.Append([]string{b.Timestamp.Format("2006-01-02 15:04:05"), b.Path})
		}
		table.Render()
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the caller's current file from a listed backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if backupRestorePath == "" {
			return fmt.Errorf("--path is required")
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		kind, err := parseBackupKind(backupKind)
		if err != nil {
			return err
		}

		target, err := a.resolver.ResolveLocal(kind, a.caller, pathresolver.Params{FallbackToNow: true})
		if err != nil {
			return err
		}
		backupPath := domain.FilePath{Path: backupRestorePath, Kind: domain.BACKUP, Owner: a.caller}

		if err := a.backup.RestoreFrom(backupPath, target); err != nil {
			return err
		}
		successColor.Printf("restored %s from %s\n", target.Path, backupRestorePath)
		return nil
	},
}
