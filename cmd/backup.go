package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create, list and restore progress backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, false, func(d *deps) error {
			path, err := d.progress.BackupIfChanged()
			if err != nil {
				return fmt.Errorf("backup: %w", err)
			}
			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes since the last backup.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, false, func(d *deps) error {
			backups, err := d.progress.Backups()
			if err != nil {
				return fmt.Errorf("list backups: %w", err)
			}
			if len(backups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No backups in", d.progress.BackupDir())
				return nil
			}
			for i, b := range backups {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s  %8d  %s\n",
					i+1, b.ModTime.Local().Format("2006-01-02 15:04:05"), b.Size, filepath.Base(b.Path))
			}
			return nil
		})
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <n|path>",
	Short: "Replace the progress file with a backup",
	Long:  "Restores backup number n from 'backup list', or the backup file at path. The current progress is backed up first when it differs.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, false, func(d *deps) error {
			path := args[0]
			if n, err := strconv.Atoi(args[0]); err == nil {
				backups, err := d.progress.Backups()
				if err != nil {
					return fmt.Errorf("list backups: %w", err)
				}
				if n < 1 || n > len(backups) {
					return fmt.Errorf("no backup number %d", n)
				}
				path = backups[n-1].Path
			}
			if _, err := d.progress.BackupIfChanged(); err != nil {
				return fmt.Errorf("back up current progress: %w", err)
			}
			if err := d.progress.RestoreBackup(path); err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Restored", filepath.Base(path))
			return nil
		})
	},
}

func init() {
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}
