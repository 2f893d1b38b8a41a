package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"ornasync/core/config"
	"ornasync/core/logger"
	"ornasync/core/storage"
	"ornasync/feature/backup"
	"ornasync/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the backups subcommands
	backupsDataDir string
	changesPath    string
)

// backupsCmd is the parent command for all backup archive operations.
var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Create, merge, prune and mirror backup archives",
	Long: `Backups manages the timestamped tar.gz archives of the data snapshot.

Archive names embed their creation time, so lexical order is chronological
and merging applies older archives first.`,
}

// backupsCreateCmd archives the current snapshot and locale databases.
var backupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Archive the current snapshot into a new backup",
	RunE:  runBackupsCreate,
}

// backupsMergeCmd merges every archive into a single fresh one.
var backupsMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge all archives into one, newest data winning",
	Long: `Merge loads every archive oldest-first and keeps, per entity, the
version from the newest archive containing it. Entities listed in the
changes file are dropped from the result. The merged data is written as
a new archive.`,
	RunE: runBackupsMerge,
}

// backupsPruneCmd removes consecutive identical archives.
var backupsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete archives identical to their predecessor",
	RunE:  runBackupsPrune,
}

// backupsPushCmd uploads archives missing from the mirror bucket.
var backupsPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local archives missing from the mirror bucket",
	RunE:  runBackupsPush,
}

// backupsPullCmd downloads archives missing locally.
var backupsPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download mirror archives missing locally",
	RunE:  runBackupsPull,
}

func init() {
	backupsCmd.PersistentFlags().StringVar(&backupsDataDir, "data", "data", "Directory holding the snapshot and locale databases")
	backupsMergeCmd.Flags().StringVar(&changesPath, "changes", "changes.json", "Removal list applied while merging")

	backupsCmd.AddCommand(backupsCreateCmd)
	backupsCmd.AddCommand(backupsMergeCmd)
	backupsCmd.AddCommand(backupsPruneCmd)
	backupsCmd.AddCommand(backupsPushCmd)
	backupsCmd.AddCommand(backupsPullCmd)

	RootCmd.AddCommand(backupsCmd)
}

// backupSetup loads config and logger, shared by every subcommand.
func backupSetup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

func runBackupsCreate(cmd *cobra.Command, args []string) error {
	cfg, l, err := backupSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	snap, err := snapshot.Load(backupsDataDir)
	if err != nil {
		return fmt.Errorf("failed to load snapshot from %s: %w", backupsDataDir, err)
	}
	locales, err := snapshot.LoadLocaleDB(filepath.Join(backupsDataDir, "locales"))
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}
	manual, err := snapshot.LoadLocaleDB(filepath.Join(backupsDataDir, "manual_locales"))
	if err != nil {
		return fmt.Errorf("failed to load manual locales: %w", err)
	}

	b := &backup.Backup{Data: *snap, Locales: locales, ManualLocales: manual}
	path, err := b.Save(cfg.Backup.Directory, cfg.Backup.Prefix, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save archive: %w", err)
	}

	l.Info("Archive created", zap.String("path", path))
	return nil
}

func runBackupsMerge(cmd *cobra.Command, args []string) error {
	cfg, l, err := backupSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	backups, err := backup.LoadAll(cfg.Backup.Directory)
	if err != nil {
		return fmt.Errorf("failed to load archives: %w", err)
	}
	if len(backups) == 0 {
		l.Warn("No archives to merge", zap.String("directory", cfg.Backup.Directory))
		return nil
	}

	changes, err := backup.LoadChanges(changesPath)
	if err != nil {
		return fmt.Errorf("failed to load changes: %w", err)
	}

	merged := backup.Merge(backups)
	changes.Apply(merged)

	path, err := merged.Save(cfg.Backup.Directory, cfg.Backup.Prefix, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save merged archive: %w", err)
	}

	l.Info("Archives merged",
		zap.Int("count", len(backups)),
		zap.String("path", path))
	return nil
}

func runBackupsPrune(cmd *cobra.Command, args []string) error {
	cfg, l, err := backupSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	removed, err := backup.Prune(cfg.Backup.Directory, l)
	if err != nil {
		return fmt.Errorf("failed to prune archives: %w", err)
	}

	l.Info("Prune complete", zap.Int("removed", len(removed)))
	return nil
}

func runBackupsPush(cmd *cobra.Command, args []string) error {
	return runMirror(func(ctx context.Context, m *backup.Mirror, dir string) ([]string, error) {
		return m.Push(ctx, dir)
	}, "pushed")
}

func runBackupsPull(cmd *cobra.Command, args []string) error {
	return runMirror(func(ctx context.Context, m *backup.Mirror, dir string) ([]string, error) {
		return m.Pull(ctx, dir)
	}, "pulled")
}

func runMirror(op func(context.Context, *backup.Mirror, string) ([]string, error), verb string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, l, err := backupSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	mirror := backup.NewMirror(client, cfg.Backup.Bucket, l)
	names, err := op(ctx, mirror, cfg.Backup.Directory)
	if err != nil {
		return fmt.Errorf("mirror operation failed: %w", err)
	}

	l.Info("Mirror synchronised",
		zap.Int("archives", len(names)),
		zap.String("direction", verb))
	return nil
}
