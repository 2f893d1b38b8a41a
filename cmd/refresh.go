package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ornasync/core/config"
	"ornasync/core/logger"
	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/refresh"
	"ornasync/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var refreshDataDir string

// refreshCmd pulls fresh collections from both sites into the snapshot.
var refreshCmd = &cobra.Command{
	Use:       "refresh [codex|guide]",
	Short:     "Fetch a fresh snapshot of the codex and the guide",
	ValidArgs: []string{"codex", "guide"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Long: `Refresh lists and fetches every codex and guide collection and writes
the result as JSON documents into the data directory, replacing the
previous snapshot.

Naming one side refreshes only that side and keeps the other from the
snapshot already on disk, which must exist.

Fetch concurrency follows the codex and guide client settings; configure
a fetch delay to stay polite towards the remote sites.`,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVar(&refreshDataDir, "data", "data", "Directory to write the snapshot into")

	RootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	refresher := &refresh.Refresher{
		Codex:    codex.NewClient(cfg.Codex),
		Admin:    guide.NewAdminGuide(cfg.Guide),
		CodexCfg: cfg.Codex,
		GuideCfg: cfg.Guide,
		Log:      l,
	}

	side := ""
	if len(args) == 1 {
		side = args[0]
	}
	l.Info("Refreshing snapshot",
		zap.String("data", refreshDataDir),
		zap.String("side", side))

	var snap *snapshot.Snapshot
	switch side {
	case "":
		if snap, err = refresher.Snapshot(ctx); err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
	case "codex":
		if snap, err = snapshot.Load(refreshDataDir); err != nil {
			return fmt.Errorf("a partial refresh needs an existing snapshot: %w", err)
		}
		data, err := refresher.RefreshCodex(ctx)
		if err != nil {
			return fmt.Errorf("codex refresh failed: %w", err)
		}
		snap.Codex = *data
	case "guide":
		if snap, err = snapshot.Load(refreshDataDir); err != nil {
			return fmt.Errorf("a partial refresh needs an existing snapshot: %w", err)
		}
		data, err := refresher.RefreshGuide(ctx)
		if err != nil {
			return fmt.Errorf("guide refresh failed: %w", err)
		}
		snap.Guide = *data
	}

	if err := snap.Save(refreshDataDir); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	l.Info("Snapshot saved",
		zap.Int("items", len(snap.Codex.Items.Items)),
		zap.Int("monsters", len(snap.Codex.AllMonsters())),
		zap.Int("skills", len(snap.Codex.Skills.Skills)),
		zap.Int("followers", len(snap.Codex.Followers.Followers)),
		zap.Int("guide_items", len(snap.Guide.Items.Items)))
	return nil
}
