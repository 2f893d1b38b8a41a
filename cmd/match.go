package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ornasync/core/config"
	"ornasync/core/database"
	"ornasync/core/logger"
	"ornasync/feature/guide"
	"ornasync/feature/match"
	"ornasync/feature/report"
	"ornasync/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the match command
	matchFix     bool
	matchYes     bool
	matchDataDir string
)

// matchCmd reconciles the guide against the codex snapshot.
var matchCmd = &cobra.Command{
	Use:   "match [kinds...]",
	Short: "Report and optionally fix guide entities drifting from the codex",
	Long: `Match compares every guide entity against its codex counterpart and
reports entities missing on either side plus field-level mismatches.

With --fix, each mismatch is repaired on the live guide: the entity is
re-fetched, corrected, saved once and re-fetched to confirm the write.

Kinds default to: items, monsters, skills, pets. The status-effects
matcher only runs when named explicitly; when it is, it runs first so
effects created by a fix are resolvable by the matchers that follow.

Examples:
  # Report only, all kinds
  ornasync match

  # Fix items and skills, confirming interactively
  ornasync match items skills --fix

  # Fix everything, non-interactive
  ornasync match --fix --yes`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchFix, "fix", false, "Write corrections to the live guide")
	matchCmd.Flags().BoolVar(&matchYes, "yes", false, "Auto-confirm fix mode (non-interactive)")
	matchCmd.Flags().StringVar(&matchDataDir, "data", "data", "Directory holding the snapshot")

	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
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

	snap, err := snapshot.Load(matchDataDir)
	if err != nil {
		return fmt.Errorf("failed to load snapshot from %s: %w", matchDataDir, err)
	}

	if matchFix && !matchYes {
		if !confirmWrite("This will write corrections to the live guide.") {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
	}

	engine := &match.Engine{
		Admin: guide.NewAdminGuide(cfg.Guide),
		Log:   l,
		Fix:   matchFix,
	}

	started := time.Now()
	l.Info("Starting match run",
		zap.Strings("targets", args),
		zap.Bool("fix", matchFix))

	rep, err := engine.Run(ctx, snap, args)
	if err != nil {
		return err
	}
	finished := time.Now()

	if rep.Clean() {
		l.Info("No differences found")
	} else {
		rep.Render(os.Stdout)
	}

	// The run history is optional; a missing database only costs the record.
	targets := args
	if len(targets) == 0 {
		targets = match.DefaultTargets
	}
	if db, dbErr := database.Connect(cfg.Database); dbErr != nil {
		l.Warn("Optional report database unavailable", zap.Error(dbErr))
	} else if store, storeErr := report.NewStore(db, l); storeErr != nil {
		l.Warn("Failed to prepare report store", zap.Error(storeErr))
	} else if run, saveErr := store.SaveRun(ctx, rep, matchFix, targets, started, finished); saveErr != nil {
		l.Warn("Failed to store run", zap.Error(saveErr))
	} else {
		l.Info("Run recorded", zap.String("run_id", run.ID))
	}

	return nil
}

// confirmWrite prompts the operator before a run that mutates the guide.
func confirmWrite(warning string) bool {
	fmt.Println(warning)
	fmt.Print("Continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
