package match

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// Matcher targets selectable from the command line.
const (
	TargetItems         = "items"
	TargetMonsters      = "monsters"
	TargetSkills        = "skills"
	TargetPets          = "pets"
	TargetStatusEffects = "status-effects"
)

// AllTargets lists every matcher in execution order. Status effects run
// first so that effects created in fix mode are resolvable by the item
// and skill matchers of the same run. The rest of the order matters
// too: monster and pet fixers consult the item and skill tables, which
// the earlier matchers may have just extended.
var AllTargets = []string{TargetStatusEffects, TargetItems, TargetMonsters, TargetSkills, TargetPets}

// DefaultTargets is what runs when no matcher is selected. The status
// effect matcher is opt-in: the guide's effect list carries entries the
// codex never names, and flooding every run with those reports would
// drown the entity findings.
var DefaultTargets = []string{TargetItems, TargetMonsters, TargetSkills, TargetPets}

// Engine orchestrates the per-kind matchers against one snapshot. The
// snapshot is exclusively owned by the engine for the duration of a run
// and mutated in place as fixes land.
type Engine struct {
	// Admin is the writable guide the fixers talk to.
	Admin guide.AdminGuide
	// Log receives progress and findings.
	Log *zap.Logger
	// Fix is whether mismatches are written back to the guide.
	Fix bool
}

// Run executes the selected matchers in fixed order and returns the
// collected findings. Field mismatches are not errors; only I/O
// failures and ambiguous codex_uri matches abort a run.
func (e *Engine) Run(ctx context.Context, snap *snapshot.Snapshot, targets []string) (*Reporter, error) {
	if len(targets) == 0 {
		targets = DefaultTargets
	}
	for _, target := range targets {
		if !slices.Contains(AllTargets, target) {
			return nil, fmt.Errorf("unknown matcher %q", target)
		}
	}

	rep := NewReporter(e.Log)
	matchers := []struct {
		target string
		run    func(context.Context, *snapshot.Snapshot, bool, guide.AdminGuide, *Reporter) error
	}{
		{TargetStatusEffects, MatchStatusEffects},
		{TargetItems, MatchItems},
		{TargetMonsters, MatchMonsters},
		{TargetSkills, MatchSkills},
		{TargetPets, MatchPets},
	}
	for _, matcher := range matchers {
		if !slices.Contains(targets, matcher.target) {
			continue
		}
		e.Log.Info("matching", zap.String("kind", matcher.target), zap.Bool("fix", e.Fix))
		if err := matcher.run(ctx, snap, e.Fix, e.Admin, rep); err != nil {
			return rep, fmt.Errorf("matching %s failed: %w", matcher.target, err)
		}
	}
	return rep, nil
}
