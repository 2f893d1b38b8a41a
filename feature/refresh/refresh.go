package refresh

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// Refresher pulls full collections from both sites.
type Refresher struct {
	// Codex is the read-only catalogue client.
	Codex codex.Client
	// Admin is the guide client.
	Admin guide.AdminGuide
	// CodexCfg carries the codex delay and worker settings.
	CodexCfg codex.Config
	// GuideCfg carries the guide delay and worker settings.
	GuideCfg guide.Config
	// Log receives progress.
	Log *zap.Logger
}

// Snapshot fetches everything from both sites into a new snapshot.
func (r *Refresher) Snapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	codexData, err := r.RefreshCodex(ctx)
	if err != nil {
		return nil, err
	}
	guideData, err := r.RefreshGuide(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot.Snapshot{Codex: *codexData, Guide: *guideData}, nil
}

// RefreshCodex lists and fetches every codex collection.
func (r *Refresher) RefreshCodex(ctx context.Context) (*codex.Data, error) {
	var data codex.Data
	delay, workers := r.CodexCfg.FetchDelayMS, 1
	if delay == 0 {
		// The codex tolerates a few parallel readers.
		workers = 4
	}

	var err error
	if data.Items.Items, err = fetchCodexKind(ctx, r, codex.KindItems, delay, workers, r.Codex.FetchItem); err != nil {
		return nil, err
	}
	if data.Monsters.Monsters, err = fetchCodexKind(ctx, r, codex.KindMonsters, delay, workers, r.Codex.FetchMonster); err != nil {
		return nil, err
	}
	if data.Bosses.Bosses, err = fetchCodexKind(ctx, r, codex.KindBosses, delay, workers, r.Codex.FetchBoss); err != nil {
		return nil, err
	}
	if data.Raids.Raids, err = fetchCodexKind(ctx, r, codex.KindRaids, delay, workers, r.Codex.FetchRaid); err != nil {
		return nil, err
	}
	if data.Skills.Skills, err = fetchCodexKind(ctx, r, codex.KindSkills, delay, workers, r.Codex.FetchSkill); err != nil {
		return nil, err
	}
	if data.Followers.Followers, err = fetchCodexKind(ctx, r, codex.KindFollowers, delay, workers, r.Codex.FetchFollower); err != nil {
		return nil, err
	}
	return &data, nil
}

func fetchCodexKind[E any](ctx context.Context, r *Refresher, kind codex.Kind, delay, workers int, fetch func(context.Context, string) (*E, error)) ([]E, error) {
	entries, err := r.Codex.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list codex %s: %w", string(kind), err)
	}
	r.Log.Info("fetching codex collection",
		zap.String("kind", string(kind)), zap.Int("count", len(entries)))
	slugs := make([]string, len(entries))
	for i, entry := range entries {
		slugs[i] = entry.Slug
	}
	return fetchAll(ctx, slugs, delay, workers, fetch)
}

// RefreshGuide lists and fetches every guide collection plus the static
// resources.
func (r *Refresher) RefreshGuide(ctx context.Context) (*guide.Data, error) {
	var data guide.Data
	delay, workers := r.GuideCfg.FetchDelayMS, r.GuideCfg.FetchWorkers
	if workers <= 0 {
		workers = 1
	}

	var err error
	if data.Items.Items, err = fetchGuideKind(ctx, r, "items", delay, workers, r.Admin.ListItems, r.Admin.FetchItem); err != nil {
		return nil, err
	}
	if data.Monsters.Monsters, err = fetchGuideKind(ctx, r, "monsters", delay, workers, r.Admin.ListMonsters, r.Admin.FetchMonster); err != nil {
		return nil, err
	}
	if data.Skills.Skills, err = fetchGuideKind(ctx, r, "skills", delay, workers, r.Admin.ListSkills, r.Admin.FetchSkill); err != nil {
		return nil, err
	}
	if data.Pets.Pets, err = fetchGuideKind(ctx, r, "pets", delay, workers, r.Admin.ListPets, r.Admin.FetchPet); err != nil {
		return nil, err
	}
	static, err := guide.RetryOnce(func() (*guide.Static, error) { return r.Admin.FetchStatic(ctx) })
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guide static resources: %w", err)
	}
	data.Static = *static
	return &data, nil
}

func fetchGuideKind[E any](ctx context.Context, r *Refresher, kind string, delay, workers int, list func(context.Context) ([]guide.Entry, error), fetch func(context.Context, uint32) (*E, error)) ([]E, error) {
	entries, err := guide.RetryOnce(func() ([]guide.Entry, error) { return list(ctx) })
	if err != nil {
		return nil, fmt.Errorf("failed to list guide %s: %w", kind, err)
	}
	r.Log.Info("fetching guide collection",
		zap.String("kind", kind), zap.Int("count", len(entries)))
	ids := make([]uint32, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return fetchAll(ctx, ids, delay, workers, fetch)
}

// fetchAll retrieves one entity per key. A non-zero delay serializes
// the fetches with that pause between each; otherwise up to workers
// fetches run concurrently. Each fetch is retried once.
func fetchAll[K any, E any](ctx context.Context, keys []K, delayMS, workers int, fetch func(context.Context, K) (*E, error)) ([]E, error) {
	out := make([]E, len(keys))
	if delayMS > 0 {
		pause := time.Duration(delayMS) * time.Millisecond
		for i, key := range keys {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			entity, err := guide.RetryOnce(func() (*E, error) { return fetch(ctx, key) })
			if err != nil {
				return nil, err
			}
			out[i] = *entity
			if i < len(keys)-1 {
				time.Sleep(pause)
			}
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, key := range keys {
		g.Go(func() error {
			entity, err := guide.RetryOnce(func() (*E, error) { return fetch(gctx, key) })
			if err != nil {
				return err
			}
			out[i] = *entity
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
