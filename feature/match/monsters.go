package match

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// MatchMonsters reconciles guide monsters against the codex's three
// monster families. Monster creation is manual on the guide, so missing
// entities are reported but never added.
func MatchMonsters(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	if err := listMissingMonsters(snap, rep); err != nil {
		return err
	}
	return checkMonsters(ctx, snap, fix, admin, rep)
}

// locateMonster finds the guide counterpart of a codex monster. The
// guide keeps all three families in one table, so the lookup filters by
// the family the codex page belongs to.
func locateMonster(monster codex.GenericMonster, data *guide.Data) (*guide.Monster, error) {
	switch {
	case monster.Monster != nil:
		return data.Monsters.GetByMonsterSlug(monster.Monster.Slug)
	case monster.Boss != nil:
		return data.Monsters.GetByBossSlug(monster.Boss.Slug, data.Static.Spawns)
	default:
		return data.Monsters.GetByRaidSlug(monster.Raid.Slug, data.Static.Spawns)
	}
}

func listMissingMonsters(snap *snapshot.Snapshot, rep *Reporter) error {
	for _, monster := range snap.Codex.AllMonsters() {
		_, err := locateMonster(monster, &snap.Guide)
		var notFound *guide.NotFoundError
		switch {
		case err == nil:
		case errors.As(err, &notFound):
			rep.MissingOnGuide("monsters", monster.KindLabel()+" "+monster.Name(), monster.URI())
		default:
			return err
		}
	}
	for i := range snap.Guide.Monsters.Monsters {
		monster := &snap.Guide.Monsters.Monsters[i]
		if monster.CodexURI == "" {
			continue
		}
		if _, err := snap.Codex.GetGenericByURI(monster.CodexURI); err != nil {
			rep.NotOnCodex("monsters", monster.Name, monster.ID)
		}
	}
	return nil
}

func checkMonsters(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	for _, codexMonster := range snap.Codex.AllMonsters() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		guideMonster, err := locateMonster(codexMonster, &snap.Guide)
		var notFound *guide.NotFoundError
		if errors.As(err, &notFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := checkMonster(ctx, snap, fix, admin, rep, codexMonster, guideMonster); err != nil {
			var ambiguous *guide.AmbiguousMatchError
			if errors.As(err, &ambiguous) {
				return err
			}
			rep.FixFailed("monsters", guideMonster.Name, guideMonster.ID, err)
		}
	}
	return nil
}

func checkMonster(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter, codexMonster codex.GenericMonster, guideMonster *guide.Monster) error {
	static := &snap.Guide.Static
	check := &Checker[guide.Monster]{
		Kind:   "monsters",
		Name:   guideMonster.Name,
		ID:     guideMonster.ID,
		Fix:    fix,
		Fetch:  admin.FetchMonster,
		Save:   admin.SaveMonster,
		Report: rep,
	}

	if _, err := CheckScalar(ctx, check, "image_name", guideMonster.ImageName, codexMonster.Icon(),
		func(monster *guide.Monster, image string) { monster.ImageName = image }); err != nil {
		return err
	}

	if err := checkEvents(ctx, static, check, admin, codexMonster, guideMonster); err != nil {
		return err
	}

	// Family is compared by name; the guide stores an id. Raids carry
	// no family on the codex.
	guideFamily := ""
	if guideMonster.Family != nil {
		if family := static.FindMonsterFamilyByID(*guideMonster.Family); family != nil {
			guideFamily = family.Name
		}
	}
	if _, err := CheckScalar(ctx, check, "family", guideFamily, codexMonster.Family(),
		func(monster *guide.Monster, name string) {
			if name == "" {
				monster.Family = nil
			} else if family := static.FindMonsterFamilyByName(name); family != nil {
				id := family.ID
				monster.Family = &id
			}
		}); err != nil {
		return err
	}

	if err := checkRaidTags(ctx, static, check, codexMonster, guideMonster); err != nil {
		return err
	}
	return checkAbilities(ctx, snap, rep, check, codexMonster, guideMonster)
}

// checkEvents compares the monster's event spawns against the codex's
// event list, by event name: the guide may not have a spawn entry yet
// for a new codex event. In fix mode missing spawns are created first
// ("Past Event: ..." entries, ids assigned by the guide) and the spawn
// list is re-fetched, then the delta is applied to the monster. Event
// spawns live alongside non-event spawns that only the guide knows
// about; those survive the fix.
func checkEvents(ctx context.Context, static *guide.Static, check *Checker[guide.Monster], admin guide.AdminGuide, codexMonster codex.GenericMonster, guideMonster *guide.Monster) error {
	guideEvents := guideMonster.EventNames(static.Spawns)
	codexEvents := sortedUnique(codexMonster.Events())
	if slices.Equal(guideEvents, codexEvents) {
		return nil
	}
	m := check.Report.Field(check.Kind, check.Name, check.ID, "events", guideEvents, codexEvents)
	if !check.Fix {
		return nil
	}

	toAdd, toRemove := DiffSorted(codexEvents, guideEvents)
	created := false
	for _, name := range toAdd {
		if static.FindEventByName(name) != nil {
			continue
		}
		if err := admin.AddSpawn(ctx, guide.PastEventSpawnName(name)); err != nil {
			return fmt.Errorf("failed to add spawn for event %q: %w", name, err)
		}
		created = true
	}
	if created {
		spawns, err := guide.RetryOnce(func() ([]guide.NamedID, error) { return admin.ListSpawns(ctx) })
		if err != nil {
			return fmt.Errorf("failed to re-list spawns: %w", err)
		}
		static.Spawns = spawns
	}

	err := check.apply(ctx, func(monster *guide.Monster) error {
		kept := monster.Spawns[:0]
		for _, id := range monster.Spawns {
			spawn := static.FindSpawnByID(id)
			if spawn == nil || !spawn.IsEvent() || !slices.Contains(toRemove, spawn.EventName()) {
				kept = append(kept, id)
			}
		}
		monster.Spawns = kept
		for _, name := range toAdd {
			if spawn := static.FindEventByName(name); spawn != nil {
				monster.Spawns = append(monster.Spawns, spawn.ID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	m.Fixed = true
	return nil
}

// checkRaidTags compares the raid membership tags. They map onto the
// "Kingdom Raid" and "World Raid" spawns, so a fix rewrites just those
// two entries of the spawns list.
func checkRaidTags(ctx context.Context, static *guide.Static, check *Checker[guide.Monster], codexMonster codex.GenericMonster, guideMonster *guide.Monster) error {
	guideTags := guideMonster.RaidSpawnNames(static.Spawns)
	codexTags := sortedUnique(codexMonster.TagsAsGuideSpawns())
	if slices.Equal(guideTags, codexTags) {
		return nil
	}
	m := check.Report.Field(check.Kind, check.Name, check.ID, "raid tags", guideTags, codexTags)
	if !check.Fix {
		return nil
	}
	err := check.apply(ctx, func(monster *guide.Monster) error {
		kept := monster.Spawns[:0]
		for _, id := range monster.Spawns {
			spawn := static.FindSpawnByID(id)
			if spawn == nil || (spawn.Name != codex.SpawnKingdomRaid && spawn.Name != codex.SpawnWorldRaid) {
				kept = append(kept, id)
			}
		}
		monster.Spawns = kept
		for _, tag := range codexTags {
			if spawn := static.FindSpawnByName(tag); spawn != nil {
				monster.Spawns = append(monster.Spawns, spawn.ID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	m.Fixed = true
	return nil
}

// checkAbilities compares the monster's skill list. Guide-side skills
// without a codex page (passives mostly) are invisible to the codex and
// excluded from the comparison so they survive fixes.
func checkAbilities(ctx context.Context, snap *snapshot.Snapshot, rep *Reporter, check *Checker[guide.Monster], codexMonster codex.GenericMonster, guideMonster *guide.Monster) error {
	var guideAbilities []uint32
	for _, id := range guideMonster.Skills {
		if skill := snap.Guide.Skills.FindByID(id); skill != nil && skill.CodexURI != "" {
			guideAbilities = append(guideAbilities, id)
		}
	}
	expected, err := ResolveAbilityIDs(codexMonster.Abilities(), &snap.Guide.Skills)
	var partial *PartialResolutionError
	if errors.As(err, &partial) {
		rep.PartialResolution("monsters", guideMonster.Name, "abilities", partial)
	} else if err != nil {
		return err
	}
	_, err = CheckIDList(ctx, check, "abilities",
		sortedUnique(guideAbilities), sortedUnique(expected),
		skillName(&snap.Guide.Skills), func(monster *guide.Monster) *[]uint32 { return &monster.Skills })
	return err
}