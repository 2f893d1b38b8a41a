package backup

import (
	"sort"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// Merger folds a chronological sequence of backups into one canonical
// backup. Codex entities merge by slug, guide entities by id, static
// resources by id, locales by locale then slug. A later entity replaces
// an earlier one with the same key wholesale; there is no field-level
// merge.
type Merger struct {
	codexItems     map[string]codex.Item
	codexMonsters  map[string]codex.Monster
	codexBosses    map[string]codex.Boss
	codexRaids     map[string]codex.Raid
	codexSkills    map[string]codex.Skill
	codexFollowers map[string]codex.Follower

	guideItems    map[uint32]guide.Item
	guideMonsters map[uint32]guide.Monster
	guideSkills   map[uint32]guide.Skill
	guidePets     map[uint32]guide.Pet
	static        staticMerger

	locales       snapshot.LocaleDB
	manualLocales snapshot.LocaleDB
}

type staticMerger struct {
	spawns          map[uint32]guide.NamedID
	itemCategories  map[uint32]guide.NamedID
	itemTypes       map[uint32]guide.NamedID
	monsterFamilies map[uint32]guide.NamedID
	statusEffects   map[uint32]guide.NamedID
	elements        map[uint32]guide.NamedID
	equippedBys     map[uint32]guide.NamedID
	skillTypes      map[uint32]guide.NamedID
}

// NewMerger creates an empty Merger.
func NewMerger() *Merger {
	return &Merger{
		codexItems:     map[string]codex.Item{},
		codexMonsters:  map[string]codex.Monster{},
		codexBosses:    map[string]codex.Boss{},
		codexRaids:     map[string]codex.Raid{},
		codexSkills:    map[string]codex.Skill{},
		codexFollowers: map[string]codex.Follower{},
		guideItems:     map[uint32]guide.Item{},
		guideMonsters:  map[uint32]guide.Monster{},
		guideSkills:    map[uint32]guide.Skill{},
		guidePets:      map[uint32]guide.Pet{},
		static: staticMerger{
			spawns:          map[uint32]guide.NamedID{},
			itemCategories:  map[uint32]guide.NamedID{},
			itemTypes:       map[uint32]guide.NamedID{},
			monsterFamilies: map[uint32]guide.NamedID{},
			statusEffects:   map[uint32]guide.NamedID{},
			elements:        map[uint32]guide.NamedID{},
			equippedBys:     map[uint32]guide.NamedID{},
			skillTypes:      map[uint32]guide.NamedID{},
		},
		locales:       snapshot.LocaleDB{},
		manualLocales: snapshot.LocaleDB{},
	}
}

// Absorb folds one backup into the merger. Callers must absorb backups
// oldest first for last-write-wins to mean newest-wins.
func (m *Merger) Absorb(b *Backup) {
	for _, e := range b.Data.Codex.Items.Items {
		m.codexItems[e.Slug] = e
	}
	for _, e := range b.Data.Codex.Monsters.Monsters {
		m.codexMonsters[e.Slug] = e
	}
	for _, e := range b.Data.Codex.Bosses.Bosses {
		m.codexBosses[e.Slug] = e
	}
	for _, e := range b.Data.Codex.Raids.Raids {
		m.codexRaids[e.Slug] = e
	}
	for _, e := range b.Data.Codex.Skills.Skills {
		m.codexSkills[e.Slug] = e
	}
	for _, e := range b.Data.Codex.Followers.Followers {
		m.codexFollowers[e.Slug] = e
	}
	for _, e := range b.Data.Guide.Items.Items {
		m.guideItems[e.ID] = e
	}
	for _, e := range b.Data.Guide.Monsters.Monsters {
		m.guideMonsters[e.ID] = e
	}
	for _, e := range b.Data.Guide.Skills.Skills {
		m.guideSkills[e.ID] = e
	}
	for _, e := range b.Data.Guide.Pets.Pets {
		m.guidePets[e.ID] = e
	}
	m.static.absorb(&b.Data.Guide.Static)
	m.locales.Merge(b.Locales)
	m.manualLocales.Merge(b.ManualLocales)
}

func (s *staticMerger) absorb(static *guide.Static) {
	fold := func(dst map[uint32]guide.NamedID, src []guide.NamedID) {
		for _, e := range src {
			dst[e.ID] = e
		}
	}
	fold(s.spawns, static.Spawns)
	fold(s.itemCategories, static.ItemCategories)
	fold(s.itemTypes, static.ItemTypes)
	fold(s.monsterFamilies, static.MonsterFamilies)
	fold(s.statusEffects, static.StatusEffects)
	fold(s.elements, static.Elements)
	fold(s.equippedBys, static.EquippedBys)
	fold(s.skillTypes, static.SkillTypes)
}

// Result assembles the merged backup. Collections come out sorted by
// key so the output is deterministic regardless of absorb order within
// a timestamp.
func (m *Merger) Result() *Backup {
	b := &Backup{
		Locales:       m.locales,
		ManualLocales: m.manualLocales,
	}
	b.Data.Codex.Items.Items = sortedBySlug(m.codexItems, func(e codex.Item) string { return e.Slug })
	b.Data.Codex.Monsters.Monsters = sortedBySlug(m.codexMonsters, func(e codex.Monster) string { return e.Slug })
	b.Data.Codex.Bosses.Bosses = sortedBySlug(m.codexBosses, func(e codex.Boss) string { return e.Slug })
	b.Data.Codex.Raids.Raids = sortedBySlug(m.codexRaids, func(e codex.Raid) string { return e.Slug })
	b.Data.Codex.Skills.Skills = sortedBySlug(m.codexSkills, func(e codex.Skill) string { return e.Slug })
	b.Data.Codex.Followers.Followers = sortedBySlug(m.codexFollowers, func(e codex.Follower) string { return e.Slug })
	b.Data.Guide.Items.Items = sortedByID(m.guideItems, func(e guide.Item) uint32 { return e.ID })
	b.Data.Guide.Monsters.Monsters = sortedByID(m.guideMonsters, func(e guide.Monster) uint32 { return e.ID })
	b.Data.Guide.Skills.Skills = sortedByID(m.guideSkills, func(e guide.Skill) uint32 { return e.ID })
	b.Data.Guide.Pets.Pets = sortedByID(m.guidePets, func(e guide.Pet) uint32 { return e.ID })
	b.Data.Guide.Static = guide.Static{
		Spawns:          sortedByID(m.static.spawns, namedKey),
		ItemCategories:  sortedByID(m.static.itemCategories, namedKey),
		ItemTypes:       sortedByID(m.static.itemTypes, namedKey),
		MonsterFamilies: sortedByID(m.static.monsterFamilies, namedKey),
		StatusEffects:   sortedByID(m.static.statusEffects, namedKey),
		Elements:        sortedByID(m.static.elements, namedKey),
		EquippedBys:     sortedByID(m.static.equippedBys, namedKey),
		SkillTypes:      sortedByID(m.static.skillTypes, namedKey),
	}
	return b
}

// Merge folds the given backups, oldest first, into one.
func Merge(backups []*Backup) *Backup {
	m := NewMerger()
	for _, b := range backups {
		m.Absorb(b)
	}
	return m.Result()
}

func namedKey(e guide.NamedID) uint32 { return e.ID }

func sortedBySlug[E any](entities map[string]E, key func(E) string) []E {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}

func sortedByID[E any](entities map[uint32]E, key func(E) uint32) []E {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}
