package guide

import "sort"

// Spawn names that mark a boss entry as a raid.
const (
	spawnKingdomRaid        = "Kingdom Raid"
	spawnWorldRaid          = "World Raid"
	spawnWorldRaidYearRound = "World Raid year-round"
)

// IsRegularMonster reports whether the monster is a plain overworld monster.
func (m *Monster) IsRegularMonster() bool {
	return !m.Boss
}

// IsBoss reports whether the monster is a boss: flagged boss without a raid
// spawn. Raid membership lives in the spawns list, so the guide's spawn
// table is needed to decide.
func (m *Monster) IsBoss(spawns []NamedID) bool {
	return m.Boss && !m.hasRaidSpawn(spawns)
}

// IsRaid reports whether the monster is a raid: flagged boss with a raid spawn.
func (m *Monster) IsRaid(spawns []NamedID) bool {
	return m.Boss && m.hasRaidSpawn(spawns)
}

func (m *Monster) hasRaidSpawn(spawns []NamedID) bool {
	for _, id := range m.Spawns {
		if spawn := findByID(spawns, id); spawn != nil {
			switch spawn.Name {
			case spawnKingdomRaid, spawnWorldRaid, spawnWorldRaidYearRound:
				return true
			}
		}
	}
	return false
}

// EventNames returns the event names of the monster's event spawns,
// without their "Event:" prefixes, sorted.
func (m *Monster) EventNames(spawns []NamedID) []string {
	var names []string
	for _, id := range m.Spawns {
		if spawn := findByID(spawns, id); spawn != nil && spawn.IsEvent() {
			names = append(names, spawn.EventName())
		}
	}
	sort.Strings(names)
	return names
}

// RaidSpawnNames returns the monster's raid spawn names ("Kingdom Raid",
// "World Raid"), sorted.
func (m *Monster) RaidSpawnNames(spawns []NamedID) []string {
	var names []string
	for _, id := range m.Spawns {
		if spawn := findByID(spawns, id); spawn != nil {
			if spawn.Name == spawnKingdomRaid || spawn.Name == spawnWorldRaid {
				names = append(names, spawn.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}
