package guide

import "strings"

// NamedID is an id+name pair from the guide's static resources.
type NamedID struct {
	// ID of the entry on the guide.
	ID uint32 `json:"id"`
	// Name of the entry.
	Name string `json:"name"`
}

// Static holds the guide-side enumerations. They are immutable during a
// reconciliation run, except when fix mode adds a missing status effect or
// spawn; the id is assigned by the guide, so the affected list must be
// re-fetched to learn it.
type Static struct {
	// Spawns lists where monsters can spawn, events included.
	Spawns []NamedID `json:"spawns"`
	// ItemCategories lists item categories (Fish, Instrument, ...).
	ItemCategories []NamedID `json:"item_categories"`
	// ItemTypes lists item types (Weapon, Adornment, Off-hand, ...).
	ItemTypes []NamedID `json:"item_types"`
	// MonsterFamilies lists monster families.
	MonsterFamilies []NamedID `json:"monster_families"`
	// StatusEffects lists status effects.
	StatusEffects []NamedID `json:"status_effects"`
	// Elements lists elements.
	Elements []NamedID `json:"elements"`
	// EquippedBys lists the classes that can equip an item.
	EquippedBys []NamedID `json:"equipped_bys"`
	// SkillTypes lists skill types (Passive, Magic, AoE, ...).
	SkillTypes []NamedID `json:"skill_types"`
}

// Event spawn prefixes as the guide names them.
const (
	eventPrefix     = "Event:"
	pastEventPrefix = "Past Event:"
)

// EventName returns the spawn's event name without the "Event:" or
// "Past Event:" prefix, or an empty string if the spawn is not an event.
func (n NamedID) EventName() string {
	if rest, ok := strings.CutPrefix(n.Name, eventPrefix); ok {
		return strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(n.Name, pastEventPrefix); ok {
		return strings.TrimSpace(rest)
	}
	return ""
}

// PastEventSpawnName renders the spawn name for a newly created event.
// New events always enter the guide as past events; promoting one to a
// live "Event:" entry is a manual call.
func PastEventSpawnName(event string) string {
	return pastEventPrefix + " " + event
}

// IsEvent reports whether the spawn is an event spawn.
func (n NamedID) IsEvent() bool {
	return strings.HasPrefix(n.Name, eventPrefix) || strings.HasPrefix(n.Name, pastEventPrefix)
}

func findByName(entries []NamedID, name string) *NamedID {
	for i := range entries {
		if entries[i].Name == name {
			return &entries[i]
		}
	}
	return nil
}

func findByID(entries []NamedID, id uint32) *NamedID {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i]
		}
	}
	return nil
}

// FindSpawnByName returns the spawn with the given name, or nil.
func (s *Static) FindSpawnByName(name string) *NamedID { return findByName(s.Spawns, name) }

// FindSpawnByID returns the spawn with the given id, or nil.
func (s *Static) FindSpawnByID(id uint32) *NamedID { return findByID(s.Spawns, id) }

// FindEventByName returns the event spawn with the given event name (without
// prefix), or nil.
func (s *Static) FindEventByName(name string) *NamedID {
	for i := range s.Spawns {
		if s.Spawns[i].IsEvent() && s.Spawns[i].EventName() == name {
			return &s.Spawns[i]
		}
	}
	return nil
}

// FindStatusEffectByName returns the status effect with the given name, or nil.
func (s *Static) FindStatusEffectByName(name string) *NamedID {
	return findByName(s.StatusEffects, name)
}

// FindStatusEffectByID returns the status effect with the given id, or nil.
func (s *Static) FindStatusEffectByID(id uint32) *NamedID { return findByID(s.StatusEffects, id) }

// FindElementByName returns the element with the given name, or nil.
func (s *Static) FindElementByName(name string) *NamedID { return findByName(s.Elements, name) }

// FindElementByID returns the element with the given id, or nil.
func (s *Static) FindElementByID(id uint32) *NamedID { return findByID(s.Elements, id) }

// FindItemTypeByName returns the item type with the given name, or nil.
func (s *Static) FindItemTypeByName(name string) *NamedID { return findByName(s.ItemTypes, name) }

// FindMonsterFamilyByName returns the monster family with the given name, or nil.
func (s *Static) FindMonsterFamilyByName(name string) *NamedID {
	return findByName(s.MonsterFamilies, name)
}

// FindMonsterFamilyByID returns the monster family with the given id, or nil.
func (s *Static) FindMonsterFamilyByID(id uint32) *NamedID {
	return findByID(s.MonsterFamilies, id)
}

// FindSkillTypeByName returns the skill type with the given name, or nil.
func (s *Static) FindSkillTypeByName(name string) *NamedID { return findByName(s.SkillTypes, name) }
