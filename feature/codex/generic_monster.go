package codex

// GenericMonster is the closed union of the three monster families the codex
// splits across separate pages: regular monsters, bosses and raids. The guide
// stores all three in a single monster table, so the matcher iterates them
// through this one accessor set.
//
// Exactly one of the three pointers is non-nil.
type GenericMonster struct {
	Monster *Monster
	Boss    *Boss
	Raid    *Raid
}

// Slug returns the codex slug of the wrapped entity.
func (g GenericMonster) Slug() string {
	switch {
	case g.Monster != nil:
		return g.Monster.Slug
	case g.Boss != nil:
		return g.Boss.Slug
	default:
		return g.Raid.Slug
	}
}

// Name returns the display name of the wrapped entity.
func (g GenericMonster) Name() string {
	switch {
	case g.Monster != nil:
		return g.Monster.Name
	case g.Boss != nil:
		return g.Boss.Name
	default:
		return g.Raid.Name
	}
}

// Icon returns the icon path of the wrapped entity.
func (g GenericMonster) Icon() string {
	switch {
	case g.Monster != nil:
		return g.Monster.Icon
	case g.Boss != nil:
		return g.Boss.Icon
	default:
		return g.Raid.Icon
	}
}

// URI returns the codex URI of the wrapped entity.
func (g GenericMonster) URI() string {
	switch {
	case g.Monster != nil:
		return g.Monster.URI()
	case g.Boss != nil:
		return g.Boss.URI()
	default:
		return g.Raid.URI()
	}
}

// KindLabel returns the codex family name, for reporting.
func (g GenericMonster) KindLabel() string {
	switch {
	case g.Monster != nil:
		return "Monster"
	case g.Boss != nil:
		return "Boss"
	default:
		return "Raid"
	}
}

// Events returns the events during which the wrapped entity spawns.
func (g GenericMonster) Events() []string {
	switch {
	case g.Monster != nil:
		return g.Monster.Events
	case g.Boss != nil:
		return g.Boss.Events
	default:
		return g.Raid.Events
	}
}

// Tier returns the tier of the wrapped entity.
func (g GenericMonster) Tier() int {
	switch {
	case g.Monster != nil:
		return g.Monster.Tier
	case g.Boss != nil:
		return g.Boss.Tier
	default:
		return g.Raid.Tier
	}
}

// Family returns the family of the wrapped entity. Raids have none.
func (g GenericMonster) Family() string {
	switch {
	case g.Monster != nil:
		return g.Monster.Family
	case g.Boss != nil:
		return g.Boss.Family
	default:
		return ""
	}
}

// Tags returns the tags of the wrapped entity.
func (g GenericMonster) Tags() []string {
	switch {
	case g.Monster != nil:
		return g.Monster.Tags
	case g.Boss != nil:
		return g.Boss.Tags
	default:
		return g.Raid.Tags
	}
}

// Abilities returns the ability references of the wrapped entity.
func (g GenericMonster) Abilities() []Ref {
	switch {
	case g.Monster != nil:
		return g.Monster.Abilities
	case g.Boss != nil:
		return g.Boss.Abilities
	default:
		return g.Raid.Abilities
	}
}

// Drops returns the drop references of the wrapped entity.
func (g GenericMonster) Drops() []Ref {
	switch {
	case g.Monster != nil:
		return g.Monster.Drops
	case g.Boss != nil:
		return g.Boss.Drops
	default:
		return g.Raid.Drops
	}
}

// Raid spawn tags as the guide names them. The codex tags "World Raid" and
// "Kingdom Raid" map one-to-one onto guide spawns.
const (
	SpawnWorldRaid   = "World Raid"
	SpawnKingdomRaid = "Kingdom Raid"
)

// TagsAsGuideSpawns converts codex tags to the guide spawn names they stand
// for. Unknown tags are dropped.
func (g GenericMonster) TagsAsGuideSpawns() []string {
	var spawns []string
	for _, tag := range g.Tags() {
		if tag == SpawnWorldRaid || tag == SpawnKingdomRaid {
			spawns = append(spawns, tag)
		}
	}
	return spawns
}

// AllMonsters returns every monster, boss and raid in the snapshot, in that
// order, wrapped as GenericMonsters.
func (d *Data) AllMonsters() []GenericMonster {
	all := make([]GenericMonster, 0,
		len(d.Monsters.Monsters)+len(d.Bosses.Bosses)+len(d.Raids.Raids))
	for i := range d.Monsters.Monsters {
		all = append(all, GenericMonster{Monster: &d.Monsters.Monsters[i]})
	}
	for i := range d.Bosses.Bosses {
		all = append(all, GenericMonster{Boss: &d.Bosses.Bosses[i]})
	}
	for i := range d.Raids.Raids {
		all = append(all, GenericMonster{Raid: &d.Raids.Raids[i]})
	}
	return all
}

// GetGenericByURI resolves a codex URI of any monster family.
func (d *Data) GetGenericByURI(uri string) (GenericMonster, error) {
	if monster, err := d.Monsters.GetByURI(uri); err == nil {
		return GenericMonster{Monster: monster}, nil
	}
	if boss, err := d.Bosses.GetByURI(uri); err == nil {
		return GenericMonster{Boss: boss}, nil
	}
	if raid, err := d.Raids.GetByURI(uri); err == nil {
		return GenericMonster{Raid: raid}, nil
	}
	return GenericMonster{}, &NotFoundError{Kind: KindMonsters, Key: uri}
}
