package codex

import "fmt"

// Kind identifies one of the codex entity families.
type Kind string

const (
	KindItems     Kind = "items"
	KindMonsters  Kind = "monsters"
	KindBosses    Kind = "bosses"
	KindRaids     Kind = "raids"
	KindSkills    Kind = "spells"
	KindFollowers Kind = "followers"
)

// URI builds the canonical codex URI for a slug of this kind, with the
// trailing slash the codex uses everywhere.
func (k Kind) URI(slug string) string {
	return fmt.Sprintf("/codex/%s/%s/", string(k), slug)
}

// Ref is a reference from one codex entity to another, carried as the target
// entity's URI. Abilities, drops and upgrade materials are all Refs.
type Ref struct {
	// Name is the display name of the referenced entity.
	Name string `json:"name"`
	// URI is the codex URI of the referenced entity.
	URI string `json:"uri"`
	// Icon is the path to the referenced entity's icon.
	Icon string `json:"icon"`
}

// EffectRef is a status effect named on an entity page. The codex carries
// only the effect name, not a link.
type EffectRef struct {
	// Name is the status effect name as printed on the codex.
	Name string `json:"name"`
	// Icon is the path to the effect's icon.
	Icon string `json:"icon"`
}

// SkillEffect is a status effect a skill causes or gives, with its chance.
type SkillEffect struct {
	// Effect is the status effect name as printed on the codex.
	Effect string `json:"effect"`
	// Chance is the percentage chance of the effect applying.
	Chance int `json:"chance"`
}

// Stats are the combat statistics block of an item page. Absent stats are
// nil, which the matcher treats as zero on the guide side.
type Stats struct {
	Attack         *int    `json:"attack,omitempty"`
	Magic          *int    `json:"magic,omitempty"`
	HP             *int    `json:"hp,omitempty"`
	Mana           *int    `json:"mana,omitempty"`
	Defense        *int    `json:"defense,omitempty"`
	Resistance     *int    `json:"resistance,omitempty"`
	Ward           *int    `json:"ward,omitempty"`
	Dexterity      *int    `json:"dexterity,omitempty"`
	Crit           *int    `json:"crit,omitempty"`
	Foresight      *int    `json:"foresight,omitempty"`
	AdornmentSlots *int    `json:"adornment_slots,omitempty"`
	Element        *string `json:"element,omitempty"`
}

// Item is an item on the codex.
type Item struct {
	// Slug of the item (`/codex/items/{slug}/`).
	Slug string `json:"slug"`
	// Name of the item.
	Name string `json:"name"`
	// Icon path of the item.
	Icon string `json:"icon"`
	// In-game description.
	Description string `json:"description"`
	// Tier of the item.
	Tier int `json:"tier"`
	// Tags attached to the item (e.g. "Found in shops").
	Tags []string `json:"tags"`
	// Stats block, if the item has one.
	Stats *Stats `json:"stats,omitempty"`
	// Ability granted by the item, if any.
	Ability *Ref `json:"ability,omitempty"`
	// Status effects the item causes.
	Causes []EffectRef `json:"causes"`
	// Status effects the item cures.
	Cures []EffectRef `json:"cures"`
	// Status effects the item gives to its wearer.
	Gives []EffectRef `json:"gives"`
	// Status effects the item grants immunity to.
	Immunities []EffectRef `json:"immunities"`
	// Monsters that drop the item.
	DroppedBy []Ref `json:"dropped_by"`
	// Materials required to upgrade the item.
	UpgradeMaterials []Ref `json:"upgrade_materials"`
}

// URI returns the codex URI of the item.
func (i *Item) URI() string { return KindItems.URI(i.Slug) }

// Monster is a regular (overworld) monster on the codex.
type Monster struct {
	// Slug of the monster (`/codex/monsters/{slug}/`).
	Slug string `json:"slug"`
	// Name of the monster.
	Name string `json:"name"`
	// Icon path of the monster.
	Icon string `json:"icon"`
	// Events during which the monster spawns.
	Events []string `json:"events"`
	// Family of the monster.
	Family string `json:"family"`
	// Rarity of the monster.
	Rarity string `json:"rarity"`
	// Tier of the monster.
	Tier int `json:"tier"`
	// Tags attached to the monster.
	Tags []string `json:"tags"`
	// Abilities the monster uses.
	Abilities []Ref `json:"abilities"`
	// Items the monster drops.
	Drops []Ref `json:"drops"`
}

// URI returns the codex URI of the monster.
func (m *Monster) URI() string { return KindMonsters.URI(m.Slug) }

// Boss is a boss on the codex.
type Boss struct {
	// Slug of the boss (`/codex/bosses/{slug}/`).
	Slug string `json:"slug"`
	// Name of the boss.
	Name string `json:"name"`
	// Icon path of the boss.
	Icon string `json:"icon"`
	// Events during which the boss spawns.
	Events []string `json:"events"`
	// Family of the boss.
	Family string `json:"family"`
	// Rarity of the boss.
	Rarity string `json:"rarity"`
	// Tier of the boss.
	Tier int `json:"tier"`
	// Tags attached to the boss.
	Tags []string `json:"tags"`
	// Abilities the boss uses.
	Abilities []Ref `json:"abilities"`
	// Items the boss drops.
	Drops []Ref `json:"drops"`
}

// URI returns the codex URI of the boss.
func (b *Boss) URI() string { return KindBosses.URI(b.Slug) }

// Raid is a raid encounter on the codex.
type Raid struct {
	// Slug of the raid (`/codex/raids/{slug}/`).
	Slug string `json:"slug"`
	// Name of the raid.
	Name string `json:"name"`
	// Icon path of the raid.
	Icon string `json:"icon"`
	// In-game description.
	Description string `json:"description"`
	// Events during which the raid spawns.
	Events []string `json:"events"`
	// Tier of the raid.
	Tier int `json:"tier"`
	// Tags attached to the raid ("World Raid", "Kingdom Raid", ...).
	Tags []string `json:"tags"`
	// Abilities the raid uses.
	Abilities []Ref `json:"abilities"`
	// Items the raid drops.
	Drops []Ref `json:"drops"`
}

// URI returns the codex URI of the raid.
func (r *Raid) URI() string { return KindRaids.URI(r.Slug) }

// Skill is a skill ("spell") on the codex.
type Skill struct {
	// Slug of the skill (`/codex/spells/{slug}/`).
	Slug string `json:"slug"`
	// Name of the skill.
	Name string `json:"name"`
	// Icon path of the skill.
	Icon string `json:"icon"`
	// In-game description.
	Description string `json:"description"`
	// Tier of the skill.
	Tier int `json:"tier"`
	// Tags attached to the skill.
	Tags []string `json:"tags"`
	// Status effects the skill causes to the target.
	Causes []SkillEffect `json:"causes"`
	// Status effects the skill gives to the caster.
	Gives []SkillEffect `json:"gives"`
}

// URI returns the codex URI of the skill.
func (s *Skill) URI() string { return KindSkills.URI(s.Slug) }

// Skill tags the matcher cares about.
const (
	TagOffHandAbility   = "Off-hand ability"
	TagFoundInArcanists = "Found in Arcanists"
	TagFoundInShops     = "Found in shops"
)

// IsOffhand reports whether the skill is an off-hand ability. Off-hand
// skills have a guide entry distinct from their regular counterpart.
func (s *Skill) IsOffhand() bool { return s.hasTag(TagOffHandAbility) }

// BoughtAtArcanist reports whether the skill can be bought at the arcanist.
func (s *Skill) BoughtAtArcanist() bool { return s.hasTag(TagFoundInArcanists) }

func (s *Skill) hasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Follower is a follower (guide-side "pet") on the codex.
type Follower struct {
	// Slug of the follower (`/codex/followers/{slug}/`).
	Slug string `json:"slug"`
	// Name of the follower.
	Name string `json:"name"`
	// Icon path of the follower.
	Icon string `json:"icon"`
	// In-game description.
	Description string `json:"description"`
	// Events during which the follower is available.
	Events []string `json:"events"`
	// Rarity of the follower.
	Rarity string `json:"rarity"`
	// Tier of the follower.
	Tier int `json:"tier"`
	// Abilities of the follower.
	Abilities []Ref `json:"abilities"`
}

// URI returns the codex URI of the follower.
func (f *Follower) URI() string { return KindFollowers.URI(f.Slug) }
