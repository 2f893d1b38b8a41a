package guide

// Item is an item as stored by the guide's admin panel.
type Item struct {
	// ID of the item on the guide.
	ID uint32 `json:"id"`
	// CodexURI is the URI of the item on the codex, `/codex/items/{slug}/`.
	// Empty when the item has no codex counterpart.
	CodexURI string `json:"codex_uri"`
	// Name of the item on the guide.
	Name string `json:"name"`
	// Tier of the item.
	Tier int `json:"tier"`
	// Type is the id of the item type (Weapon, Head, Material, ...).
	Type uint32 `json:"type"`
	// ImageName is the path to the item's image.
	ImageName string `json:"image_name"`
	// Description is the in-game description.
	Description string `json:"description"`
	// Notes are handwritten notes from the guide team.
	Notes string `json:"notes"`
	// Combat stats granted by the item when equipped.
	HP         int `json:"hp"`
	Mana       int `json:"mana"`
	Attack     int `json:"attack"`
	Magic      int `json:"magic"`
	Defense    int `json:"defense"`
	Resistance int `json:"resistance"`
	Dexterity  int `json:"dexterity"`
	Ward       int `json:"ward"`
	Crit       int `json:"crit"`
	Foresight  int `json:"foresight"`
	// BaseAdornmentSlots is the number of adornment slots at base quality.
	BaseAdornmentSlots int `json:"base_adornment_slots"`
	// HasSlots mirrors BaseAdornmentSlots != 0 on the admin form.
	HasSlots bool `json:"has_slots"`
	// Element is the id of the item's element, if any.
	Element *uint32 `json:"element"`
	// Ability is the id of the skill the item grants, if any.
	Ability *uint32 `json:"ability"`
	// Causes are ids of status effects the item can inflict.
	Causes []uint32 `json:"causes"`
	// Cures are ids of status effects the item cures.
	Cures []uint32 `json:"cures"`
	// Gives are ids of status effects the item gives to its wearer.
	Gives []uint32 `json:"gives"`
	// Prevents are ids of status effects the item grants immunity to.
	Prevents []uint32 `json:"prevents"`
	// Materials are ids of items required to upgrade this one.
	Materials []uint32 `json:"materials"`
}

// Monster is a monster as stored by the guide's admin panel. The guide keeps
// regular monsters, bosses and raids in the same table.
type Monster struct {
	// ID of the monster on the guide.
	ID uint32 `json:"id"`
	// CodexURI is the URI of the monster on the codex. The kind segment is
	// `monsters`, `bosses` or `raids`. Empty when unmatched.
	CodexURI string `json:"codex_uri"`
	// Name of the monster on the guide.
	Name string `json:"name"`
	// Tier of the monster.
	Tier int `json:"tier"`
	// Family is the id of the monster family, if any.
	Family *uint32 `json:"family"`
	// ImageName is the path to the monster's image.
	ImageName string `json:"image_name"`
	// Boss is whether the monster is a boss (world and kingdom raids included).
	Boss bool `json:"boss"`
	// HP of the monster; set for raids and bosses.
	HP uint32 `json:"hp"`
	// Level at which the monster is encountered; set for raids and bosses.
	Level uint32 `json:"level"`
	// Notes are handwritten notes from the guide team.
	Notes string `json:"notes"`
	// Spawns are ids of where the monster spawns.
	Spawns []uint32 `json:"spawns"`
	// WeakTo are ids of elements the monster is weak to.
	WeakTo []uint32 `json:"weak_to"`
	// ResistantTo are ids of elements the monster resists.
	ResistantTo []uint32 `json:"resistant_to"`
	// ImmuneTo are ids of elements the monster is immune to.
	ImmuneTo []uint32 `json:"immune_to"`
	// ImmuneToStatus are ids of statuses the monster is immune to.
	ImmuneToStatus []uint32 `json:"immune_to_status"`
	// Drops are ids of items the monster drops.
	Drops []uint32 `json:"drops"`
	// Skills are ids of skills the monster uses.
	Skills []uint32 `json:"skills"`
}

// Skill is a skill as stored by the guide's admin panel.
type Skill struct {
	// ID of the skill on the guide.
	ID uint32 `json:"id"`
	// CodexURI is the URI of the skill on the codex, `/codex/spells/{slug}/`.
	// Empty when unmatched; passive skills have no codex page.
	CodexURI string `json:"codex_uri"`
	// Name of the skill on the guide.
	Name string `json:"name"`
	// Tier of the skill.
	Tier int `json:"tier"`
	// Type is the id of the skill type (Buff, Attack, Passive, ...).
	Type uint32 `json:"type"`
	// IsMagic is whether the skill scales with magic.
	IsMagic bool `json:"is_magic"`
	// ManaCost of the skill.
	ManaCost uint32 `json:"mana_cost"`
	// Description is the in-game description.
	Description string `json:"description"`
	// Element is the id of the skill's element, if any.
	Element *uint32 `json:"element"`
	// Offhand is whether the skill is an off-hand ability. Off-hand skills
	// have their own entry, distinct from the regular one.
	Offhand bool `json:"offhand"`
	// Cost is the gold cost at the arcanist, if buyable.
	Cost uint64 `json:"cost"`
	// Bought is whether the skill can be bought at an arcanist.
	Bought bool `json:"bought"`
	// Causes are ids of status effects the skill inflicts on the target.
	Causes []uint32 `json:"causes"`
	// Gives are ids of status effects the skill gives to the caster.
	Gives []uint32 `json:"gives"`
}

// Pet is a pet (codex-side "follower") as stored by the guide's admin panel.
type Pet struct {
	// ID of the pet on the guide.
	ID uint32 `json:"id"`
	// CodexURI is the URI of the follower on the codex,
	// `/codex/followers/{slug}/`. Empty when unmatched.
	CodexURI string `json:"codex_uri"`
	// Name of the pet on the guide.
	Name string `json:"name"`
	// Tier of the pet.
	Tier int `json:"tier"`
	// ImageName is the path to the pet's image.
	ImageName string `json:"image_name"`
	// Description is the in-game description.
	Description string `json:"description"`
	// Events are ids of the events the pet is tied to, if limited.
	Events []uint32 `json:"events"`
	// Limited is whether the pet is tied to an event.
	Limited bool `json:"limited"`
	// LimitedDetails is a handwritten availability note.
	LimitedDetails string `json:"limited_details"`
	// Skills are ids of skills the pet knows.
	Skills []uint32 `json:"skills"`
}
