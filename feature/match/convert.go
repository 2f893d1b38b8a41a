package match

import (
	"ornasync/feature/codex"
	"ornasync/feature/guide"
)

// newItemFromCodex builds the initial guide form of a codex item that
// is missing on the guide. Reference lists are filled best effort; the
// field checks of the same pass repair whatever could not resolve yet.
func newItemFromCodex(item *codex.Item, static *guide.Static) *guide.Item {
	created := &guide.Item{
		CodexURI:    item.URI(),
		Name:        item.Name,
		Tier:        item.Tier,
		ImageName:   item.Icon,
		Description: orDot(item.Description),
	}
	if stats := item.Stats; stats != nil {
		created.Attack = statOrZero(stats, func(s *codex.Stats) *int { return s.Attack })
		created.Magic = statOrZero(stats, func(s *codex.Stats) *int { return s.Magic })
		created.HP = statOrZero(stats, func(s *codex.Stats) *int { return s.HP })
		created.Mana = statOrZero(stats, func(s *codex.Stats) *int { return s.Mana })
		created.Defense = statOrZero(stats, func(s *codex.Stats) *int { return s.Defense })
		created.Resistance = statOrZero(stats, func(s *codex.Stats) *int { return s.Resistance })
		created.Dexterity = statOrZero(stats, func(s *codex.Stats) *int { return s.Dexterity })
		created.Ward = statOrZero(stats, func(s *codex.Stats) *int { return s.Ward })
		created.Crit = statOrZero(stats, func(s *codex.Stats) *int { return s.Crit })
		created.Foresight = statOrZero(stats, func(s *codex.Stats) *int { return s.Foresight })
		created.BaseAdornmentSlots = statOrZero(stats, func(s *codex.Stats) *int { return s.AdornmentSlots })
		created.HasSlots = created.BaseAdornmentSlots != 0
		if stats.Element != nil {
			if element := static.FindElementByName(*stats.Element); element != nil {
				id := element.ID
				created.Element = &id
			}
		}
	}
	created.Causes, _ = ResolveEffectIDs(effectRefNames(item.Causes), static)
	created.Cures, _ = ResolveEffectIDs(effectRefNames(item.Cures), static)
	created.Gives, _ = ResolveEffectIDs(effectRefNames(item.Gives), static)
	created.Prevents, _ = ResolveEffectIDs(effectRefNames(item.Immunities), static)
	return created
}

// newSkillFromCodex builds the initial guide form of a codex skill that
// is missing on the guide.
func newSkillFromCodex(skill *codex.Skill, static *guide.Static) *guide.Skill {
	created := &guide.Skill{
		CodexURI:    skill.URI(),
		Name:        skill.Name,
		Tier:        skill.Tier,
		Description: orDot(skill.Description),
		Offhand:     skill.IsOffhand(),
		Bought:      skill.BoughtAtArcanist(),
	}
	created.Causes, _ = ResolveEffectIDs(skillEffectNames(skill.Causes), static)
	created.Gives, _ = ResolveEffectIDs(skillEffectNames(skill.Gives), static)
	return created
}

// orDot substitutes the guide's placeholder for an empty description.
// The admin form rejects empty description fields.
func orDot(description string) string {
	if description == "" {
		return "."
	}
	return description
}
