package snapshot

import "ornasync/feature/codex"

// Translate returns a deep copy of the snapshot with codex names and
// descriptions replaced by the given locale's strings where a
// translation exists. Guide data is never translated; the admin panel
// only speaks the base locale, so it is carried over as a plain copy.
// The receiver is left untouched.
func (s *Snapshot) Translate(strs LocaleStrings) *Snapshot {
	out := &Snapshot{Guide: s.Guide.Clone()}
	out.Codex.Items.Items = make([]codex.Item, len(s.Codex.Items.Items))
	for i, item := range s.Codex.Items.Items {
		copied := item
		copied.Causes = append([]codex.EffectRef(nil), item.Causes...)
		copied.Cures = append([]codex.EffectRef(nil), item.Cures...)
		copied.Gives = append([]codex.EffectRef(nil), item.Gives...)
		copied.Immunities = append([]codex.EffectRef(nil), item.Immunities...)
		copied.DroppedBy = append([]codex.Ref(nil), item.DroppedBy...)
		copied.UpgradeMaterials = append([]codex.Ref(nil), item.UpgradeMaterials...)
		if entry, ok := strs[item.Slug]; ok {
			copied.Name = entry.Name
			if entry.Description != "" {
				copied.Description = entry.Description
			}
		}
		translateEffects(copied.Causes, strs)
		translateEffects(copied.Cures, strs)
		translateEffects(copied.Gives, strs)
		translateEffects(copied.Immunities, strs)
		out.Codex.Items.Items[i] = copied
	}
	out.Codex.Monsters.Monsters = make([]codex.Monster, len(s.Codex.Monsters.Monsters))
	for i, monster := range s.Codex.Monsters.Monsters {
		copied := monster
		copied.Abilities = append([]codex.Ref(nil), monster.Abilities...)
		copied.Drops = append([]codex.Ref(nil), monster.Drops...)
		if entry, ok := strs[monster.Slug]; ok {
			copied.Name = entry.Name
		}
		out.Codex.Monsters.Monsters[i] = copied
	}
	out.Codex.Bosses.Bosses = make([]codex.Boss, len(s.Codex.Bosses.Bosses))
	for i, boss := range s.Codex.Bosses.Bosses {
		copied := boss
		copied.Abilities = append([]codex.Ref(nil), boss.Abilities...)
		copied.Drops = append([]codex.Ref(nil), boss.Drops...)
		if entry, ok := strs[boss.Slug]; ok {
			copied.Name = entry.Name
		}
		out.Codex.Bosses.Bosses[i] = copied
	}
	out.Codex.Raids.Raids = make([]codex.Raid, len(s.Codex.Raids.Raids))
	for i, raid := range s.Codex.Raids.Raids {
		copied := raid
		copied.Abilities = append([]codex.Ref(nil), raid.Abilities...)
		copied.Drops = append([]codex.Ref(nil), raid.Drops...)
		if entry, ok := strs[raid.Slug]; ok {
			copied.Name = entry.Name
			if entry.Description != "" {
				copied.Description = entry.Description
			}
		}
		out.Codex.Raids.Raids[i] = copied
	}
	out.Codex.Skills.Skills = make([]codex.Skill, len(s.Codex.Skills.Skills))
	for i, skill := range s.Codex.Skills.Skills {
		copied := skill
		copied.Causes = append([]codex.SkillEffect(nil), skill.Causes...)
		copied.Gives = append([]codex.SkillEffect(nil), skill.Gives...)
		if entry, ok := strs[skill.Slug]; ok {
			copied.Name = entry.Name
			if entry.Description != "" {
				copied.Description = entry.Description
			}
		}
		out.Codex.Skills.Skills[i] = copied
	}
	out.Codex.Followers.Followers = make([]codex.Follower, len(s.Codex.Followers.Followers))
	for i, follower := range s.Codex.Followers.Followers {
		copied := follower
		copied.Abilities = append([]codex.Ref(nil), follower.Abilities...)
		if entry, ok := strs[follower.Slug]; ok {
			copied.Name = entry.Name
			if entry.Description != "" {
				copied.Description = entry.Description
			}
		}
		out.Codex.Followers.Followers[i] = copied
	}
	return out
}

// translateEffects rewrites effect names in place. Effects are keyed in
// locale files by their base-locale name rather than a slug, since the
// codex never links status effects.
func translateEffects(effects []codex.EffectRef, strs LocaleStrings) {
	for i := range effects {
		if entry, ok := strs[effects[i].Name]; ok {
			effects[i].Name = entry.Name
		}
	}
}
