package snapshot

import (
	"ornasync/core/reconcile"
	"ornasync/feature/codex"
)

// Source names used in coverage results.
const (
	SourceCodex        = "codex"
	SourceGuide        = "guide"
	SourceTranslations = "translations"
)

// Coverage reconciles entity presence per codex kind across the codex
// snapshot, the guide snapshot and the given locale strings. Guide entities
// without a codex URI never show up; they have no shared key to join on.
func (s *Snapshot) Coverage(strs LocaleStrings) map[codex.Kind][]reconcile.Result {
	guideKeys := map[codex.Kind]map[string]string{
		codex.KindItems:     {},
		codex.KindMonsters:  {},
		codex.KindBosses:    {},
		codex.KindRaids:     {},
		codex.KindSkills:    {},
		codex.KindFollowers: {},
	}
	for _, item := range s.Guide.Items.Items {
		addGuideKey(guideKeys, codex.KindItems, item.CodexURI, item.Name)
	}
	for _, monster := range s.Guide.Monsters.Monsters {
		// The guide stores monsters, bosses and raids in one table; the
		// URI's kind segment decides which codex family it joins.
		addGuideKey(guideKeys, codex.KindMonsters, monster.CodexURI, monster.Name)
		addGuideKey(guideKeys, codex.KindBosses, monster.CodexURI, monster.Name)
		addGuideKey(guideKeys, codex.KindRaids, monster.CodexURI, monster.Name)
	}
	for _, skill := range s.Guide.Skills.Skills {
		addGuideKey(guideKeys, codex.KindSkills, skill.CodexURI, skill.Name)
	}
	for _, pet := range s.Guide.Pets.Pets {
		addGuideKey(guideKeys, codex.KindFollowers, pet.CodexURI, pet.Name)
	}

	codexKeys := map[codex.Kind]map[string]string{
		codex.KindItems:     {},
		codex.KindMonsters:  {},
		codex.KindBosses:    {},
		codex.KindRaids:     {},
		codex.KindSkills:    {},
		codex.KindFollowers: {},
	}
	for _, item := range s.Codex.Items.Items {
		codexKeys[codex.KindItems][item.Slug] = item.Name
	}
	for _, monster := range s.Codex.Monsters.Monsters {
		codexKeys[codex.KindMonsters][monster.Slug] = monster.Name
	}
	for _, boss := range s.Codex.Bosses.Bosses {
		codexKeys[codex.KindBosses][boss.Slug] = boss.Name
	}
	for _, raid := range s.Codex.Raids.Raids {
		codexKeys[codex.KindRaids][raid.Slug] = raid.Name
	}
	for _, skill := range s.Codex.Skills.Skills {
		codexKeys[codex.KindSkills][skill.Slug] = skill.Name
	}
	for _, follower := range s.Codex.Followers.Followers {
		codexKeys[codex.KindFollowers][follower.Slug] = follower.Name
	}

	out := make(map[codex.Kind][]reconcile.Result, len(codexKeys))
	for kind, keys := range codexKeys {
		// Translations only join on slugs this kind actually knows,
		// otherwise every translated slug would leak into every kind.
		translated := make(map[string]string)
		for slug := range keys {
			if _, ok := strs[slug]; ok {
				translated[slug] = ""
			}
		}
		for slug := range guideKeys[kind] {
			if _, ok := strs[slug]; ok {
				translated[slug] = ""
			}
		}
		out[kind] = reconcile.Union(
			reconcile.Source{Name: SourceCodex, Keys: keys},
			reconcile.Source{Name: SourceGuide, Keys: guideKeys[kind]},
			reconcile.Source{Name: SourceTranslations, Keys: translated},
		)
	}
	return out
}

func addGuideKey(keys map[codex.Kind]map[string]string, kind codex.Kind, uri, name string) {
	if slug, ok := codex.SlugFromURI(kind, uri); ok {
		keys[kind][slug] = name
	}
}
