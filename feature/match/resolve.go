package match

import (
	"fmt"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
)

// PartialResolutionError reports a reference list that only partly
// resolved to guide ids. IDs holds the successful resolutions in input
// order; Failed holds the keys that found no target. Callers may
// downgrade to a warning and keep working with IDs.
type PartialResolutionError struct {
	// IDs are the successfully resolved guide ids, in input order.
	IDs []uint32
	// Failed are the URIs or names that did not resolve.
	Failed []string
}

func (e *PartialResolutionError) Error() string {
	return fmt.Sprintf("%d of %d references did not resolve: %v",
		len(e.Failed), len(e.IDs)+len(e.Failed), e.Failed)
}

// resolveKeys maps each key through lookup, collecting successes in
// input order. When any key fails the successes are still returned,
// alongside a PartialResolutionError naming the failures.
func resolveKeys(keys []string, lookup func(string) (uint32, bool)) ([]uint32, error) {
	var ids []uint32
	var failed []string
	for _, key := range keys {
		if id, ok := lookup(key); ok {
			ids = append(ids, id)
		} else {
			failed = append(failed, key)
		}
	}
	if len(failed) > 0 {
		return ids, &PartialResolutionError{IDs: ids, Failed: failed}
	}
	return ids, nil
}

// ResolveAbilityIDs converts codex ability references to guide skill ids.
func ResolveAbilityIDs(refs []codex.Ref, skills *guide.Skills) ([]uint32, error) {
	return resolveKeys(refURIs(refs), func(uri string) (uint32, bool) {
		skill, err := skills.GetByURI(uri)
		if err != nil {
			return 0, false
		}
		return skill.ID, true
	})
}

// ResolveDroppedByIDs converts codex dropped-by references to guide
// monster ids.
func ResolveDroppedByIDs(refs []codex.Ref, monsters *guide.Monsters) ([]uint32, error) {
	return resolveKeys(refURIs(refs), func(uri string) (uint32, bool) {
		monster, err := monsters.GetByURI(uri)
		if err != nil {
			return 0, false
		}
		return monster.ID, true
	})
}

// ResolveMaterialIDs converts codex upgrade material references to
// guide item ids.
func ResolveMaterialIDs(refs []codex.Ref, items *guide.Items) ([]uint32, error) {
	return resolveKeys(refURIs(refs), func(uri string) (uint32, bool) {
		item, err := items.GetByURI(uri)
		if err != nil {
			return 0, false
		}
		return item.ID, true
	})
}

// ResolveEffectIDs converts codex status effect names to guide status
// effect ids, translating through the rename table first.
func ResolveEffectIDs(names []string, static *guide.Static) ([]uint32, error) {
	return resolveKeys(names, func(name string) (uint32, bool) {
		effect := static.FindStatusEffectByName(EffectNameToGuide(name))
		if effect == nil {
			return 0, false
		}
		return effect.ID, true
	})
}

func refURIs(refs []codex.Ref) []string {
	uris := make([]string, len(refs))
	for i, ref := range refs {
		uris[i] = ref.URI
	}
	return uris
}

// effectRefNames extracts the effect names of an item effect list.
func effectRefNames(effects []codex.EffectRef) []string {
	names := make([]string, len(effects))
	for i, effect := range effects {
		names[i] = effect.Name
	}
	return names
}

// skillEffectNames extracts the effect names of a skill effect list.
func skillEffectNames(effects []codex.SkillEffect) []string {
	names := make([]string, len(effects))
	for i, effect := range effects {
		names[i] = effect.Effect
	}
	return names
}
