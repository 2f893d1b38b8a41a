package match

import (
	"context"
	"fmt"
	"slices"

	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// MatchStatusEffects reconciles the guide's status effect enumeration
// against every effect name the codex mentions on items and skills.
// There is no per-effect field to compare; the only question is whether
// each side knows the other's names. Fix mode creates the missing guide
// effects and re-fetches the list to learn their assigned ids.
func MatchStatusEffects(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	codexEffects := collectCodexEffectNames(snap)

	var missing []string
	for _, name := range codexEffects {
		if snap.Guide.Static.FindStatusEffectByName(name) == nil {
			rep.MissingOnGuide("status-effects", name, "")
			missing = append(missing, name)
		}
	}
	for _, effect := range snap.Guide.Static.StatusEffects {
		if !slices.Contains(codexEffects, effect.Name) {
			rep.NotOnCodex("status-effects", effect.Name, effect.ID)
		}
	}
	if !fix || len(missing) == 0 {
		return nil
	}

	for _, name := range missing {
		if err := admin.AddStatusEffect(ctx, name); err != nil {
			return fmt.Errorf("failed to add status effect %q: %w", name, err)
		}
	}
	// Ids are assigned by the guide; refresh the list so later matchers
	// in the same run can resolve the new effects.
	effects, err := guide.RetryOnce(func() ([]guide.NamedID, error) { return admin.ListStatusEffects(ctx) })
	if err != nil {
		return fmt.Errorf("failed to re-list status effects: %w", err)
	}
	snap.Guide.Static.StatusEffects = effects
	return nil
}

// collectCodexEffectNames gathers every status effect name the codex
// uses, translated to guide names, sorted and deduplicated.
func collectCodexEffectNames(snap *snapshot.Snapshot) []string {
	var names []string
	for i := range snap.Codex.Items.Items {
		item := &snap.Codex.Items.Items[i]
		names = append(names, effectRefNames(item.Causes)...)
		names = append(names, effectRefNames(item.Cures)...)
		names = append(names, effectRefNames(item.Gives)...)
		names = append(names, effectRefNames(item.Immunities)...)
	}
	for i := range snap.Codex.Skills.Skills {
		skill := &snap.Codex.Skills.Skills[i]
		names = append(names, skillEffectNames(skill.Causes)...)
		names = append(names, skillEffectNames(skill.Gives)...)
	}
	for i, name := range names {
		names[i] = EffectNameToGuide(name)
	}
	return sortedUnique(names)
}
