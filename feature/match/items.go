package match

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// elementStatuses maps a weapon's element to the status afflictions the
// game lets it inflict. The codex does not list these on the item page,
// so the expected causes list is augmented before comparison.
var elementStatuses = map[string][]string{
	"Fire":      {"Burning"},
	"Water":     {"Frozen"},
	"Earthen":   {"Rot"},
	"Lightning": {"Paralyzed"},
	"Holy":      {"Blind"},
	"Dark":      {"Asleep"},
	"Arcane":    {"Burning", "Frozen", "Rot", "Paralyzed"},
	"Dragon":    {"Blight"},
}

// MatchItems reconciles guide items against codex items: reports
// entities present on one side only, then checks every reconcilable
// field of each matched pair.
func MatchItems(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	if err := listMissingItems(ctx, snap, fix, admin, rep); err != nil {
		return err
	}
	return checkItems(ctx, snap, fix, admin, rep)
}

// listMissingItems reports codex items absent from the guide and guide
// items whose codex_uri resolves to nothing. Fix mode creates the
// missing guide items and folds the created entries back into the
// snapshot so later matchers can resolve them.
func listMissingItems(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	var missing []*codex.Item
	for i := range snap.Codex.Items.Items {
		item := &snap.Codex.Items.Items[i]
		_, err := snap.Guide.Items.GetBySlug(item.Slug)
		var notFound *guide.NotFoundError
		switch {
		case err == nil:
		case errors.As(err, &notFound):
			rep.MissingOnGuide("items", item.Name, item.URI())
			missing = append(missing, item)
		default:
			return err
		}
	}
	for i := range snap.Guide.Items.Items {
		item := &snap.Guide.Items.Items[i]
		if item.CodexURI == "" {
			continue
		}
		if _, err := snap.Codex.Items.GetByURI(item.CodexURI); err != nil {
			rep.NotOnCodex("items", item.Name, item.ID)
		}
	}
	if !fix || len(missing) == 0 {
		return nil
	}

	for _, item := range missing {
		created := newItemFromCodex(item, &snap.Guide.Static)
		if err := admin.AddItem(ctx, created); err != nil {
			return fmt.Errorf("failed to add item %q: %w", item.Name, err)
		}
	}
	// The guide assigns ids, so re-list and fetch the entries we did
	// not know of before.
	entries, err := guide.RetryOnce(func() ([]guide.Entry, error) { return admin.ListItems(ctx) })
	if err != nil {
		return fmt.Errorf("failed to re-list items: %w", err)
	}
	for _, entry := range entries {
		if snap.Guide.Items.FindByID(entry.ID) != nil {
			continue
		}
		item, err := guide.RetryOnce(func() (*guide.Item, error) { return admin.FetchItem(ctx, entry.ID) })
		if err != nil {
			return fmt.Errorf("failed to fetch new item #%d: %w", entry.ID, err)
		}
		snap.Guide.Items.Items = append(snap.Guide.Items.Items, *item)
	}
	return nil
}

func checkItems(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	codexItems := make([]*codex.Item, 0, len(snap.Codex.Items.Items))
	for i := range snap.Codex.Items.Items {
		codexItems = append(codexItems, &snap.Codex.Items.Items[i])
	}
	sort.Slice(codexItems, func(i, j int) bool { return codexItems[i].Slug < codexItems[j].Slug })

	for _, codexItem := range codexItems {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		guideItem, err := snap.Guide.Items.GetBySlug(codexItem.Slug)
		var notFound *guide.NotFoundError
		if errors.As(err, &notFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := checkItem(ctx, snap, fix, admin, rep, codexItem, guideItem); err != nil {
			var ambiguous *guide.AmbiguousMatchError
			if errors.As(err, &ambiguous) {
				return err
			}
			rep.FixFailed("items", guideItem.Name, guideItem.ID, err)
		}
	}
	return nil
}

func checkItem(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter, codexItem *codex.Item, guideItem *guide.Item) error {
	static := &snap.Guide.Static
	check := &Checker[guide.Item]{
		Kind:   "items",
		Name:   guideItem.Name,
		ID:     guideItem.ID,
		Fix:    fix,
		Fetch:  admin.FetchItem,
		Save:   admin.SaveItem,
		Report: rep,
	}

	if _, err := CheckScalar(ctx, check, "icon", guideItem.ImageName, codexItem.Icon,
		func(item *guide.Item, icon string) { item.ImageName = icon }); err != nil {
		return err
	}
	if _, err := CheckScalar(ctx, check, "description", guideItem.Description, codexItem.Description,
		func(item *guide.Item, description string) { item.Description = description }); err != nil {
		return err
	}

	stats := codexItem.Stats
	scalars := []struct {
		field string
		guide int
		codex int
		set   func(*guide.Item, int)
	}{
		{"attack", guideItem.Attack, statOrZero(stats, func(s *codex.Stats) *int { return s.Attack }),
			func(item *guide.Item, v int) { item.Attack = v }},
		{"magic", guideItem.Magic, statOrZero(stats, func(s *codex.Stats) *int { return s.Magic }),
			func(item *guide.Item, v int) { item.Magic = v }},
		{"hp", guideItem.HP, statOrZero(stats, func(s *codex.Stats) *int { return s.HP }),
			func(item *guide.Item, v int) { item.HP = v }},
		{"mana", guideItem.Mana, statOrZero(stats, func(s *codex.Stats) *int { return s.Mana }),
			func(item *guide.Item, v int) { item.Mana = v }},
		{"defense", guideItem.Defense, statOrZero(stats, func(s *codex.Stats) *int { return s.Defense }),
			func(item *guide.Item, v int) { item.Defense = v }},
		{"resistance", guideItem.Resistance, statOrZero(stats, func(s *codex.Stats) *int { return s.Resistance }),
			func(item *guide.Item, v int) { item.Resistance = v }},
		{"ward", guideItem.Ward, statOrZero(stats, func(s *codex.Stats) *int { return s.Ward }),
			func(item *guide.Item, v int) { item.Ward = v }},
		{"dexterity", guideItem.Dexterity, statOrZero(stats, func(s *codex.Stats) *int { return s.Dexterity }),
			func(item *guide.Item, v int) { item.Dexterity = v }},
		{"crit", guideItem.Crit, statOrZero(stats, func(s *codex.Stats) *int { return s.Crit }),
			func(item *guide.Item, v int) { item.Crit = v }},
		{"foresight", guideItem.Foresight, statOrZero(stats, func(s *codex.Stats) *int { return s.Foresight }),
			func(item *guide.Item, v int) { item.Foresight = v }},
	}
	for _, s := range scalars {
		if _, err := CheckScalar(ctx, check, s.field, s.guide, s.codex, s.set); err != nil {
			return err
		}
	}

	// Adorn slots also drive the has_slots flag on the admin form.
	if _, err := CheckScalar(ctx, check, "adorn slots", guideItem.BaseAdornmentSlots,
		statOrZero(stats, func(s *codex.Stats) *int { return s.AdornmentSlots }),
		func(item *guide.Item, slots int) {
			item.BaseAdornmentSlots = slots
			item.HasSlots = slots != 0
		}); err != nil {
		return err
	}

	// Element is compared by name; the guide stores an id.
	guideElement := ""
	if guideItem.Element != nil {
		if element := static.FindElementByID(*guideItem.Element); element != nil {
			guideElement = element.Name
		}
	}
	codexElement := ""
	if stats != nil && stats.Element != nil {
		codexElement = *stats.Element
	}
	if _, err := CheckScalar(ctx, check, "element", guideElement, codexElement,
		func(item *guide.Item, name string) {
			if name == "" {
				item.Element = nil
			} else if element := static.FindElementByName(name); element != nil {
				id := element.ID
				item.Element = &id
			}
		}); err != nil {
		return err
	}

	// Ability is compared by sanitized name; fixes resolve through the
	// off-hand skill table since item abilities are off-hand entries.
	guideAbility := ""
	if guideItem.Ability != nil {
		if skill := snap.Guide.Skills.FindByID(*guideItem.Ability); skill != nil {
			guideAbility = guide.SanitizeName(skill.Name)
		}
	}
	codexAbility := ""
	if codexItem.Ability != nil {
		codexAbility = codexItem.Ability.Name
	}
	var codexAbilityID *uint32
	if codexAbility != "" && guideAbility != codexAbility {
		skill, err := snap.Guide.Skills.GetOffhandByName(codexAbility)
		var notFound *guide.NotFoundError
		switch {
		case err == nil:
			id := skill.ID
			codexAbilityID = &id
		case errors.As(err, &notFound):
		default:
			return err
		}
	}
	if _, err := CheckScalar(ctx, check, "ability", guideAbility, codexAbility,
		func(item *guide.Item, name string) {
			if name == "" {
				item.Ability = nil
			} else if codexAbilityID != nil {
				id := *codexAbilityID
				item.Ability = &id
			}
		}); err != nil {
		return err
	}

	// Causes carries the element-derived afflictions for weapons on top
	// of what the codex page lists.
	causeNames := effectRefNames(codexItem.Causes)
	if weapon := static.FindItemTypeByName("Weapon"); weapon != nil && guideItem.Type == weapon.ID {
		causeNames = append(causeNames, elementStatuses[codexElement]...)
	}
	effectLists := []struct {
		field string
		guide []uint32
		names []string
		list  func(*guide.Item) *[]uint32
	}{
		{"causes", guideItem.Causes, causeNames, func(item *guide.Item) *[]uint32 { return &item.Causes }},
		{"cures", guideItem.Cures, effectRefNames(codexItem.Cures), func(item *guide.Item) *[]uint32 { return &item.Cures }},
		{"gives", guideItem.Gives, effectRefNames(codexItem.Gives), func(item *guide.Item) *[]uint32 { return &item.Gives }},
		{"immunities", guideItem.Prevents, effectRefNames(codexItem.Immunities), func(item *guide.Item) *[]uint32 { return &item.Prevents }},
	}
	for _, ef := range effectLists {
		expected, err := ResolveEffectIDs(ef.names, static)
		var partial *PartialResolutionError
		if errors.As(err, &partial) {
			rep.PartialResolution("items", guideItem.Name, ef.field, partial)
		} else if err != nil {
			return err
		}
		if _, err := CheckIDList(ctx, check, ef.field,
			sortedUnique(ef.guide), sortedUnique(expected),
			statusName(static), ef.list); err != nil {
			return err
		}
	}

	if err := checkDroppedBy(ctx, snap, fix, admin, rep, codexItem, guideItem); err != nil {
		return err
	}

	expectedMaterials, err := ResolveMaterialIDs(codexItem.UpgradeMaterials, &snap.Guide.Items)
	var partial *PartialResolutionError
	if errors.As(err, &partial) {
		rep.PartialResolution("items", guideItem.Name, "upgrade materials", partial)
	} else if err != nil {
		return err
	}
	if _, err := CheckIDList(ctx, check, "upgrade materials",
		sortedUnique(guideItem.Materials), sortedUnique(expectedMaterials),
		itemName(&snap.Guide.Items), func(item *guide.Item) *[]uint32 { return &item.Materials }); err != nil {
		return err
	}
	return nil
}

// checkDroppedBy compares the monsters dropping an item. The guide
// stores drops on the monster side, so fixes write to monsters, not to
// the item itself.
func checkDroppedBy(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter, codexItem *codex.Item, guideItem *guide.Item) error {
	var guideDroppedBy []uint32
	for i := range snap.Guide.Monsters.Monsters {
		monster := &snap.Guide.Monsters.Monsters[i]
		if monster.CodexURI == "" {
			continue
		}
		for _, drop := range monster.Drops {
			if drop == guideItem.ID {
				guideDroppedBy = append(guideDroppedBy, monster.ID)
				break
			}
		}
	}
	guideDroppedBy = sortedUnique(guideDroppedBy)

	expected, err := ResolveDroppedByIDs(codexItem.DroppedBy, &snap.Guide.Monsters)
	var partial *PartialResolutionError
	if errors.As(err, &partial) {
		rep.PartialResolution("items", guideItem.Name, "dropped_by", partial)
	} else if err != nil {
		return err
	}
	expected = sortedUnique(expected)

	toAdd, toRemove := DiffSorted(expected, guideDroppedBy)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		return nil
	}
	m := rep.Field("items", guideItem.Name, guideItem.ID, "dropped_by",
		describeAll(guideDroppedBy, monsterName(&snap.Guide.Monsters)),
		describeAll(expected, monsterName(&snap.Guide.Monsters)))
	if !fix {
		return nil
	}
	mutate := func(monsterID uint32, alter func(*guide.Monster) bool) error {
		monster, err := guide.RetryOnce(func() (*guide.Monster, error) { return admin.FetchMonster(ctx, monsterID) })
		if err != nil {
			return fmt.Errorf("failed to fetch monster #%d: %w", monsterID, err)
		}
		// The snapshot may be stale; only save when the live monster
		// actually needs the change.
		if !alter(monster) {
			return nil
		}
		if err := admin.SaveMonster(ctx, monster); err != nil {
			return fmt.Errorf("failed to save monster #%d: %w", monsterID, err)
		}
		if _, err := guide.RetryOnce(func() (*guide.Monster, error) { return admin.FetchMonster(ctx, monsterID) }); err != nil {
			return fmt.Errorf("failed to confirm monster #%d: %w", monsterID, err)
		}
		return nil
	}
	for _, id := range toRemove {
		err := mutate(id, func(monster *guide.Monster) bool {
			before := len(monster.Drops)
			kept := monster.Drops[:0]
			for _, drop := range monster.Drops {
				if drop != guideItem.ID {
					kept = append(kept, drop)
				}
			}
			monster.Drops = kept
			return len(kept) != before
		})
		if err != nil {
			return err
		}
	}
	for _, id := range toAdd {
		err := mutate(id, func(monster *guide.Monster) bool {
			for _, drop := range monster.Drops {
				if drop == guideItem.ID {
					return false
				}
			}
			monster.Drops = append(monster.Drops, guideItem.ID)
			return true
		})
		if err != nil {
			return err
		}
	}
	m.Fixed = true
	return nil
}

func statOrZero(stats *codex.Stats, get func(*codex.Stats) *int) int {
	if stats == nil {
		return 0
	}
	if v := get(stats); v != nil {
		return *v
	}
	return 0
}

// statusName renders a status effect id for reports.
func statusName(static *guide.Static) func(uint32) string {
	return func(id uint32) string {
		if effect := static.FindStatusEffectByID(id); effect != nil {
			return effect.Name
		}
		return fmt.Sprintf("status #%d", id)
	}
}

// itemName renders a guide item id for reports.
func itemName(items *guide.Items) func(uint32) string {
	return func(id uint32) string {
		if item := items.FindByID(id); item != nil {
			return item.Name
		}
		return fmt.Sprintf("item #%d", id)
	}
}

// monsterName renders a guide monster id for reports.
func monsterName(monsters *guide.Monsters) func(uint32) string {
	return func(id uint32) string {
		if monster := monsters.FindByID(id); monster != nil {
			return monster.Name
		}
		return fmt.Sprintf("monster #%d", id)
	}
}

// skillName renders a guide skill id for reports.
func skillName(skills *guide.Skills) func(uint32) string {
	return func(id uint32) string {
		if skill := skills.FindByID(id); skill != nil {
			return skill.Name
		}
		return fmt.Sprintf("skill #%d", id)
	}
}
