package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsGetBySlug(t *testing.T) {
	items := Items{Items: []Item{
		{ID: 1, CodexURI: "/codex/items/iron-sword/", Name: "Iron Sword"},
		{ID: 2, Name: "Unmatched"},
	}}

	item, err := items.GetBySlug("iron-sword")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), item.ID)

	_, err = items.GetBySlug("unknown")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "items", notFound.Kind)
}

func TestItemsGetBySlugAmbiguous(t *testing.T) {
	// Nothing stops two admin entries from pointing at the same codex
	// page; picking one silently would fix the wrong entity.
	items := Items{Items: []Item{
		{ID: 1, CodexURI: "/codex/items/iron-sword/"},
		{ID: 2, CodexURI: "/codex/items/iron-sword/"},
	}}

	_, err := items.GetBySlug("iron-sword")
	var ambiguous *AmbiguousMatchError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []uint32{1, 2}, ambiguous.IDs)
	assert.Contains(t, ambiguous.Error(), "2 guide items")
}

func TestMonstersGetByKind(t *testing.T) {
	spawns := []NamedID{
		{ID: 1, Name: "Overworld"},
		{ID: 2, Name: "Kingdom Raid"},
	}
	monsters := Monsters{Monsters: []Monster{
		{ID: 10, CodexURI: "/codex/monsters/wolf/", Name: "Wolf"},
		{ID: 11, CodexURI: "/codex/bosses/ogre-king/", Name: "Ogre King", Boss: true, Spawns: []uint32{1}},
		{ID: 12, CodexURI: "/codex/raids/great-dragon/", Name: "Great Dragon", Boss: true, Spawns: []uint32{2}},
	}}

	monster, err := monsters.GetByMonsterSlug("wolf")
	require.NoError(t, err)
	assert.Equal(t, uint32(10), monster.ID)

	boss, err := monsters.GetByBossSlug("ogre-king", spawns)
	require.NoError(t, err)
	assert.Equal(t, uint32(11), boss.ID)

	raid, err := monsters.GetByRaidSlug("great-dragon", spawns)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), raid.ID)

	// A raid never matches a boss lookup, even with the right slug.
	_, err = monsters.GetByBossSlug("great-dragon", spawns)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSkillsGetOffhandByName(t *testing.T) {
	skills := Skills{Skills: []Skill{
		{ID: 1, Name: "Firebolt"},
		{ID: 2, Name: "Firebolt [off-hand]", Offhand: true},
	}}

	skill, err := skills.GetOffhandByName("Firebolt")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), skill.ID)

	_, err = skills.GetOffhandByName("Icebolt")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSkillsGetOffhandByNameAmbiguous(t *testing.T) {
	skills := Skills{Skills: []Skill{
		{ID: 2, Name: "Firebolt [off-hand]", Offhand: true},
		{ID: 5, Name: "Firebolt [offhand variant]", Offhand: true},
	}}

	_, err := skills.GetOffhandByName("Firebolt")
	var ambiguous *AmbiguousMatchError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []uint32{2, 5}, ambiguous.IDs)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Firebolt", SanitizeName("Firebolt [off-hand]"))
	assert.Equal(t, "Firebolt", SanitizeName("Firebolt"))
	assert.Equal(t, "[weird]", SanitizeName("[weird]"), "leading bracket is part of the name")
}
