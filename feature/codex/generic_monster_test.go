package codex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllMonstersOrder(t *testing.T) {
	data := Data{
		Monsters: Monsters{Monsters: []Monster{{Slug: "wolf", Name: "Wolf"}}},
		Bosses:   Bosses{Bosses: []Boss{{Slug: "ogre-king", Name: "Ogre King"}}},
		Raids:    Raids{Raids: []Raid{{Slug: "great-dragon", Name: "Great Dragon"}}},
	}

	all := data.AllMonsters()
	require.Len(t, all, 3)
	assert.Equal(t, "Monster", all[0].KindLabel())
	assert.Equal(t, "Boss", all[1].KindLabel())
	assert.Equal(t, "Raid", all[2].KindLabel())
	assert.Equal(t, "/codex/monsters/wolf/", all[0].URI())
	assert.Equal(t, "/codex/bosses/ogre-king/", all[1].URI())
	assert.Equal(t, "/codex/raids/great-dragon/", all[2].URI())
}

func TestGenericMonsterFamily(t *testing.T) {
	monster := GenericMonster{Monster: &Monster{Family: "Wolf"}}
	assert.Equal(t, "Wolf", monster.Family())

	raid := GenericMonster{Raid: &Raid{Name: "Great Dragon"}}
	assert.Empty(t, raid.Family(), "raids carry no family on the codex")
}

func TestTagsAsGuideSpawns(t *testing.T) {
	raid := GenericMonster{Raid: &Raid{
		Tags: []string{"World Raid", "Rare", "Kingdom Raid"},
	}}
	assert.Equal(t, []string{"World Raid", "Kingdom Raid"}, raid.TagsAsGuideSpawns())

	monster := GenericMonster{Monster: &Monster{Tags: []string{"Rare"}}}
	assert.Empty(t, monster.TagsAsGuideSpawns())
}

func TestGetGenericByURI(t *testing.T) {
	data := Data{
		Monsters: Monsters{Monsters: []Monster{{Slug: "wolf"}}},
		Raids:    Raids{Raids: []Raid{{Slug: "great-dragon"}}},
	}

	found, err := data.GetGenericByURI("/codex/raids/great-dragon/")
	require.NoError(t, err)
	assert.NotNil(t, found.Raid)

	_, err = data.GetGenericByURI("/codex/bosses/nobody/")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSkillTags(t *testing.T) {
	skill := Skill{Tags: []string{TagOffHandAbility, TagFoundInArcanists}}
	assert.True(t, skill.IsOffhand())
	assert.True(t, skill.BoughtAtArcanist())

	var plain Skill
	assert.False(t, plain.IsOffhand())
}
