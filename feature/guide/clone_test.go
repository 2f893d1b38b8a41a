package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataClone(t *testing.T) {
	element := uint32(3)
	data := Data{
		Items: Items{Items: []Item{
			{ID: 1, Name: "Flame Sword", Element: &element, Causes: []uint32{10}},
		}},
		Monsters: Monsters{Monsters: []Monster{
			{ID: 2, Name: "Dire Wolf", Spawns: []uint32{1}},
		}},
		Skills: Skills{Skills: []Skill{
			{ID: 3, Name: "Firebolt", Causes: []uint32{10}},
		}},
		Pets: Pets{Pets: []Pet{
			{ID: 4, Name: "Cerus", Skills: []uint32{3}},
		}},
		Static: Static{Spawns: []NamedID{{ID: 1, Name: "Overworld"}}},
	}

	clone := data.Clone()
	assert.Equal(t, data, clone)

	clone.Items.Items[0].Causes[0] = 99
	*clone.Items.Items[0].Element = 99
	clone.Monsters.Monsters[0].Spawns[0] = 99
	clone.Static.Spawns[0].Name = "Elsewhere"

	assert.Equal(t, uint32(10), data.Items.Items[0].Causes[0])
	assert.Equal(t, uint32(3), *data.Items.Items[0].Element)
	assert.Equal(t, uint32(1), data.Monsters.Monsters[0].Spawns[0])
	assert.Equal(t, "Overworld", data.Static.Spawns[0].Name)
}

func TestDataCloneKeepsNilSlices(t *testing.T) {
	var data Data
	clone := data.Clone()
	assert.Nil(t, clone.Items.Items)
	assert.Nil(t, clone.Static.Spawns)
}
