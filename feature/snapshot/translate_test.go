package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
)

func TestTranslate(t *testing.T) {
	snap := &Snapshot{}
	snap.Codex.Items.Items = []codex.Item{
		{
			Slug:        "aquatic-blade",
			Name:        "Aquatic Blade",
			Description: "A blade.",
			Causes:      []codex.EffectRef{{Name: "Frozen"}},
		},
		{Slug: "ghost-arrow", Name: "Ghost Arrow"},
	}
	snap.Codex.Skills.Skills = []codex.Skill{
		{Slug: "zap", Name: "Zap", Description: "Zaps."},
	}

	strs := LocaleStrings{
		"aquatic-blade": {Name: "Lame aquatique", Description: "Une lame."},
		"zap":           {Name: "Choc"},
		"Frozen":        {Name: "Gelé"},
	}

	translated := snap.Translate(strs)

	assert.Equal(t, "Lame aquatique", translated.Codex.Items.Items[0].Name)
	assert.Equal(t, "Une lame.", translated.Codex.Items.Items[0].Description)
	assert.Equal(t, "Gelé", translated.Codex.Items.Items[0].Causes[0].Name)

	// Untranslated entities keep their base strings.
	assert.Equal(t, "Ghost Arrow", translated.Codex.Items.Items[1].Name)

	// An empty description in the locale keeps the base description.
	assert.Equal(t, "Choc", translated.Codex.Skills.Skills[0].Name)
	assert.Equal(t, "Zaps.", translated.Codex.Skills.Skills[0].Description)

	// The receiver is untouched, including nested slices.
	assert.Equal(t, "Aquatic Blade", snap.Codex.Items.Items[0].Name)
	assert.Equal(t, "Frozen", snap.Codex.Items.Items[0].Causes[0].Name)
}

func TestTranslateGuideIsIndependent(t *testing.T) {
	snap := &Snapshot{}
	snap.Guide.Monsters.Monsters = []guide.Monster{
		{ID: 1, Name: "Dire Wolf", Spawns: []uint32{1, 2}},
	}
	snap.Guide.Static.Spawns = []guide.NamedID{{ID: 1, Name: "Overworld"}}

	translated := snap.Translate(LocaleStrings{})
	translated.Guide.Monsters.Monsters[0].Name = "Loup sinistre"
	translated.Guide.Monsters.Monsters[0].Spawns[0] = 9
	translated.Guide.Static.Spawns[0].Name = "Monde"

	assert.Equal(t, "Dire Wolf", snap.Guide.Monsters.Monsters[0].Name)
	assert.Equal(t, []uint32{1, 2}, snap.Guide.Monsters.Monsters[0].Spawns)
	assert.Equal(t, "Overworld", snap.Guide.Static.Spawns[0].Name)
}
