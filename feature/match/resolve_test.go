package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
)

func testStatic() *guide.Static {
	return &guide.Static{
		Spawns: []guide.NamedID{
			{ID: 1, Name: "Overworld"},
			{ID: 2, Name: "Event: Rise of Kerberos"},
			{ID: 3, Name: "Past Event: Sirens"},
		},
		StatusEffects: []guide.NamedID{
			{ID: 10, Name: "Burning"},
			{ID: 11, Name: "Frozen"},
			{ID: 12, Name: "Bloodshift [temp]"},
		},
	}
}

func TestResolveEffectIDs(t *testing.T) {
	static := testStatic()

	ids, err := ResolveEffectIDs([]string{"Frozen", "Burning"}, static)
	require.NoError(t, err)
	assert.Equal(t, []uint32{11, 10}, ids, "ids keep input order")

	// The rename table applies before the lookup.
	ids, err = ResolveEffectIDs([]string{"Bloodshift"}, static)
	require.NoError(t, err)
	assert.Equal(t, []uint32{12}, ids)
}

func TestResolveEffectIDsPartial(t *testing.T) {
	static := testStatic()

	ids, err := ResolveEffectIDs([]string{"Burning", "Petrified", "Frozen"}, static)
	var partial *PartialResolutionError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []uint32{10, 11}, ids, "resolved subset survives the error")
	assert.Equal(t, ids, partial.IDs)
	assert.Equal(t, []string{"Petrified"}, partial.Failed)
	assert.Contains(t, partial.Error(), "1 of 3")
}

func TestResolveMaterialIDs(t *testing.T) {
	items := &guide.Items{Items: []guide.Item{
		{ID: 100, CodexURI: "/codex/items/iron/", Name: "Iron"},
		{ID: 101, CodexURI: "/codex/items/wolf-pelt/", Name: "Wolf Pelt"},
	}}

	ids, err := ResolveMaterialIDs([]codex.Ref{
		{Name: "Wolf Pelt", URI: "/codex/items/wolf-pelt/"},
		{Name: "Iron", URI: "/codex/items/iron/"},
	}, items)
	require.NoError(t, err)
	assert.Equal(t, []uint32{101, 100}, ids)

	ids, err = ResolveMaterialIDs([]codex.Ref{
		{Name: "Iron", URI: "/codex/items/iron/"},
		{Name: "Lost", URI: "/codex/items/lost/"},
	}, items)
	var partial *PartialResolutionError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []uint32{100}, ids)
	assert.Equal(t, []string{"/codex/items/lost/"}, partial.Failed)
}

func TestResolveAbilityIDs(t *testing.T) {
	skills := &guide.Skills{Skills: []guide.Skill{
		{ID: 5, CodexURI: "/codex/spells/firebolt/", Name: "Firebolt"},
	}}

	ids, err := ResolveAbilityIDs([]codex.Ref{{Name: "Firebolt", URI: "/codex/spells/firebolt/"}}, skills)
	require.NoError(t, err)
	assert.Equal(t, []uint32{5}, ids)
}

func TestEffectNameToGuide(t *testing.T) {
	assert.Equal(t, "Bloodshift [temp]", EffectNameToGuide("Bloodshift"))
	assert.Equal(t, "Call of Brynhild", EffectNameToGuide("Brynhild"))
	assert.Equal(t, "Defending [Magical]", EffectNameToGuide("Defending"))
	assert.Equal(t, "Burning", EffectNameToGuide("Burning"), "unknown names pass through")
}
