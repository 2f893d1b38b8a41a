package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/guide/mocks"
	"ornasync/feature/snapshot"
)

func effectSnapshot() *snapshot.Snapshot {
	snap := &snapshot.Snapshot{}
	snap.Codex.Items.Items = []codex.Item{{
		Slug:   "scruug-claw",
		Name:   "Scruug's Claw",
		Causes: []codex.EffectRef{{Name: "Burning"}},
		Gives:  []codex.EffectRef{{Name: "Bloodshift"}},
	}}
	snap.Codex.Skills.Skills = []codex.Skill{{
		Slug:   "chill",
		Name:   "Chill",
		Causes: []codex.SkillEffect{{Effect: "Frozen", Chance: 30}},
	}}
	snap.Guide.Static.StatusEffects = []guide.NamedID{
		{ID: 1, Name: "Burning"},
		{ID: 2, Name: "Frozen"},
		{ID: 3, Name: "Stunned"},
	}
	return snap
}

func TestMatchStatusEffectsReportOnly(t *testing.T) {
	snap := effectSnapshot()
	admin := &mocks.AdminGuide{}
	rep := NewReporter(zap.NewNop())

	err := MatchStatusEffects(context.Background(), snap, false, admin, rep)
	require.NoError(t, err)

	require.Len(t, rep.Missings, 2)
	assert.Equal(t, "Bloodshift [temp]", rep.Missings[0].Name, "codex names pass the rename table")
	assert.True(t, rep.Missings[0].OnGuide)
	assert.Equal(t, "Stunned", rep.Missings[1].Name)
	assert.False(t, rep.Missings[1].OnGuide)

	admin.AssertExpectations(t)
	assert.Len(t, snap.Guide.Static.StatusEffects, 3, "report mode never writes")
}

func TestMatchStatusEffectsFix(t *testing.T) {
	snap := effectSnapshot()
	refreshed := []guide.NamedID{
		{ID: 1, Name: "Burning"},
		{ID: 2, Name: "Frozen"},
		{ID: 3, Name: "Stunned"},
		{ID: 4, Name: "Bloodshift [temp]"},
	}
	admin := &mocks.AdminGuide{}
	admin.On("AddStatusEffect", mock.Anything, "Bloodshift [temp]").Return(nil).Once()
	admin.On("ListStatusEffects", mock.Anything).Return(refreshed, nil).Once()
	rep := NewReporter(zap.NewNop())

	err := MatchStatusEffects(context.Background(), snap, true, admin, rep)
	require.NoError(t, err)

	admin.AssertExpectations(t)
	assert.Equal(t, refreshed, snap.Guide.Static.StatusEffects,
		"the refreshed list replaces the stale one so later matchers resolve the new ids")
	assert.NotNil(t, snap.Guide.Static.FindStatusEffectByName("Bloodshift [temp]"))
}

func TestMatchStatusEffectsFixNothingMissing(t *testing.T) {
	snap := effectSnapshot()
	snap.Guide.Static.StatusEffects = append(snap.Guide.Static.StatusEffects,
		guide.NamedID{ID: 4, Name: "Bloodshift [temp]"})
	admin := &mocks.AdminGuide{}
	rep := NewReporter(zap.NewNop())

	err := MatchStatusEffects(context.Background(), snap, true, admin, rep)
	require.NoError(t, err)
	admin.AssertExpectations(t)
}
