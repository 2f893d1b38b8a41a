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

// monsterSnapshot holds a clean overworld monster and a raid whose
// raid tags disagree: the guide knows it as kingdom-only, the codex
// tags it for both raid kinds.
func monsterSnapshot() *snapshot.Snapshot {
	snap := &snapshot.Snapshot{}
	snap.Guide.Static = guide.Static{
		Spawns: []guide.NamedID{
			{ID: 1, Name: "Overworld"},
			{ID: 2, Name: "Kingdom Raid"},
			{ID: 3, Name: "World Raid"},
			{ID: 4, Name: "Event: Rise of Kerberos"},
		},
		MonsterFamilies: []guide.NamedID{{ID: 1, Name: "Wolf"}},
	}
	snap.Guide.Monsters.Monsters = []guide.Monster{
		{
			ID:        40,
			CodexURI:  "/codex/monsters/dire-wolf/",
			Name:      "Dire Wolf",
			Family:    u32p(1),
			ImageName: "wolf.png",
			Spawns:    []uint32{1},
		},
		{
			ID:        41,
			CodexURI:  "/codex/raids/great-dragon/",
			Name:      "Great Dragon",
			Boss:      true,
			ImageName: "dragon.png",
			Spawns:    []uint32{2},
		},
	}
	snap.Codex.Monsters.Monsters = []codex.Monster{
		{Slug: "dire-wolf", Name: "Dire Wolf", Icon: "wolf.png", Family: "Wolf"},
	}
	snap.Codex.Raids.Raids = []codex.Raid{
		{Slug: "great-dragon", Name: "Great Dragon", Icon: "dragon.png",
			Tags: []string{"World Raid", "Kingdom Raid"}},
	}
	return snap
}

func TestMatchMonstersRaidTags(t *testing.T) {
	snap := monsterSnapshot()
	admin := &mocks.AdminGuide{}
	rep := NewReporter(zap.NewNop())

	err := MatchMonsters(context.Background(), snap, false, admin, rep)
	require.NoError(t, err)

	assert.Empty(t, rep.Missings)
	require.Len(t, rep.Mismatches, 1)
	m := rep.Mismatches[0]
	assert.Equal(t, "Great Dragon", m.Entity)
	assert.Equal(t, "raid tags", m.Field)
	assert.Contains(t, m.Codex, "World Raid")
}

func TestMatchMonstersFixRaidTags(t *testing.T) {
	snap := monsterSnapshot()
	live := snap.Guide.Monsters.Monsters[1]

	var saved *guide.Monster
	admin := &mocks.AdminGuide{}
	admin.On("FetchMonster", mock.Anything, uint32(41)).Return(&live, nil).Times(2)
	admin.On("SaveMonster", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*guide.Monster)
	}).Return(nil).Once()
	rep := NewReporter(zap.NewNop())

	err := MatchMonsters(context.Background(), snap, true, admin, rep)
	require.NoError(t, err)
	admin.AssertExpectations(t)

	require.NotNil(t, saved)
	assert.ElementsMatch(t, []uint32{2, 3}, saved.Spawns,
		"both raid spawns present after the fix")
}

func TestMatchMonstersEventsReported(t *testing.T) {
	snap := monsterSnapshot()
	snap.Codex.Monsters.Monsters[0].Events = []string{"Newfest"}
	admin := &mocks.AdminGuide{}
	rep := NewReporter(zap.NewNop())

	err := MatchMonsters(context.Background(), snap, false, admin, rep)
	require.NoError(t, err)
	admin.AssertExpectations(t)

	require.Len(t, rep.Mismatches, 2)
	m := rep.Mismatches[0]
	assert.Equal(t, "Dire Wolf", m.Entity)
	assert.Equal(t, "events", m.Field)
	assert.Contains(t, m.Codex, "Newfest",
		"events the guide has no spawn for still show up")
}

func TestMatchMonstersFixCreatesEventSpawn(t *testing.T) {
	snap := monsterSnapshot()
	snap.Guide.Monsters.Monsters = snap.Guide.Monsters.Monsters[:1]
	snap.Codex.Raids.Raids = nil
	snap.Codex.Monsters.Monsters[0].Events = []string{"Newfest", "Rise of Kerberos"}
	live := snap.Guide.Monsters.Monsters[0]

	refreshed := append([]guide.NamedID(nil), snap.Guide.Static.Spawns...)
	refreshed = append(refreshed, guide.NamedID{ID: 9, Name: "Past Event: Newfest"})

	var saved *guide.Monster
	admin := &mocks.AdminGuide{}
	admin.On("AddSpawn", mock.Anything, "Past Event: Newfest").Return(nil).Once()
	admin.On("ListSpawns", mock.Anything).Return(refreshed, nil).Once()
	admin.On("FetchMonster", mock.Anything, uint32(40)).Return(&live, nil).Times(2)
	admin.On("SaveMonster", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*guide.Monster)
	}).Return(nil).Once()
	rep := NewReporter(zap.NewNop())

	err := MatchMonsters(context.Background(), snap, true, admin, rep)
	require.NoError(t, err)
	admin.AssertExpectations(t)

	require.NotNil(t, saved)
	assert.ElementsMatch(t, []uint32{1, 4, 9}, saved.Spawns,
		"known event resolved, created event appended, overworld spawn kept")
	assert.Equal(t, refreshed, snap.Guide.Static.Spawns,
		"spawn list refreshed so later matches resolve the new id")
	require.Len(t, rep.Mismatches, 1)
	assert.True(t, rep.Mismatches[0].Fixed)
}

func TestMatchMonstersFixRemovesStaleEvent(t *testing.T) {
	snap := monsterSnapshot()
	snap.Guide.Monsters.Monsters = snap.Guide.Monsters.Monsters[:1]
	snap.Codex.Raids.Raids = nil
	snap.Guide.Monsters.Monsters[0].Spawns = []uint32{1, 4}
	live := snap.Guide.Monsters.Monsters[0]

	var saved *guide.Monster
	admin := &mocks.AdminGuide{}
	admin.On("FetchMonster", mock.Anything, uint32(40)).Return(&live, nil).Times(2)
	admin.On("SaveMonster", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*guide.Monster)
	}).Return(nil).Once()
	rep := NewReporter(zap.NewNop())

	err := MatchMonsters(context.Background(), snap, true, admin, rep)
	require.NoError(t, err)
	admin.AssertExpectations(t)

	require.NotNil(t, saved)
	assert.Equal(t, []uint32{1}, saved.Spawns,
		"stale event dropped without touching the spawn table")
}

func TestMatchMonstersMissing(t *testing.T) {
	snap := monsterSnapshot()
	snap.Guide.Monsters.Monsters[1].Spawns = []uint32{2, 3}
	snap.Codex.Bosses.Bosses = []codex.Boss{{Slug: "ogre-king", Name: "Ogre King"}}
	snap.Guide.Monsters.Monsters = append(snap.Guide.Monsters.Monsters,
		guide.Monster{ID: 42, CodexURI: "/codex/monsters/gone/", Name: "Gone"})
	admin := &mocks.AdminGuide{}
	rep := NewReporter(zap.NewNop())

	err := MatchMonsters(context.Background(), snap, false, admin, rep)
	require.NoError(t, err)
	admin.AssertExpectations(t)

	require.Len(t, rep.Missings, 2)
	assert.Equal(t, "Boss Ogre King", rep.Missings[0].Name, "the family label disambiguates")
	assert.True(t, rep.Missings[0].OnGuide)
	assert.Equal(t, "Gone", rep.Missings[1].Name)
	assert.False(t, rep.Missings[1].OnGuide)

	// Monster creation stays manual even in fix mode.
	rep = NewReporter(zap.NewNop())
	err = MatchMonsters(context.Background(), snap, true, admin, rep)
	require.NoError(t, err)
	admin.AssertExpectations(t)
}
