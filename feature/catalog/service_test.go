package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

func testSnapshot() *snapshot.Snapshot {
	snap := &snapshot.Snapshot{}
	snap.Codex.Items.Items = []codex.Item{
		{Slug: "worldflame-sword", Name: "Worldflame Sword", Tier: 10},
		{Slug: "broken-blade", Name: "Broken Blade", Tier: 3},
		{Slug: "blade-of-winds", Name: "Blade of Winds", Tier: 3},
	}
	snap.Codex.Monsters.Monsters = []codex.Monster{
		{Slug: "sea-serpent", Name: "Sea Serpent", Tier: 5},
	}
	snap.Codex.Raids.Raids = []codex.Raid{
		{Slug: "fallen-judge", Name: "Fallen Judge", Tier: 9},
	}
	return snap
}

func TestService_Items(t *testing.T) {
	svc := NewService(testSnapshot(), zap.NewNop())

	t.Run("Name filter", func(t *testing.T) {
		rows := svc.Items(Query{Name: "blade"})
		assert.Len(t, rows, 2)
		// Sorted by name by default
		assert.Equal(t, "Blade of Winds", rows[0].Name)
		assert.Equal(t, "Broken Blade", rows[1].Name)
	})

	t.Run("Tier filter", func(t *testing.T) {
		rows := svc.Items(Query{Tier: 10})
		assert.Len(t, rows, 1)
		assert.Equal(t, "worldflame-sword", rows[0].Slug)
		assert.Equal(t, "/codex/items/worldflame-sword/", rows[0].URI)
	})

	t.Run("Tier sort", func(t *testing.T) {
		rows := svc.Items(Query{Sort: "tier"})
		assert.Equal(t, []int{3, 3, 10}, []int{rows[0].Tier, rows[1].Tier, rows[2].Tier})
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, svc.Items(Query{Name: "axe"}))
	})
}

func TestService_Monsters(t *testing.T) {
	svc := NewService(testSnapshot(), zap.NewNop())

	rows := svc.Monsters(Query{})
	assert.Len(t, rows, 2)
	assert.Equal(t, "Fallen Judge", rows[0].Name)
	assert.Equal(t, "Raid", rows[0].Kind)
	assert.Equal(t, "Monster", rows[1].Kind)
}

func TestService_Coverage(t *testing.T) {
	snap := testSnapshot()
	// One item known to the guide, two not.
	snap.Guide.Items.Items = append(snap.Guide.Items.Items, guide.Item{
		Name:     "Worldflame Sword",
		CodexURI: "/codex/items/worldflame-sword/",
	})
	svc := NewService(snap, zap.NewNop())

	rows := svc.Coverage(codex.KindItems, nil)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "missing on guide", row.Kind)
	}
}
