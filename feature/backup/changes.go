package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
)

// CodexRemoval lists codex entities to drop from a merged backup, by
// slug. Entities the game retired stay in old archives forever; the
// removal list keeps them out of the matching baseline.
type CodexRemoval struct {
	Items    []string `json:"items"`
	Monsters []string `json:"monsters"`
	Raids    []string `json:"raids"`
	Skills   []string `json:"skills"`
}

// GuideRemoval lists guide entities to drop, by id.
type GuideRemoval struct {
	Items []uint32 `json:"items"`
}

// Changes are hand-maintained corrections applied to a merged backup
// before matching.
type Changes struct {
	Codex CodexRemoval `json:"codex"`
	Guide GuideRemoval `json:"guide"`
}

// LoadChanges reads a changes file. An absent file yields empty
// changes, not an error.
func LoadChanges(path string) (*Changes, error) {
	payload, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Changes{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read changes file %s: %w", path, err)
	}
	var changes Changes
	if err := json.Unmarshal(payload, &changes); err != nil {
		return nil, fmt.Errorf("failed to decode changes file %s: %w", path, err)
	}
	return &changes, nil
}

// Apply removes the listed entities from the backup in place.
func (c *Changes) Apply(b *Backup) {
	b.Data.Codex.Items.Items = slices.DeleteFunc(b.Data.Codex.Items.Items,
		func(e codex.Item) bool { return slices.Contains(c.Codex.Items, e.Slug) })
	b.Data.Codex.Monsters.Monsters = slices.DeleteFunc(b.Data.Codex.Monsters.Monsters,
		func(e codex.Monster) bool { return slices.Contains(c.Codex.Monsters, e.Slug) })
	b.Data.Codex.Raids.Raids = slices.DeleteFunc(b.Data.Codex.Raids.Raids,
		func(e codex.Raid) bool { return slices.Contains(c.Codex.Raids, e.Slug) })
	b.Data.Codex.Skills.Skills = slices.DeleteFunc(b.Data.Codex.Skills.Skills,
		func(e codex.Skill) bool { return slices.Contains(c.Codex.Skills, e.Slug) })
	b.Data.Guide.Items.Items = slices.DeleteFunc(b.Data.Guide.Items.Items,
		func(e guide.Item) bool { return slices.Contains(c.Guide.Items, e.ID) })
}
