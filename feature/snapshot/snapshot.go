package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
)

// Snapshot is the root aggregate: everything known about both
// catalogues at one point in time. Translated copies are derived from
// it and never written back.
type Snapshot struct {
	Codex codex.Data `json:"codex"`
	Guide guide.Data `json:"guide"`
}

// collection file names inside a snapshot directory.
const (
	fileCodexItems     = "codex_items.json"
	fileCodexMonsters  = "codex_monsters.json"
	fileCodexBosses    = "codex_bosses.json"
	fileCodexRaids     = "codex_raids.json"
	fileCodexSkills    = "codex_skills.json"
	fileCodexFollowers = "codex_followers.json"
	fileGuideItems     = "guide_items.json"
	fileGuideMonsters  = "guide_monsters.json"
	fileGuideSkills    = "guide_skills.json"
	fileGuidePets      = "guide_pets.json"
	fileGuideStatic    = "guide_static.json"
)

func writeJSON(dir, name string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func readJSON(dir, name string, v any) error {
	payload, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// Save persists the snapshot as one JSON file per collection under dir,
// creating the directory if needed.
func (s *Snapshot) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}
	parts := []struct {
		name string
		data any
	}{
		{fileCodexItems, s.Codex.Items},
		{fileCodexMonsters, s.Codex.Monsters},
		{fileCodexBosses, s.Codex.Bosses},
		{fileCodexRaids, s.Codex.Raids},
		{fileCodexSkills, s.Codex.Skills},
		{fileCodexFollowers, s.Codex.Followers},
		{fileGuideItems, s.Guide.Items},
		{fileGuideMonsters, s.Guide.Monsters},
		{fileGuideSkills, s.Guide.Skills},
		{fileGuidePets, s.Guide.Pets},
		{fileGuideStatic, s.Guide.Static},
	}
	for _, part := range parts {
		if err := writeJSON(dir, part.name, part.data); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a snapshot previously written by Save. Missing collection
// files are an error since a partial snapshot cannot be reconciled.
func Load(dir string) (*Snapshot, error) {
	var s Snapshot
	parts := []struct {
		name string
		data any
	}{
		{fileCodexItems, &s.Codex.Items},
		{fileCodexMonsters, &s.Codex.Monsters},
		{fileCodexBosses, &s.Codex.Bosses},
		{fileCodexRaids, &s.Codex.Raids},
		{fileCodexSkills, &s.Codex.Skills},
		{fileCodexFollowers, &s.Codex.Followers},
		{fileGuideItems, &s.Guide.Items},
		{fileGuideMonsters, &s.Guide.Monsters},
		{fileGuideSkills, &s.Guide.Skills},
		{fileGuidePets, &s.Guide.Pets},
		{fileGuideStatic, &s.Guide.Static},
	}
	for _, part := range parts {
		if err := readJSON(dir, part.name, part.data); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
