package catalog

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"ornasync/feature/codex"
	"ornasync/feature/snapshot"
)

// Row is one catalogue entry, flattened for the API.
type Row struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Tier int    `json:"tier"`
	// Kind distinguishes the monster families; empty elsewhere.
	Kind string `json:"kind,omitempty"`
	URI  string `json:"uri"`
}

// Query filters and orders catalogue rows.
type Query struct {
	// Name filters rows to those whose name contains the value,
	// case-insensitively. Empty matches everything.
	Name string
	// Tier filters rows to an exact tier. Zero matches everything.
	Tier int
	// Sort orders the rows: "name" (default) or "tier".
	Sort string
}

// Service answers catalogue queries from a loaded snapshot.
type Service struct {
	snap   *snapshot.Snapshot
	logger *zap.Logger
}

// NewService creates a catalogue service over the snapshot.
func NewService(snap *snapshot.Snapshot, logger *zap.Logger) *Service {
	return &Service{snap: snap, logger: logger}
}

// Items returns the item rows matching the query.
func (s *Service) Items(q Query) []Row {
	rows := make([]Row, 0, len(s.snap.Codex.Items.Items))
	for i := range s.snap.Codex.Items.Items {
		item := &s.snap.Codex.Items.Items[i]
		rows = append(rows, Row{
			Slug: item.Slug,
			Name: item.Name,
			Icon: item.Icon,
			Tier: item.Tier,
			URI:  item.URI(),
		})
	}
	return finish(rows, q)
}

// Monsters returns monster, boss and raid rows matching the query.
func (s *Service) Monsters(q Query) []Row {
	all := s.snap.Codex.AllMonsters()
	rows := make([]Row, 0, len(all))
	for _, monster := range all {
		rows = append(rows, Row{
			Slug: monster.Slug(),
			Name: monster.Name(),
			Icon: monster.Icon(),
			Tier: monster.Tier(),
			Kind: monster.KindLabel(),
			URI:  monster.URI(),
		})
	}
	return finish(rows, q)
}

// Skills returns the skill rows matching the query.
func (s *Service) Skills(q Query) []Row {
	rows := make([]Row, 0, len(s.snap.Codex.Skills.Skills))
	for i := range s.snap.Codex.Skills.Skills {
		skill := &s.snap.Codex.Skills.Skills[i]
		rows = append(rows, Row{
			Slug: skill.Slug,
			Name: skill.Name,
			Icon: skill.Icon,
			Tier: skill.Tier,
			URI:  skill.URI(),
		})
	}
	return finish(rows, q)
}

// Pets returns the follower rows matching the query.
func (s *Service) Pets(q Query) []Row {
	rows := make([]Row, 0, len(s.snap.Codex.Followers.Followers))
	for i := range s.snap.Codex.Followers.Followers {
		follower := &s.snap.Codex.Followers.Followers[i]
		rows = append(rows, Row{
			Slug: follower.Slug,
			Name: follower.Name,
			Icon: follower.Icon,
			Tier: follower.Tier,
			URI:  follower.URI(),
		})
	}
	return finish(rows, q)
}

// Coverage returns the presence report for one codex kind.
func (s *Service) Coverage(kind codex.Kind, strs snapshot.LocaleStrings) []Row {
	var rows []Row
	for _, result := range s.snap.Coverage(strs)[kind] {
		if result.PresentIn(snapshot.SourceCodex) && result.PresentIn(snapshot.SourceGuide) {
			continue
		}
		kindLabel := "missing on guide"
		if !result.PresentIn(snapshot.SourceCodex) {
			kindLabel = "not on codex"
		}
		rows = append(rows, Row{
			Slug: result.Key,
			Name: result.Name,
			Kind: kindLabel,
			URI:  kind.URI(result.Key),
		})
	}
	return rows
}

func finish(rows []Row, q Query) []Row {
	filtered := rows[:0]
	name := strings.ToLower(q.Name)
	for _, row := range rows {
		if name != "" && !strings.Contains(strings.ToLower(row.Name), name) {
			continue
		}
		if q.Tier != 0 && row.Tier != q.Tier {
			continue
		}
		filtered = append(filtered, row)
	}

	switch q.Sort {
	case "tier":
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].Tier != filtered[j].Tier {
				return filtered[i].Tier < filtered[j].Tier
			}
			return filtered[i].Name < filtered[j].Name
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}
	return filtered
}
