package match

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

// Mismatch is one field discrepancy between a guide entity and its
// codex counterpart.
type Mismatch struct {
	// Kind of the entity (items, monsters, skills, pets, status-effects).
	Kind string
	// Entity is the display name of the entity.
	Entity string
	// EntityID is the guide id, zero for entities missing on the guide.
	EntityID uint32
	// Field is the reconcilable field that differs.
	Field string
	// Guide is the guide-side value, formatted.
	Guide string
	// Codex is the codex-side expected value, formatted.
	Codex string
	// Fixed is whether fix mode confirmed a corrective write.
	Fixed bool
}

// Missing is an entity present on one side only.
type Missing struct {
	// Kind of the entity.
	Kind string
	// Name of the entity.
	Name string
	// Key locating it: a codex URI or a guide id rendering.
	Key string
	// OnGuide is true when the codex entity has no guide counterpart,
	// false when a guide entity points at no codex page.
	OnGuide bool
}

// Reporter accumulates the findings of a reconciliation pass.
// Mismatches are always recorded and logged, fix mode or not.
type Reporter struct {
	log *zap.Logger

	Mismatches []Mismatch
	Missings   []Missing
}

// NewReporter creates a Reporter logging through the given logger.
func NewReporter(log *zap.Logger) *Reporter {
	return &Reporter{log: log}
}

// Field records a field mismatch and returns it for the fixer to mark.
func (r *Reporter) Field(kind, entity string, id uint32, field string, guideVal, codexVal any) *Mismatch {
	r.Mismatches = append(r.Mismatches, Mismatch{
		Kind:     kind,
		Entity:   entity,
		EntityID: id,
		Field:    field,
		Guide:    fmt.Sprint(guideVal),
		Codex:    fmt.Sprint(codexVal),
	})
	m := &r.Mismatches[len(r.Mismatches)-1]
	r.log.Info("field mismatch",
		zap.String("kind", kind),
		zap.String("entity", entity),
		zap.Uint32("id", id),
		zap.String("field", field),
		zap.String("guide", m.Guide),
		zap.String("codex", m.Codex))
	return m
}

// MissingOnGuide records a codex entity with no guide counterpart.
func (r *Reporter) MissingOnGuide(kind, name, uri string) {
	r.Missings = append(r.Missings, Missing{Kind: kind, Name: name, Key: uri, OnGuide: true})
	r.log.Warn("missing on guide",
		zap.String("kind", kind),
		zap.String("entity", name),
		zap.String("codex_uri", uri))
}

// NotOnCodex records a guide entity whose codex_uri resolves to nothing.
func (r *Reporter) NotOnCodex(kind, name string, id uint32) {
	r.Missings = append(r.Missings, Missing{
		Kind: kind, Name: name, Key: fmt.Sprintf("#%d", id),
	})
	r.log.Warn("not on codex",
		zap.String("kind", kind),
		zap.String("entity", name),
		zap.Uint32("id", id))
}

// PartialResolution records reference list entries that failed to
// resolve. The entity keeps its resolved subset.
func (r *Reporter) PartialResolution(kind, entity, field string, err *PartialResolutionError) {
	r.log.Warn("partial reference resolution",
		zap.String("kind", kind),
		zap.String("entity", entity),
		zap.String("field", field),
		zap.Strings("failed", err.Failed))
}

// FixFailed records a fix that errored out. The batch continues.
func (r *Reporter) FixFailed(kind, entity string, id uint32, err error) {
	r.log.Error("fix failed",
		zap.String("kind", kind),
		zap.String("entity", entity),
		zap.Uint32("id", id),
		zap.Error(err))
}

// Clean reports whether the pass found nothing to complain about.
func (r *Reporter) Clean() bool {
	return len(r.Mismatches) == 0 && len(r.Missings) == 0
}

// Render writes the findings as human-readable tables.
func (r *Reporter) Render(w io.Writer) {
	if r.Clean() {
		fmt.Fprintln(w, "everything matches")
		return
	}
	if len(r.Missings) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle("Missing entities")
		t.AppendHeader(table.Row{"Kind", "Name", "Key", "Missing on"})
		for _, m := range r.Missings {
			side := "codex"
			if m.OnGuide {
				side = "guide"
			}
			t.AppendRow(table.Row{m.Kind, m.Name, m.Key, side})
		}
		t.Render()
	}
	if len(r.Mismatches) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle("Field mismatches")
		t.AppendHeader(table.Row{"Kind", "Entity", "Field", "Guide", "Codex", "Fixed"})
		for _, m := range r.Mismatches {
			t.AppendRow(table.Row{m.Kind, m.Entity, m.Field, m.Guide, m.Codex, m.Fixed})
		}
		t.Render()
	}
}
