package match

import (
	"context"
	"fmt"
	"slices"

	"ornasync/feature/guide"
)

// Checker captures the fix context for one guide entity: how to fetch a
// fresh copy, how to save it back, and where findings go. One Checker
// is built per located entity and shared by all of its field checks.
//
// The fix protocol is always fetch, mutate, save, fetch again. The
// first fetch avoids acting on a stale in-memory copy; the last one
// confirms the write landed. Fetches go through the retry combinator,
// the save never does.
type Checker[E any] struct {
	// Kind of the entity, for reporting.
	Kind string
	// Name of the entity, for reporting.
	Name string
	// ID of the entity on the guide.
	ID uint32
	// Fix is whether mismatches are written back.
	Fix bool
	// Fetch retrieves the live entity by id.
	Fetch func(ctx context.Context, id uint32) (*E, error)
	// Save writes the entity back to the guide.
	Save func(ctx context.Context, entity *E) error
	// Report receives every finding.
	Report *Reporter
}

// apply runs the fix protocol with the given mutation.
func (c *Checker[E]) apply(ctx context.Context, mutate func(*E) error) error {
	entity, err := guide.RetryOnce(func() (*E, error) { return c.Fetch(ctx, c.ID) })
	if err != nil {
		return fmt.Errorf("failed to fetch %s %q (#%d): %w", c.Kind, c.Name, c.ID, err)
	}
	if err := mutate(entity); err != nil {
		return err
	}
	if err := c.Save(ctx, entity); err != nil {
		return fmt.Errorf("failed to save %s %q (#%d): %w", c.Kind, c.Name, c.ID, err)
	}
	if _, err := guide.RetryOnce(func() (*E, error) { return c.Fetch(ctx, c.ID) }); err != nil {
		return fmt.Errorf("failed to confirm %s %q (#%d): %w", c.Kind, c.Name, c.ID, err)
	}
	return nil
}

// CheckScalar compares one scalar field and, in fix mode, overwrites
// the guide value with the codex one. Returns whether the field
// matched; errors are I/O failures from the fix protocol only.
func CheckScalar[E any, T comparable](ctx context.Context, c *Checker[E], field string, guideVal, codexVal T, set func(*E, T)) (bool, error) {
	if guideVal == codexVal {
		return true, nil
	}
	m := c.Report.Field(c.Kind, c.Name, c.ID, field, guideVal, codexVal)
	if !c.Fix {
		return false, nil
	}
	err := c.apply(ctx, func(entity *E) error {
		set(entity, codexVal)
		return nil
	})
	if err != nil {
		return false, err
	}
	m.Fixed = true
	return false, nil
}

// CheckIDList compares one id list field. Both lists must be sorted. In
// fix mode the delta is applied as add/remove rather than overwrite, so
// guide-only entries outside the codex's reach survive unless they are
// in the removal set. describe renders an id for the report.
func CheckIDList[E any](ctx context.Context, c *Checker[E], field string, guideIDs, codexIDs []uint32, describe func(uint32) string, list func(*E) *[]uint32) (bool, error) {
	if slices.Equal(guideIDs, codexIDs) {
		return true, nil
	}
	m := c.Report.Field(c.Kind, c.Name, c.ID, field,
		describeAll(guideIDs, describe), describeAll(codexIDs, describe))
	if !c.Fix {
		return false, nil
	}
	toAdd, toRemove := DiffSorted(codexIDs, guideIDs)
	err := c.apply(ctx, func(entity *E) error {
		applyIDDelta(list(entity), toAdd, toRemove)
		return nil
	})
	if err != nil {
		return false, err
	}
	m.Fixed = true
	return false, nil
}

// applyIDDelta removes toRemove from the list and appends toAdd,
// keeping entries that are in neither set untouched.
func applyIDDelta(list *[]uint32, toAdd, toRemove []uint32) {
	kept := (*list)[:0]
	for _, id := range *list {
		if !slices.Contains(toRemove, id) {
			kept = append(kept, id)
		}
	}
	for _, id := range toAdd {
		if !slices.Contains(kept, id) {
			kept = append(kept, id)
		}
	}
	*list = kept
}

func describeAll(ids []uint32, describe func(uint32) string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = describe(id)
	}
	return out
}
