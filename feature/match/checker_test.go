package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeEntity stands in for a guide entity in fix protocol tests.
type fakeEntity struct {
	Icon string
	IDs  []uint32
}

// fakeStore drives a Checker through closures and counts the calls.
type fakeStore struct {
	live       fakeEntity
	fetches    int
	saves      int
	fetchErrs  int
	failFirstN int
}

func (s *fakeStore) checker(fix bool, rep *Reporter) *Checker[fakeEntity] {
	return &Checker[fakeEntity]{
		Kind: "items",
		Name: "Test Entity",
		ID:   7,
		Fix:  fix,
		Fetch: func(ctx context.Context, id uint32) (*fakeEntity, error) {
			s.fetches++
			if s.fetchErrs < s.failFirstN {
				s.fetchErrs++
				return nil, errors.New("connection reset")
			}
			live := s.live
			live.IDs = append([]uint32(nil), s.live.IDs...)
			return &live, nil
		},
		Save: func(ctx context.Context, entity *fakeEntity) error {
			s.saves++
			s.live = *entity
			return nil
		},
		Report: rep,
	}
}

func TestCheckScalarMatch(t *testing.T) {
	store := &fakeStore{live: fakeEntity{Icon: "sword.png"}}
	rep := NewReporter(zap.NewNop())

	ok, err := CheckScalar(context.Background(), store.checker(true, rep), "icon",
		"sword.png", "sword.png", func(e *fakeEntity, v string) { e.Icon = v })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rep.Mismatches)
	assert.Zero(t, store.fetches, "matching fields must not touch the guide")
}

func TestCheckScalarReportOnly(t *testing.T) {
	store := &fakeStore{live: fakeEntity{Icon: "old.png"}}
	rep := NewReporter(zap.NewNop())

	ok, err := CheckScalar(context.Background(), store.checker(false, rep), "icon",
		"old.png", "new.png", func(e *fakeEntity, v string) { e.Icon = v })
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, rep.Mismatches, 1)
	m := rep.Mismatches[0]
	assert.Equal(t, "items", m.Kind)
	assert.Equal(t, "Test Entity", m.Entity)
	assert.Equal(t, uint32(7), m.EntityID)
	assert.Equal(t, "old.png", m.Guide)
	assert.Equal(t, "new.png", m.Codex)
	assert.False(t, m.Fixed)
	assert.Zero(t, store.fetches)
	assert.Zero(t, store.saves)
}

func TestCheckScalarFix(t *testing.T) {
	store := &fakeStore{live: fakeEntity{Icon: "old.png"}}
	rep := NewReporter(zap.NewNop())

	ok, err := CheckScalar(context.Background(), store.checker(true, rep), "icon",
		"old.png", "new.png", func(e *fakeEntity, v string) { e.Icon = v })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "new.png", store.live.Icon)
	assert.Equal(t, 2, store.fetches, "fetch before mutating and again to confirm")
	assert.Equal(t, 1, store.saves, "save exactly once")
	require.Len(t, rep.Mismatches, 1)
	assert.True(t, rep.Mismatches[0].Fixed)
}

func TestCheckScalarFixRetriesFetch(t *testing.T) {
	store := &fakeStore{live: fakeEntity{Icon: "old.png"}, failFirstN: 1}
	rep := NewReporter(zap.NewNop())

	_, err := CheckScalar(context.Background(), store.checker(true, rep), "icon",
		"old.png", "new.png", func(e *fakeEntity, v string) { e.Icon = v })
	require.NoError(t, err, "a single transient fetch failure is retried")
	assert.Equal(t, "new.png", store.live.Icon)
	assert.Equal(t, 3, store.fetches)
	assert.Equal(t, 1, store.saves)
}

func TestCheckScalarFixFetchFails(t *testing.T) {
	store := &fakeStore{live: fakeEntity{Icon: "old.png"}, failFirstN: 2}
	rep := NewReporter(zap.NewNop())

	_, err := CheckScalar(context.Background(), store.checker(true, rep), "icon",
		"old.png", "new.png", func(e *fakeEntity, v string) { e.Icon = v })
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to fetch items "Test Entity" (#7)`)
	assert.Zero(t, store.saves, "no save after a failed fetch")
	require.Len(t, rep.Mismatches, 1)
	assert.False(t, rep.Mismatches[0].Fixed)
}

func TestCheckIDListFix(t *testing.T) {
	// The live list carries 9, which neither side of the comparison
	// knows about; the delta application must leave it alone.
	store := &fakeStore{live: fakeEntity{IDs: []uint32{1, 2, 4, 9}}}
	rep := NewReporter(zap.NewNop())

	describe := func(id uint32) string { return "effect" }
	ok, err := CheckIDList(context.Background(), store.checker(true, rep), "causes",
		[]uint32{1, 2, 4}, []uint32{1, 2, 3}, describe,
		func(e *fakeEntity) *[]uint32 { return &e.IDs })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []uint32{1, 2, 9, 3}, store.live.IDs)
	assert.Equal(t, 1, store.saves)
	require.Len(t, rep.Mismatches, 1)
	assert.True(t, rep.Mismatches[0].Fixed)
}

func TestCheckIDListEqual(t *testing.T) {
	store := &fakeStore{}
	rep := NewReporter(zap.NewNop())

	ok, err := CheckIDList(context.Background(), store.checker(true, rep), "causes",
		[]uint32{1, 2}, []uint32{1, 2}, func(uint32) string { return "" },
		func(e *fakeEntity) *[]uint32 { return &e.IDs })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rep.Mismatches)
	assert.Zero(t, store.fetches)
}

func TestApplyIDDelta(t *testing.T) {
	list := []uint32{1, 2, 3}
	applyIDDelta(&list, []uint32{5, 2}, []uint32{3})
	assert.Equal(t, []uint32{1, 2, 5}, list, "already present additions are not duplicated")
}
