package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	codex := Source{Name: "codex", Keys: map[string]string{
		"aquatic-blade": "Aquatic Blade",
		"ghost-arrow":   "Ghost Arrow",
	}}
	guide := Source{Name: "guide", Keys: map[string]string{
		"aquatic-blade": "Aquatic Blade",
		"old-relic":     "Old Relic",
	}}

	results := Union(codex, guide)
	assert.Len(t, results, 3)

	// Sorted by key
	assert.Equal(t, "aquatic-blade", results[0].Key)
	assert.Equal(t, "ghost-arrow", results[1].Key)
	assert.Equal(t, "old-relic", results[2].Key)

	assert.True(t, results[0].PresentIn("codex"))
	assert.True(t, results[0].PresentIn("guide"))

	assert.True(t, results[1].PresentIn("codex"))
	assert.False(t, results[1].PresentIn("guide"))

	assert.False(t, results[2].PresentIn("codex"))
	assert.True(t, results[2].PresentIn("guide"))
	assert.Equal(t, "Old Relic", results[2].Name)
}

func TestUnion_NameFromFirstSource(t *testing.T) {
	translations := Source{Name: "translations", Keys: map[string]string{
		"aquatic-blade": "",
	}}
	codex := Source{Name: "codex", Keys: map[string]string{
		"aquatic-blade": "Aquatic Blade",
	}}

	// The nameless source comes first; the name is still resolved.
	results := Union(translations, codex)
	assert.Len(t, results, 1)
	assert.Equal(t, "Aquatic Blade", results[0].Name)
}

func TestMissingFrom(t *testing.T) {
	results := []Result{
		{Key: "a", Present: map[string]bool{"codex": true, "guide": true}},
		{Key: "b", Present: map[string]bool{"codex": true, "guide": false}},
		{Key: "c", Present: map[string]bool{"codex": false, "guide": true}},
	}

	missing := MissingFrom(results, "guide")
	assert.Len(t, missing, 1)
	assert.Equal(t, "b", missing[0].Key)

	complete := Complete(results)
	assert.Len(t, complete, 1)
	assert.Equal(t, "a", complete[0].Key)
}

func TestUnion_Empty(t *testing.T) {
	assert.Empty(t, Union())
	assert.Empty(t, Union(Source{Name: "codex", Keys: nil}))
}
