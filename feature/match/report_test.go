package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestReporterClean(t *testing.T) {
	rep := NewReporter(zap.NewNop())
	assert.True(t, rep.Clean())

	rep.MissingOnGuide("items", "Broken Sword", "/codex/items/broken-sword/")
	assert.False(t, rep.Clean())
}

func TestReporterField(t *testing.T) {
	rep := NewReporter(zap.NewNop())

	m := rep.Field("skills", "Firebolt", 12, "tier", 4, 5)
	assert.Equal(t, "4", m.Guide)
	assert.Equal(t, "5", m.Codex)

	// The returned pointer aliases the stored record so fixers can
	// flip Fixed after the write confirms.
	m.Fixed = true
	assert.True(t, rep.Mismatches[0].Fixed)
}

func TestReporterRenderClean(t *testing.T) {
	rep := NewReporter(zap.NewNop())
	var buf strings.Builder
	rep.Render(&buf)
	assert.Contains(t, buf.String(), "everything matches")
}

func TestReporterRender(t *testing.T) {
	rep := NewReporter(zap.NewNop())
	rep.MissingOnGuide("pets", "Kerberos", "/codex/followers/kerberos/")
	rep.NotOnCodex("items", "Old Relic", 33)
	rep.Field("items", "Iron Sword", 5, "attack", 10, 12)

	var buf strings.Builder
	rep.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "Missing entities")
	assert.Contains(t, out, "Kerberos")
	assert.Contains(t, out, "guide")
	assert.Contains(t, out, "#33")
	assert.Contains(t, out, "Field mismatches")
	assert.Contains(t, out, "Iron Sword")
	assert.NotContains(t, out, "everything matches")
}
