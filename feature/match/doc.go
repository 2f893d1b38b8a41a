// Package match is the reconciliation engine. It pairs each codex
// entity with its guide counterpart through the codex_uri back
// reference, compares every reconcilable field, reports mismatches and,
// in fix mode, writes corrections back through the admin guide.
//
// Matching runs strictly sequentially per kind and per entity. Fix mode
// always re-fetches the live entity before mutating it and re-fetches
// once more after saving to confirm the write landed.
package match
