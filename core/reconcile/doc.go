// Package reconcile provides a generic presence reconciliation over any
// number of named key sets.
//
// It builds a union of keys across sources and reports, per key, which
// sources know it. Features use it to answer coverage questions such as
// "which entities exist on one site but not the other" or "which entities
// still lack a translation".
//
// # Usage Example
//
//	results := reconcile.Union(
//	    reconcile.Source{Name: "codex", Keys: codexKeys},
//	    reconcile.Source{Name: "guide", Keys: guideKeys},
//	)
//	missing := reconcile.MissingFrom(results, "guide")
//
// Field-level comparison and repair is deliberately out of scope here; the
// match feature owns that logic per entity kind.
package reconcile
