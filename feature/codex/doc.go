// Package codex holds the data model for the public codex: the read-only,
// slug-addressed catalogue of items, monsters, bosses, raids, skills and
// followers.
//
// Entities are immutable per fetch. Each one is keyed by its slug, the last
// path segment of its codex URI (`/codex/{kind}/{slug}/`). Collections offer
// slug and URI lookups; lookups that must succeed have Get* variants that
// return a named error carrying the offending key.
//
// The Client interface abstracts the remote codex so the reconciliation
// engine and the refresh feature can be tested against in-memory fakes.
package codex
