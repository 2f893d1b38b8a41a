// Package guide holds the data model for the admin guide: the private,
// writable back-office store for the same game catalogue the codex renders.
//
// Guide entities are keyed by a guide-assigned integer id that is stable
// across fetches. Each entity carries a codex_uri field pointing back at its
// codex counterpart; the reconciliation engine matches through that field and
// treats a codex_uri that resolves to zero or several codex entities as a
// hard error.
//
// The AdminGuide interface abstracts the remote admin panel (cookie auth,
// form encoding, pagination all live behind it). RetryOnce wraps idempotent
// reads with a single immediate retry; writes are never retried.
package guide
