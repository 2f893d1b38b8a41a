// Package snapshot owns the point-in-time capture of both catalogues.
// A snapshot pairs the codex data with the guide data and persists as a
// directory of JSON collections, one file per entity kind. Locale
// databases ride alongside the snapshot and can produce a translated
// deep copy without ever mutating the original.
package snapshot
