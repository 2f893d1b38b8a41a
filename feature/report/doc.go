// Package report persists reconciliation runs to the report database.
//
// Each invocation of the matching engine becomes a Run row identified by a
// UUID, with one child row per field mismatch and per missing entity. The
// history answers questions like "when did this item start drifting" and
// "what did the last fix run actually write".
package report
