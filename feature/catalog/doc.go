// Package catalog serves the codex snapshot over a read-only HTTP API.
//
// It exposes the items, monsters, skills and pets collections with simple
// name, tier and sort query parameters. The API never touches the remote
// sites; it only reads the snapshot loaded at startup.
package catalog
