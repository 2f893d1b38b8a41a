package reconcile

import "sort"

// Source is one named set of entities, keyed by a shared identifier.
// The map value is the entity's display name; an empty string is fine for
// sources that only track presence.
type Source struct {
	// Name identifies the source in results, e.g. "codex".
	Name string
	// Keys maps the shared identifier to a display name.
	Keys map[string]string
}

// Result is the presence report for a single key across all sources.
type Result struct {
	// Key is the shared identifier.
	Key string `json:"key"`
	// Name is the display name, taken from the first source that has one.
	Name string `json:"name"`
	// Present records, per source name, whether the key exists there.
	Present map[string]bool `json:"present"`
}

// PresentIn reports whether the key exists in the named source.
func (r Result) PresentIn(source string) bool {
	return r.Present[source]
}

// Union builds one Result per key appearing in any source. Results are
// sorted by key for deterministic output.
func Union(sources ...Source) []Result {
	union := make(map[string]struct{})
	for _, src := range sources {
		for key := range src.Keys {
			union[key] = struct{}{}
		}
	}

	results := make([]Result, 0, len(union))
	for key := range union {
		result := Result{Key: key, Present: make(map[string]bool, len(sources))}
		for _, src := range sources {
			name, ok := src.Keys[key]
			result.Present[src.Name] = ok
			if result.Name == "" {
				result.Name = name
			}
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
	return results
}

// MissingFrom filters results down to the keys absent from the named source.
func MissingFrom(results []Result, source string) []Result {
	var out []Result
	for _, r := range results {
		if !r.PresentIn(source) {
			out = append(out, r)
		}
	}
	return out
}

// Complete filters results down to the keys present in every source.
func Complete(results []Result) []Result {
	var out []Result
	for _, r := range results {
		all := true
		for _, present := range r.Present {
			if !present {
				all = false
				break
			}
		}
		if all {
			out = append(out, r)
		}
	}
	return out
}
