package service

import (
	"net/url"
	"sort"
	"strings"
)

// Environment prefixes the cloud strips from the path before computing
// its own signature. They are removed for signing only; the wire
// request keeps the full path.
var envPrefixes = []string{"release", "test", "prepub"}

// NormalizeQuery rewrites a raw query string into the deterministic
// form covered by the signature. The remote server recomputes the same
// normalization, so the output has to match byte for byte:
//   - values are decoded and grouped per key
//   - blank values are dropped; surviving values are comma-joined in
//     their original relative order
//   - a key left with no values is emitted bare, without "="
//   - keys are sorted bytewise ascending
func NormalizeQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	// ParseQuery decodes as much as it can even on malformed input;
	// signing proceeds with whatever parsed, matching the upstream
	// parser's leniency.
	values, _ := url.ParseQuery(rawQuery)
	if len(values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var kept []string
		for _, v := range values[k] {
			if v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			parts = append(parts, k+"="+strings.Join(kept, ","))
		} else {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, "&")
}

// SigningPath returns the path as covered by the signature: if the
// first segment is an environment prefix (/release, /test, /prepub) it
// is stripped, keeping a leading slash. The result is used only inside
// the signing string — the request itself is always sent to the
// original path.
func SigningPath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return path
	}
	first, rest, more := strings.Cut(path[1:], "/")
	for _, p := range envPrefixes {
		if first == p {
			if !more {
				return "/"
			}
			return "/" + rest
		}
	}
	return path
}
