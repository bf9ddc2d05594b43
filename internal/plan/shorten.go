package plan

import (
	"strings"
	"unicode"
)

// shortName derives the default variant name from a Go type signature.
// Composite types concatenate the element's short name with a marker
// suffix, named types reduce to their last path segment, basics are
// capitalized:
//
//	"uint64"          -> "Uint64"
//	"time.Time"       -> "Time"
//	"*string"         -> "StringPtr"
//	"[]byte"          -> "ByteSlice"
//	"[4]int"          -> "IntArray"
//	"map[string]int"  -> "StringIntMap"
//	"*[]time.Time"    -> "TimeSlicePtr"
func shortName(sig string) string {
	sig = strings.TrimSpace(sig)

	switch {
	case strings.HasPrefix(sig, "*"):
		return shortName(sig[1:]) + "Ptr"

	case strings.HasPrefix(sig, "[]"):
		return shortName(sig[2:]) + "Slice"

	case strings.HasPrefix(sig, "map["):
		key, value, ok := splitMap(sig)
		if !ok {
			return sanitizeIdent(sig)
		}

		return shortName(key) + shortName(value) + "Map"

	case strings.HasPrefix(sig, "["):
		// Fixed-size array: skip the length between the brackets.
		if i := strings.IndexByte(sig, ']'); i > 0 {
			return shortName(sig[i+1:]) + "Array"
		}

		return sanitizeIdent(sig)

	case strings.HasPrefix(sig, "<-chan "):
		return shortName(sig[len("<-chan "):]) + "Chan"

	case strings.HasPrefix(sig, "chan<- "):
		return shortName(sig[len("chan<- "):]) + "Chan"

	case strings.HasPrefix(sig, "chan "):
		return shortName(sig[len("chan "):]) + "Chan"

	default:
		// Named or basic type: drop the package qualifier, keep the rest.
		if i := strings.LastIndexByte(sig, '.'); i >= 0 {
			sig = sig[i+1:]
		}

		return sanitizeIdent(sig)
	}
}

// splitMap splits "map[K]V" into K and V, honoring nested brackets in
// the key type (e.g. "map[[2]string]int").
func splitMap(sig string) (key, value string, ok bool) {
	rest := sig[len("map["):]
	depth := 1

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return rest[:i], rest[i+1:], true
			}
		}
	}

	return "", "", false
}

// sanitizeIdent strips everything that cannot appear in an identifier
// and upper-cases the first rune, turning "uint64" into "Uint64" and
// "interface{}" into "Interface".
func sanitizeIdent(s string) string {
	var b strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return ""
	}

	runes := []rune(cleaned)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
