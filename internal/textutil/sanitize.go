package textutil

import "strings"

// ContestToken converts a human-readable contest name to a lowercase
// filesystem-safe token: letters are lowercased, spaces become underscores,
// digits and hyphens/underscores are kept, everything else is dropped.
// Returns "unknown" for empty input.
func ContestToken(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		case r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}

// ContestFileName returns the per-contest output file name for a contest:
// the contest token with a ".csv" suffix.
func ContestFileName(name string) string {
	return ContestToken(name) + ".csv"
}
