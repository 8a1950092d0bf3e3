package social

import (
	"fmt"
	"strings"
)

// InviteCode derives the short invitation code for a username: the
// uppercased first three characters, a dash, the username length and the
// last two characters. "daily" becomes "DAI-5LY".
//
// Codes are not unique: two usernames of equal length sharing the same
// first-three/last-two characters collide. The scheme is advisory, for
// manual out-of-band friend discovery, and must not be treated as an
// identifier.
func InviteCode(username string) string {
	if username == "" {
		return ""
	}
	// Work in runes so multibyte usernames keep whole characters and a
	// character-based length.
	name := []rune(strings.ToUpper(username))
	n := len(name)
	suffix := name
	if n >= 2 {
		suffix = name[n-2:]
	}
	prefix := name
	if n > 3 {
		prefix = name[:3]
	}
	return fmt.Sprintf("%s-%d%s", string(prefix), n, string(suffix))
}

// Resolve maps a code back to a username by recomputing each candidate's
// code and comparing case-sensitively. On collision the first candidate
// in enumeration order wins. Returns false when no candidate matches.
func Resolve(code string, candidates []string) (string, bool) {
	for _, u := range candidates {
		if InviteCode(u) == code {
			return u, true
		}
	}
	return "", false
}

// LooksLikeCode reports whether the input is shaped like an invitation
// code rather than a plain username.
func LooksLikeCode(s string) bool {
	return strings.Contains(s, "-")
}
