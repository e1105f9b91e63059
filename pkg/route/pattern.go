package route

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/hepworks/fitstack/pkg/errors"
)

// Wildcard matches any candidate string.
const Wildcard = "*"

// Matches reports whether a glob pattern matches the full candidate string.
// The wildcard "*" always matches. Other patterns support shell-glob syntax:
// "*" for any run of characters, "?" for a single character, and "[...]"
// character classes. Matching is case-sensitive and covers the whole
// candidate, not a substring.
//
// Patterns are not validated at registration time; a malformed pattern
// surfaces here as an error, distinct from a non-match.
func Matches(pattern, candidate string) (bool, error) {
	if pattern == Wildcard {
		return true, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeMalformedPattern,
			fmt.Sprintf("invalid pattern %q", pattern), err,
			map[string]any{"pattern": pattern})
	}

	return g.Match(candidate), nil
}
