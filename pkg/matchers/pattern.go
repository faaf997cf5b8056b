// Package matchers implements reap's selection pattern language: literal
// names plus the `*` and `?` wildcards, always anchored at both ends.
// There are no character classes and no escaping; anything that is not a
// wildcard matches itself.
package matchers

import "strings"

type patternKind int

const (
	kindLiteral patternKind = iota
	kindWildcard
)

// Pattern is a compiled selection pattern. Compile once at configuration
// time; Match is pure and safe for concurrent use.
type Pattern struct {
	raw  string
	kind patternKind
}

// Compile classifies a raw pattern string. Strings without wildcards
// degrade to exact-name comparison.
func Compile(raw string) Pattern {
	if strings.ContainsAny(raw, "*?") {
		return Pattern{raw: raw, kind: kindWildcard}
	}
	return Pattern{raw: raw, kind: kindLiteral}
}

// String returns the original pattern text
func (p Pattern) String() string { return p.raw }

// IsWildcard reports whether the pattern contains `*` or `?`
func (p Pattern) IsWildcard() bool { return p.kind == kindWildcard }

// Match tests a bare entry name against the pattern. The match is
// anchored: "cache" matches only the exact name "cache", never "cache2".
// Case-sensitive.
func (p Pattern) Match(name string) bool {
	if p.kind == kindLiteral {
		return name == p.raw
	}
	return wildcardMatch(p.raw, name)
}

// wildcardMatch runs an iterative glob match with single-star
// backtracking: `*` consumes any run of characters, `?` exactly one.
func wildcardMatch(pattern, name string) bool {
	p := []rune(pattern)
	n := []rune(name)

	pi, ni := 0, 0
	star, starNi := -1, 0

	for ni < len(n) {
		switch {
		// The star case must come first: a name may itself contain a
		// literal `*`, which would otherwise satisfy the equality case.
		case pi < len(p) && p[pi] == '*':
			star = pi
			starNi = ni
			pi++
		case pi < len(p) && (p[pi] == '?' || p[pi] == n[ni]):
			pi++
			ni++
		case star >= 0:
			// The last star absorbs one more character and we retry.
			pi = star + 1
			starNi++
			ni = starNi
		default:
			return false
		}
	}

	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
