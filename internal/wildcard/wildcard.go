// Package wildcard implements anchored shell-style wildcard matching
// as found on DOS/Unix command lines.
//
// A pattern is a plain string where '?' stands for exactly one character,
// '*' stands for any run of characters (including none), and every other
// character stands for itself. There are no character classes, no brace
// expansion and no escaping; '*' and '?' are always structural and can
// never be matched literally. The matcher is a flat string matcher: '*'
// crosses path separators without noticing them.
package wildcard

import "unicode"

// Match reports whether name matches pattern in its entirety.
//
// The match is anchored on both ends: the whole name must be accounted
// for by the whole pattern, so an empty pattern matches only an empty
// name and a pattern of nothing but '*' matches everything. Literal
// characters are compared under the case rule selected by mode.
//
// Match is a total function: it never fails, whatever the inputs.
func Match(name, pattern string, mode CaseMode) bool {
	fold := !mode.IsSensitive()
	n := []rune(name)
	p := []rune(pattern)

	// Two-pointer scan with backtracking. starP remembers the most
	// recent '*' in the pattern and starN how much of the name that
	// star has swallowed so far. When the segment after the star stops
	// matching, the star swallows one more character and the segment is
	// retried from there. This keeps overlapping segments honest:
	// "*a*a" must still match "aaa", where a greedy first match of the
	// middle segment would strand the last one.
	var ni, pi int
	starP, starN := -1, 0

	for ni < len(n) {
		switch {
		case pi < len(p) && p[pi] == '*':
			starP, starN = pi, ni
			pi++
		case pi < len(p) && (p[pi] == '?' || runeEqual(n[ni], p[pi], fold)):
			ni++
			pi++
		case starP >= 0:
			starN++
			ni = starN
			pi = starP + 1
		default:
			return false
		}
	}

	// The name is consumed; only trailing stars may remain.
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}

func runeEqual(a, b rune, fold bool) bool {
	if a == b {
		return true
	}
	return fold && foldRune(a) == foldRune(b)
}

// foldRune maps a rune to its canonical case-folded form. The fold is
// stable: foldRune(foldRune(r)) == foldRune(r).
func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}
