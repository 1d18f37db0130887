// Package pathmatch implements find -path style glob matching.
//
// Patterns follow fnmatch(3) without FNM_PATHNAME:
//   - * matches any run of characters, slashes included
//   - ? matches exactly one character
//   - [...] matches one character from the set; [!...] and [^...] negate it
//   - \ escapes the next character
//
// Unlike filepath.Match, a * crosses directory separators, so "*.kc3"
// selects files at any depth.
package pathmatch

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrUnclosedClass is returned for a [ without a matching ].
	ErrUnclosedClass = errors.New("unclosed character class")
	// ErrTrailingEscape is returned for a pattern ending in a lone backslash.
	ErrTrailingEscape = errors.New("trailing backslash")
)

type kind uint8

const (
	literal kind = iota
	single
	star
	class
)

type span struct{ lo, hi rune }

type token struct {
	kind    kind
	r       rune
	spans   []span
	negated bool
}

func (t *token) matches(r rune) bool {
	switch t.kind {
	case literal:
		return r == t.r
	case single:
		return true
	case class:
		for _, s := range t.spans {
			if s.lo <= r && r <= s.hi {
				return !t.negated
			}
		}

		return t.negated
	default:
		return false
	}
}

// Pattern is a compiled glob.
type Pattern struct {
	source string
	tokens []token
}

// Compile parses pattern.
func Compile(pattern string) (*Pattern, error) {
	src := []rune(pattern)
	p := &Pattern{source: pattern}

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '*':
			// Runs of stars behave like one.
			if n := len(p.tokens); n > 0 && p.tokens[n-1].kind == star {
				continue
			}

			p.tokens = append(p.tokens, token{kind: star})
		case '?':
			p.tokens = append(p.tokens, token{kind: single})
		case '[':
			tok, next, err := parseClass(src, i)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", pattern, err)
			}

			p.tokens = append(p.tokens, tok)
			i = next
		case '\\':
			if i+1 == len(src) {
				return nil, fmt.Errorf("pattern %q: %w", pattern, ErrTrailingEscape)
			}

			i++
			p.tokens = append(p.tokens, token{kind: literal, r: src[i]})
		default:
			p.tokens = append(p.tokens, token{kind: literal, r: src[i]})
		}
	}

	return p, nil
}

// parseClass reads the bracket expression opening at src[start] and returns
// the index of its closing bracket.
func parseClass(src []rune, start int) (token, int, error) {
	tok := token{kind: class}
	i := start + 1

	if i < len(src) && (src[i] == '!' || src[i] == '^') {
		tok.negated = true
		i++
	}

	// A ] right after the opening bracket is a member.
	first := true

	for ; i < len(src); i++ {
		r := src[i]

		if r == ']' && !first {
			return tok, i, nil
		}

		first = false

		if r == '\\' && i+1 < len(src) {
			i++
			r = src[i]
		}

		lo, hi := r, r

		if i+2 < len(src) && src[i+1] == '-' && src[i+2] != ']' {
			hi = src[i+2]
			i += 2
		}

		tok.spans = append(tok.spans, span{lo: lo, hi: hi})
	}

	return token{}, 0, ErrUnclosedClass
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether the whole of path matches the pattern.
func (p *Pattern) Match(path string) bool {
	var (
		ti, si   int
		starTok  = -1
		starFrom int
	)

	for si < len(path) {
		r, size := utf8.DecodeRuneInString(path[si:])

		switch {
		case ti < len(p.tokens) && p.tokens[ti].kind == star:
			starTok, starFrom = ti, si
			ti++
		case ti < len(p.tokens) && p.tokens[ti].matches(r):
			ti++
			si += size
		case starTok >= 0:
			// Let the last star swallow one more character and retry.
			_, skip := utf8.DecodeRuneInString(path[starFrom:])
			starFrom += skip
			ti, si = starTok+1, starFrom
		default:
			return false
		}
	}

	for ti < len(p.tokens) && p.tokens[ti].kind == star {
		ti++
	}

	return ti == len(p.tokens)
}

// Match compiles pattern and matches it against path.
func Match(pattern, path string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return p.Match(path), nil
}

// Set is a list of compiled patterns.
type Set []*Pattern

// NewSet compiles every pattern.
func NewSet(patterns []string) (Set, error) {
	set := make(Set, 0, len(patterns))

	for _, pattern := range patterns {
		p, err := Compile(pattern)
		if err != nil {
			return nil, err
		}

		set = append(set, p)
	}

	return set, nil
}

// Any reports whether path matches at least one pattern in the set.
func (s Set) Any(path string) bool {
	for _, p := range s {
		if p.Match(path) {
			return true
		}
	}

	return false
}
