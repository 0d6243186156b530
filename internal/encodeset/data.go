package encodeset

import "strings"

// Set is a percent-encode set: a membership predicate over code
// points deciding which of them the encoder escapes as %HH.
//
// A code point is in the set when it is an explicit member or when it
// lies above the threshold. Membership above the threshold is
// unconditional, which is why combining operations treat the
// threshold pessimistically (union keeps the lower one, intersection
// the higher one).
//
// Sets are immutable value objects: every operation returns a new Set
// and never mutates the receiver.
type Set struct {
	members   map[rune]struct{}
	threshold rune
}

// DefaultThreshold is the code point above which every set escapes
// unconditionally: the last printable ASCII character.
const DefaultThreshold = '~'

// New returns a Set whose explicit members are the code points of
// chars, escaping everything above DefaultThreshold.
func New(chars string) Set {
	return NewWithThreshold(chars, DefaultThreshold)
}

// NewWithThreshold returns a Set with the given explicit members and
// threshold.
func NewWithThreshold(chars string, threshold rune) Set {
	s := Set{
		members:   make(map[rune]struct{}, len(chars)),
		threshold: threshold,
	}
	for _, r := range chars {
		s.members[r] = struct{}{}
	}
	return s
}

// NewExcluding returns the complement construction: the explicit
// members are every code point up to and including DefaultThreshold
// that does NOT appear in chars. This is how the RFC-derived sets are
// built, where the RFC names the characters that stay unescaped.
func NewExcluding(chars string) Set {
	s := Set{
		members:   make(map[rune]struct{}, int(DefaultThreshold)+1),
		threshold: DefaultThreshold,
	}
	for r := rune(0); r <= DefaultThreshold; r++ {
		if !strings.ContainsRune(chars, r) {
			s.members[r] = struct{}{}
		}
	}
	return s
}

// Contains reports whether r is in the set.
func (s Set) Contains(r rune) bool {
	if r > s.threshold {
		return true
	}
	_, ok := s.members[r]
	return ok
}

// Add returns a Set that additionally escapes the code points of
// chars.
func (s Set) Add(chars string) Set {
	out := s.clone()
	for _, r := range chars {
		out.members[r] = struct{}{}
	}
	return out
}

// Sub returns a Set whose explicit members no longer include the code
// points of chars. The threshold is untouched, so code points above
// it remain in the set regardless.
func (s Set) Sub(chars string) Set {
	out := s.clone()
	for _, r := range chars {
		delete(out.members, r)
	}
	return out
}

// Union returns a Set containing every code point that is in s or in
// other. The threshold becomes the lower of the two.
func (s Set) Union(other Set) Set {
	threshold := s.threshold
	if other.threshold < threshold {
		threshold = other.threshold
	}
	out := Set{
		members:   make(map[rune]struct{}, len(s.members)+len(other.members)),
		threshold: threshold,
	}
	for r := range s.members {
		out.members[r] = struct{}{}
	}
	for r := range other.members {
		out.members[r] = struct{}{}
	}
	return out
}

// Intersect returns a Set containing every code point that is in both
// s and other. The threshold becomes the higher of the two.
func (s Set) Intersect(other Set) Set {
	threshold := s.threshold
	if other.threshold > threshold {
		threshold = other.threshold
	}
	out := Set{
		members:   make(map[rune]struct{}),
		threshold: threshold,
	}
	for r := range s.members {
		if _, ok := other.members[r]; ok {
			out.members[r] = struct{}{}
		}
	}
	return out
}

func (s Set) clone() Set {
	out := Set{
		members:   make(map[rune]struct{}, len(s.members)),
		threshold: s.threshold,
	}
	for r := range s.members {
		out.members[r] = struct{}{}
	}
	return out
}
