package idna

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// The CONTEXTJ rules of RFC 5892 appendix A restrict where the
// zero-width joiner and non-joiner may appear in a label.

const (
	zwnj = 0x200C
	zwj  = 0x200D
)

const viramaCCC = 9

func combiningClass(r rune) uint8 {
	return norm.NFD.PropertiesString(string(r)).CCC()
}

// joinTransparent mirrors Joining_Type T: marks and format controls
// that do not interrupt cursive joining.
func joinTransparent(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf)
}

// joinCapable approximates Joining_Type L, D and R: the cursive
// scripts whose letters join. Classifying them all as dual-joining
// admits a superset of the exact Joining_Type data.
func joinCapable(r rune) bool {
	if joinTransparent(r) {
		return false
	}
	return unicode.In(r,
		unicode.Arabic,
		unicode.Syriac,
		unicode.Nko,
		unicode.Mandaic,
		unicode.Mongolian,
		unicode.Phags_Pa,
	)
}

// checkContextJ validates every joiner in label.
func checkContextJ(label []rune) error {
	for i, r := range label {
		switch r {
		case zwj:
			// Only valid directly after a virama.
			if i == 0 || combiningClass(label[i-1]) != viramaCCC {
				return processingError(ErrCauseContextJ, "zero width joiner at position %d", i)
			}
		case zwnj:
			if i > 0 && combiningClass(label[i-1]) == viramaCCC {
				continue
			}
			if !zwnjBreaksJoin(label, i) {
				return processingError(ErrCauseContextJ, "zero width non-joiner at position %d", i)
			}
		}
	}
	return nil
}

// zwnjBreaksJoin checks the regular-expression arm of the ZWNJ rule:
// a joining letter before (skipping transparent code points) and a
// joining letter after.
func zwnjBreaksJoin(label []rune, i int) bool {
	before := false
	for j := i - 1; j >= 0; j-- {
		if joinTransparent(label[j]) {
			continue
		}
		before = joinCapable(label[j])
		break
	}
	if !before {
		return false
	}
	for j := i + 1; j < len(label); j++ {
		if joinTransparent(label[j]) {
			continue
		}
		return joinCapable(label[j])
	}
	return false
}
