package idna

import "golang.org/x/text/unicode/bidi"

// The RFC 5893 bidi rule. It only applies when the domain as a whole
// contains right-to-left text; a purely left-to-right domain with,
// say, European digits everywhere is fine.

func bidiClass(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

// domainHasRTL reports whether any code point in the mapped domain
// has bidi class R, AL or AN.
func domainHasRTL(domain string) bool {
	for _, r := range domain {
		switch bidiClass(r) {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}

// checkBidiRule validates one label against the six conditions of the
// bidi rule.
func checkBidiRule(label []rune) error {
	if len(label) == 0 {
		return nil
	}

	var rtl bool
	switch bidiClass(label[0]) {
	case bidi.L:
		rtl = false
	case bidi.R, bidi.AL:
		rtl = true
	default:
		return processingError(ErrCauseBidi, "first code point has class %v", bidiClass(label[0]))
	}

	sawEN, sawAN := false, false
	// Rule 1 guarantees a strong first character, so last is always
	// overwritten before the end-of-label checks read it.
	last := bidi.ON
	for _, r := range label {
		c := bidiClass(r)
		switch c {
		case bidi.EN:
			sawEN = true
		case bidi.AN:
			sawAN = true
		}
		if rtl {
			switch c {
			case bidi.R, bidi.AL, bidi.AN, bidi.EN, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
			default:
				return processingError(ErrCauseBidi, "class %v not allowed in RTL label", c)
			}
		} else {
			switch c {
			case bidi.L, bidi.EN, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
			default:
				return processingError(ErrCauseBidi, "class %v not allowed in LTR label", c)
			}
		}
		if c != bidi.NSM {
			last = c
		}
	}

	if rtl {
		if sawEN && sawAN {
			return processingError(ErrCauseBidi, "label mixes European and Arabic numbers")
		}
		switch last {
		case bidi.R, bidi.AL, bidi.EN, bidi.AN:
		default:
			return processingError(ErrCauseBidi, "RTL label ends with class %v", last)
		}
	} else {
		switch last {
		case bidi.L, bidi.EN:
		default:
			return processingError(ErrCauseBidi, "LTR label ends with class %v", last)
		}
	}
	return nil
}
