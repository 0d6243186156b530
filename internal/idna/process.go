package idna

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ToASCII converts a domain name to its ASCII form per UTS #46:
// mapping, NFC normalization, per-label validation and Punycode
// conversion of the non-ASCII labels.
func ToASCII(domain string, f Flags) (string, error) {
	mapped, err := applyMapping(domain, f)
	if err != nil {
		return "", err
	}
	mapped = norm.NFC.String(mapped)

	labels := strings.Split(mapped, ".")
	bidiDomain := f.CheckBidi && domainHasRTL(mapped)

	for i, label := range labels {
		if strings.HasPrefix(label, acePrefix) {
			decoded, decErr := punycodeDecode(label[len(acePrefix):])
			if decErr != nil {
				return "", processingError(ErrCausePunycode, "label %q: %v", label, decErr)
			}
			// A decoded label is validated non-transitionally.
			nonTransitional := f
			nonTransitional.TransitionalProcessing = false
			if err := validateLabel(decoded, nonTransitional, bidiDomain); err != nil {
				return "", err
			}
			continue
		}
		if err := validateLabel(label, f, bidiDomain); err != nil {
			return "", err
		}
		if !isASCII(label) {
			encoded, encErr := punycodeEncode(label)
			if encErr != nil {
				return "", processingError(ErrCausePunycode, "label %q: %v", label, encErr)
			}
			labels[i] = acePrefix + encoded
		}
	}

	result := strings.Join(labels, ".")
	if f.VerifyDNSLength {
		if err := verifyDNSLength(result); err != nil {
			return "", err
		}
	}
	return result, nil
}

// applyMapping runs step one of UTS #46 processing: each code point
// is kept, dropped, replaced or rejected according to its status.
func applyMapping(domain string, f Flags) (string, error) {
	var b strings.Builder
	b.Grow(len(domain))
	for _, r := range domain {
		st, mapping := lookupMapping(r)
		switch st {
		case statusValid:
			b.WriteRune(r)
		case statusIgnored:
		case statusMapped:
			b.WriteString(mapping)
		case statusDeviation:
			if f.TransitionalProcessing {
				b.WriteString(mapping)
			} else {
				b.WriteRune(r)
			}
		case statusDisallowed:
			return "", processingError(ErrCauseDisallowedCodePoint, "U+%04X", r)
		case statusDisallowedSTD3Valid:
			if f.UseSTD3ASCIIRules {
				return "", processingError(ErrCauseDisallowedCodePoint, "U+%04X under STD3 rules", r)
			}
			b.WriteRune(r)
		case statusDisallowedSTD3Mapped:
			if f.UseSTD3ASCIIRules {
				return "", processingError(ErrCauseDisallowedCodePoint, "U+%04X under STD3 rules", r)
			}
			b.WriteString(mapping)
		default:
			return "", processingError(ErrCauseUnknownCodePoint, "U+%04X", r)
		}
	}
	return b.String(), nil
}

// validateLabel applies the UTS #46 label validity criteria.
func validateLabel(label string, f Flags, bidiDomain bool) error {
	if label == "" {
		return nil
	}
	if !norm.NFC.IsNormalString(label) {
		return &ProcessingError{Cause: ErrCauseNotNormalized, Detail: label}
	}

	runes := []rune(label)
	if f.CheckHyphens {
		if len(runes) >= 4 && runes[2] == '-' && runes[3] == '-' {
			return processingError(ErrCauseHyphen, "%q has hyphens at positions 3 and 4", label)
		}
		if runes[0] == '-' || runes[len(runes)-1] == '-' {
			return processingError(ErrCauseHyphen, "%q starts or ends with a hyphen", label)
		}
	}
	if unicode.In(runes[0], unicode.M) {
		return processingError(ErrCauseLeadingMark, "%q", label)
	}

	for _, r := range runes {
		st, _ := lookupMapping(r)
		switch st {
		case statusValid:
		case statusDeviation:
			if f.TransitionalProcessing {
				return processingError(ErrCauseDisallowedCodePoint, "deviation U+%04X under transitional processing", r)
			}
		case statusDisallowedSTD3Valid:
			if f.UseSTD3ASCIIRules {
				return processingError(ErrCauseDisallowedCodePoint, "U+%04X under STD3 rules", r)
			}
		default:
			return processingError(ErrCauseDisallowedCodePoint, "U+%04X in label %q", r, label)
		}
	}

	if f.CheckJoiners {
		if err := checkContextJ(runes); err != nil {
			return err
		}
	}
	if bidiDomain {
		if err := checkBidiRule(runes); err != nil {
			return err
		}
	}
	return nil
}

// verifyDNSLength enforces the traditional DNS limits on the ASCII
// form: labels of 1 to 63 octets and a total of 1 to 253 octets,
// excluding a trailing root dot.
func verifyDNSLength(domain string) error {
	trimmed := strings.TrimSuffix(domain, ".")
	if len(trimmed) < 1 || len(trimmed) > 253 {
		return processingError(ErrCauseDNSLength, "domain is %d octets", len(trimmed))
	}
	for _, label := range strings.Split(trimmed, ".") {
		if len(label) < 1 || len(label) > 63 {
			return processingError(ErrCauseDNSLength, "label is %d octets", len(label))
		}
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
