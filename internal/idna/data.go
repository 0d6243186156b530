package idna

// Flags select which checks ToASCII applies. The zero value runs the
// loosest conversion; Lookup(true) returns the strict set.
type Flags struct {
	// UseSTD3ASCIIRules rejects the ASCII characters STD3 forbids in
	// hostnames instead of passing or mapping them.
	UseSTD3ASCIIRules bool
	// CheckHyphens rejects labels with hyphens in positions 3 and 4
	// and labels that start or end with a hyphen.
	CheckHyphens bool
	// CheckBidi applies the RFC 5893 rule to every label when the
	// domain contains right-to-left text.
	CheckBidi bool
	// CheckJoiners applies the RFC 5892 CONTEXTJ rule to zero-width
	// joiners and non-joiners.
	CheckJoiners bool
	// TransitionalProcessing maps the deviation characters instead of
	// keeping them.
	TransitionalProcessing bool
	// VerifyDNSLength enforces the 63-octet label and 253-octet
	// domain limits.
	VerifyDNSLength bool
}

// Lookup is the flag set the URL host parser uses: joiners and bidi
// are always checked, STD3 rules and DNS length only under strict
// processing. Hyphens are never checked and processing is never
// transitional.
func Lookup(strict bool) Flags {
	return Flags{
		UseSTD3ASCIIRules: strict,
		CheckBidi:         true,
		CheckJoiners:      true,
		VerifyDNSLength:   strict,
	}
}

const acePrefix = "xn--"
