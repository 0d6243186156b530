package host

import (
	"strings"
	"unicode/utf8"

	"github.com/rohmanhakim/safeurl/internal/encodeset"
	"github.com/rohmanhakim/safeurl/internal/encoding"
	"github.com/rohmanhakim/safeurl/internal/idna"
)

// Parse turns the host portion of a URL into its Host variant. A
// bracketed input is an IPv6 address; a non-special scheme gets an
// opaque host; otherwise the input is percent-decoded, run through
// IDNA, and kept as a domain unless its last label is numeric, in
// which case it is an IPv4 address.
func Parse(input string, isSpecial bool) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return None(), hostError(ErrCauseUnmatchedBracket, "%q", input)
		}
		pieces, err := ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return None(), err
		}
		return IPv6(pieces), nil
	}
	if !isSpecial {
		return parseOpaque(input)
	}

	decoded := encoding.PercentDecodeString(input)
	if !utf8.Valid(decoded) {
		return None(), hostError(ErrCauseInvalidEncoding, "%q", input)
	}
	asciiDomain, err := idna.ToASCII(string(decoded), idna.Lookup(false))
	if err != nil {
		return None(), &HostError{Cause: ErrCauseDomainToASCII, Detail: input, Err: err}
	}
	if asciiDomain == "" {
		return None(), hostError(ErrCauseEmptyHost, "domain mapped to nothing")
	}
	for _, r := range asciiDomain {
		if isForbiddenDomainCodePoint(r) {
			return None(), hostError(ErrCauseForbiddenCodePoint, "%q in domain", string(r))
		}
	}
	if EndsInNumber(asciiDomain) {
		addr, err := ParseIPv4(asciiDomain)
		if err != nil {
			return None(), err
		}
		return IPv4(addr), nil
	}
	return Domain(asciiDomain), nil
}

func parseOpaque(input string) (Host, error) {
	for _, r := range input {
		if isForbiddenHostCodePoint(r) {
			return None(), hostError(ErrCauseForbiddenCodePoint, "%q in opaque host", string(r))
		}
	}
	encoded, err := encoding.PercentEncodeAfterEncoding(input, encoding.UTF8, encodeset.C0Control, false)
	if err != nil {
		return None(), err
	}
	return Opaque(encoded), nil
}
