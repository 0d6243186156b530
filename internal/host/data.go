package host

import (
	"fmt"
	"strings"
)

// Kind tags the variant a Host carries.
type Kind uint8

const (
	// KindNone means the URL has no host at all (opaque-path and
	// scheme-only URLs).
	KindNone Kind = iota
	// KindOpaque is a percent-encoded host of a non-special URL.
	KindOpaque
	// KindDomain is an ASCII domain produced by IDNA processing.
	KindDomain
	// KindIPv4 is a 32-bit address.
	KindIPv4
	// KindIPv6 is eight 16-bit pieces.
	KindIPv6
)

// Host is the tagged host variant of a URL record.
type Host struct {
	kind   Kind
	name   string
	v4     uint32
	v6     [8]uint16
}

// None returns the absent host.
func None() Host { return Host{} }

// Empty returns the present-but-empty host of file URLs.
func Empty() Host { return Host{kind: KindDomain} }

// Domain returns an ASCII domain host.
func Domain(name string) Host { return Host{kind: KindDomain, name: name} }

// Opaque returns an opaque host.
func Opaque(name string) Host { return Host{kind: KindOpaque, name: name} }

// IPv4 returns an IPv4 host.
func IPv4(addr uint32) Host { return Host{kind: KindIPv4, v4: addr} }

// IPv6 returns an IPv6 host.
func IPv6(pieces [8]uint16) Host { return Host{kind: KindIPv6, v6: pieces} }

// Kind returns the variant tag.
func (h Host) Kind() Kind { return h.kind }

// IsPresent reports whether the URL has a host at all.
func (h Host) IsPresent() bool { return h.kind != KindNone }

// Name returns the domain or opaque string; empty for the address
// variants.
func (h Host) Name() string { return h.name }

// IPv4Addr returns the packed address for the IPv4 variant.
func (h Host) IPv4Addr() uint32 { return h.v4 }

// IPv6Pieces returns the eight pieces for the IPv6 variant.
func (h Host) IPv6Pieces() [8]uint16 { return h.v6 }

// Serialize renders the host the way it appears in a URL string.
func (h Host) Serialize() string {
	switch h.kind {
	case KindIPv4:
		return SerializeIPv4(h.v4)
	case KindIPv6:
		return "[" + SerializeIPv6(h.v6) + "]"
	default:
		return h.name
	}
}

// String implements fmt.Stringer for diagnostics.
func (h Host) String() string {
	if h.kind == KindNone {
		return "<none>"
	}
	return h.Serialize()
}

var _ fmt.Stringer = Host{}

const forbiddenHostCodePoints = "\x00\t\n\r #/:<>?@[\\]^|"

func isForbiddenHostCodePoint(r rune) bool {
	return strings.ContainsRune(forbiddenHostCodePoints, r)
}

func isForbiddenDomainCodePoint(r rune) bool {
	return isForbiddenHostCodePoint(r) || r <= 0x1F || r == '%' || r == 0x7F
}
