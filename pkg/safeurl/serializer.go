package safeurl

import (
	"strconv"
	"strings"
)

// SerializeOptions adjusts serialization.
type SerializeOptions struct {
	// ExcludeFragment leaves the fragment out of the output.
	ExcludeFragment bool

	// Canonicalize selects how faithfully the output mirrors the
	// parsed input:
	//
	//   - nil follows the standard's serialization algorithm exactly.
	//   - true guarantees functionally equivalent URLs render the
	//     same way. It currently applies the same canonicalization as
	//     the standard algorithm.
	//   - false deviates from the standard as needed to keep the
	//     output as close as possible to the string that was parsed,
	//     while still producing a valid URL: the syntactic shadow
	//     flags are honored, re-emitting an empty-password colon, an
	//     explicit default port, a bare port colon, and the absence
	//     of a path slash.
	Canonicalize *bool
}

// Serialize renders the record back into a URL string.
func (u *URL) Serialize(opts *SerializeOptions) string {
	excludeFragment := opts != nil && opts.ExcludeFragment
	preserve := opts != nil && opts.Canonicalize != nil && !*opts.Canonicalize

	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteByte(':')

	if u.host.IsPresent() {
		b.WriteString("//")
		if u.username != "" || u.password != "" {
			b.WriteString(u.username)
			if u.password != "" {
				b.WriteByte(':')
				b.WriteString(u.password)
			} else if preserve && u.passwordTokenSeen {
				b.WriteByte(':')
			}
			b.WriteByte('@')
		}
		b.WriteString(u.host.Serialize())
		switch {
		case u.port >= 0:
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.port))
		case preserve && u.defaultPortSeen:
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.defaultPort()))
		case preserve && u.portTokenSeen:
			b.WriteByte(':')
		}
	} else if !u.isOpaque && len(u.path) > 1 && u.path[0] == "" {
		// A hostless URL whose path starts with an empty segment
		// would read back as having an authority; /. keeps the next
		// segment out of the authority position.
		b.WriteString("/.")
	}

	b.WriteString(u.serializePath(preserve))

	if u.query != nil {
		b.WriteByte('?')
		b.WriteString(*u.query)
	}
	if !excludeFragment && u.fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.fragment)
	}
	return b.String()
}

func (u *URL) serializePath(preserve bool) string {
	if u.isOpaque {
		return u.opaque
	}
	// The input had no path at all: with canonicalization off the
	// lone empty segment renders as nothing instead of /.
	if preserve && !u.pathTokenSeen && len(u.path) == 1 && u.path[0] == "" {
		return ""
	}
	var b strings.Builder
	for _, segment := range u.path {
		b.WriteByte('/')
		b.WriteString(segment)
	}
	return b.String()
}
