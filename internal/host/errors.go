package host

import (
	"fmt"

	"github.com/rohmanhakim/safeurl/pkg/failure"
)

type HostErrorCause string

const (
	// ErrCauseForbiddenCodePoint indicates a code point that may not
	// appear in a host or domain.
	ErrCauseForbiddenCodePoint HostErrorCause = "forbidden host code point"

	// ErrCauseInvalidIPv4 indicates a host that ends in a number but
	// does not parse as an IPv4 address.
	ErrCauseInvalidIPv4 HostErrorCause = "invalid IPv4 address"

	// ErrCauseInvalidIPv6 indicates a bracketed host that does not
	// parse as an IPv6 address.
	ErrCauseInvalidIPv6 HostErrorCause = "invalid IPv6 address"

	// ErrCauseUnmatchedBracket indicates a host starting with [ but
	// not ending with ].
	ErrCauseUnmatchedBracket HostErrorCause = "unmatched bracket in host"

	// ErrCauseInvalidEncoding indicates percent-decoded host bytes
	// that are not valid UTF-8.
	ErrCauseInvalidEncoding HostErrorCause = "host is not valid UTF-8 after percent decoding"

	// ErrCauseDomainToASCII indicates a domain IDNA processing
	// rejected.
	ErrCauseDomainToASCII HostErrorCause = "domain to ASCII conversion failed"

	// ErrCauseEmptyHost indicates an empty domain where the scheme
	// requires one.
	ErrCauseEmptyHost HostErrorCause = "empty host"
)

// HostError is the error kind for every host, IPv4 and IPv6 parsing
// failure. It wraps the underlying IDNA error when there is one.
type HostError struct {
	Cause  HostErrorCause
	Detail string
	Err    error
}

func (e *HostError) Error() string {
	msg := fmt.Sprintf("host: %s", e.Cause)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *HostError) Unwrap() error { return e.Err }

func (e *HostError) Severity() failure.Severity {
	return failure.SeverityFatal
}

func hostError(cause HostErrorCause, format string, args ...any) error {
	return &HostError{Cause: cause, Detail: fmt.Sprintf(format, args...)}
}
