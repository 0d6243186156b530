package safeurl

import (
	"fmt"

	"github.com/rohmanhakim/safeurl/pkg/failure"
)

type ParseErrorCause string

const (
	// ErrCauseMissingScheme indicates input without a scheme and no
	// usable base URL to resolve against.
	ErrCauseMissingScheme ParseErrorCause = "missing scheme and no usable base"

	// ErrCauseOpaqueBase indicates a relative reference against a
	// base with an opaque path; only a fragment may follow such a
	// base.
	ErrCauseOpaqueBase ParseErrorCause = "only a fragment may follow an opaque-path base"

	// ErrCauseCredentialsWithoutHost indicates an @ sign with nothing
	// between it and the end of the authority.
	ErrCauseCredentialsWithoutHost ParseErrorCause = "credentials followed by empty host"

	// ErrCauseEmptyHost indicates a special-scheme URL without a
	// host, or a colon with no host before it.
	ErrCauseEmptyHost ParseErrorCause = "empty host"

	// ErrCausePortOutOfRange indicates a port above 65535.
	ErrCausePortOutOfRange ParseErrorCause = "port out of range"

	// ErrCauseInvalidPort indicates a non-digit inside the port
	// component.
	ErrCauseInvalidPort ParseErrorCause = "invalid character in port"
)

// ParseError is the error kind for failures of the state machine
// itself. Failures of the inner algorithms (host, IDNA, IPv4/IPv6,
// encoding lookup) bubble out unchanged.
type ParseError struct {
	Cause  ParseErrorCause
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse url: %s", e.Cause)
	}
	return fmt.Sprintf("parse url: %s: %s", e.Cause, e.Detail)
}

func (e *ParseError) Severity() failure.Severity {
	return failure.SeverityFatal
}

func parseError(cause ParseErrorCause, format string, args ...any) error {
	return &ParseError{Cause: cause, Detail: fmt.Sprintf(format, args...)}
}
