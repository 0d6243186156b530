package idna

import (
	"fmt"

	"github.com/rohmanhakim/safeurl/pkg/failure"
)

type ProcessingErrorCause string

const (
	// ErrCauseDisallowedCodePoint indicates a code point whose mapping
	// table status forbids it in a domain name outright, or forbids it
	// under the STD3 rules when those are requested.
	ErrCauseDisallowedCodePoint ProcessingErrorCause = "disallowed code point"

	// ErrCauseUnknownCodePoint indicates a code point absent from the
	// mapping table. The embedded table is a partial snapshot, so code
	// points outside the ranges it lists end here whether or not they
	// are assigned; an absent code point cannot be classified and
	// processing stops.
	ErrCauseUnknownCodePoint ProcessingErrorCause = "code point not in mapping table"

	// ErrCausePunycode indicates an xn-- label whose remainder does
	// not decode, or a label whose code points cannot be encoded.
	ErrCausePunycode ProcessingErrorCause = "punycode conversion failed"

	// ErrCauseHyphen indicates a label violating the hyphen placement
	// restrictions (leading, trailing, or positions 3-4).
	ErrCauseHyphen ProcessingErrorCause = "misplaced hyphen"

	// ErrCauseLeadingMark indicates a label whose first code point is
	// a combining mark.
	ErrCauseLeadingMark ProcessingErrorCause = "label begins with combining mark"

	// ErrCauseNotNormalized indicates a decoded label that is not in
	// normalization form C.
	ErrCauseNotNormalized ProcessingErrorCause = "label not NFC normalized"

	// ErrCauseContextJ indicates a zero-width joiner or non-joiner in
	// a position the RFC 5892 rules do not permit.
	ErrCauseContextJ ProcessingErrorCause = "joiner not permitted here"

	// ErrCauseBidi indicates a label violating the RFC 5893
	// bidirectional rule.
	ErrCauseBidi ProcessingErrorCause = "bidi rule violated"

	// ErrCauseDNSLength indicates a label or domain exceeding the DNS
	// length limits, or an empty label where one is not allowed.
	ErrCauseDNSLength ProcessingErrorCause = "DNS length limits exceeded"

	// ErrCauseEmptyDomain indicates that processing produced no
	// labels at all.
	ErrCauseEmptyDomain ProcessingErrorCause = "empty domain"
)

// ProcessingError is the single error kind the UTS #46 processor
// raises. It surfaces through the host parser as a parse failure for
// the whole URL.
type ProcessingError struct {
	Cause  ProcessingErrorCause
	Detail string
}

func (e *ProcessingError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("idna: %s", e.Cause)
	}
	return fmt.Sprintf("idna: %s: %s", e.Cause, e.Detail)
}

func (e *ProcessingError) Severity() failure.Severity {
	return failure.SeverityFatal
}

func processingError(cause ProcessingErrorCause, format string, args ...any) error {
	return &ProcessingError{Cause: cause, Detail: fmt.Sprintf(format, args...)}
}
