package encoding

import (
	"fmt"

	"github.com/rohmanhakim/safeurl/pkg/failure"
)

// LabelError reports an encoding label that does not appear in the
// Encoding standard. The registry cannot guess at unknown labels, so
// this is always fatal to the parse that requested it.
type LabelError struct {
	Label string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("unknown encoding label: %q", e.Label)
}

func (e *LabelError) Severity() failure.Severity {
	return failure.SeverityFatal
}
