package safeurl

import (
	"slices"

	"github.com/rohmanhakim/safeurl/internal/host"
)

// defaultPorts doubles as the special-scheme registry: a scheme is
// special exactly when it has an entry. A zero value means the scheme
// has no default port.
var defaultPorts = map[string]int{
	"ftp":   21,
	"file":  0,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// URL is the parsed record. The parser writes into it directly while
// running; afterwards it is read-only and external code only sees the
// getters.
type URL struct {
	scheme   string
	username string
	password string
	host     host.Host
	port     int // -1 when absent
	path     []string
	opaque   string
	isOpaque bool
	query    *string
	fragment *string

	// Syntactic shadow flags: delimiters that appeared in the input
	// even though the component after them is empty or elided. They
	// only matter when serializing with canonicalization off.
	passwordTokenSeen bool
	portTokenSeen     bool
	defaultPortSeen   bool
	pathTokenSeen     bool
}

func newURL() *URL {
	return &URL{port: -1}
}

// Scheme returns the lowercased scheme.
func (u *URL) Scheme() string { return u.scheme }

// IsSpecial reports whether the scheme is one of ftp, file, http,
// https, ws or wss.
func (u *URL) IsSpecial() bool {
	_, ok := defaultPorts[u.scheme]
	return ok
}

// Username returns the already-percent-encoded username.
func (u *URL) Username() string { return u.username }

// Password returns the already-percent-encoded password.
func (u *URL) Password() string { return u.password }

// Host returns the host variant.
func (u *URL) Host() host.Host { return u.host }

// Port returns the explicit port, if any. A port equal to the
// scheme's default is reported as absent.
func (u *URL) Port() (int, bool) {
	if u.port < 0 {
		return 0, false
	}
	return u.port, true
}

// HasOpaquePath reports whether the path is a single opaque string.
func (u *URL) HasOpaquePath() bool { return u.isOpaque }

// OpaquePath returns the opaque path string.
func (u *URL) OpaquePath() (string, bool) {
	return u.opaque, u.isOpaque
}

// PathSegments returns a copy of the structured path segments.
func (u *URL) PathSegments() []string {
	return slices.Clone(u.path)
}

// Query returns the already-encoded query and whether one is present.
// An empty present query means the input carried a bare ?.
func (u *URL) Query() (string, bool) {
	if u.query == nil {
		return "", false
	}
	return *u.query, true
}

// Fragment returns the already-encoded fragment and whether one is
// present.
func (u *URL) Fragment() (string, bool) {
	if u.fragment == nil {
		return "", false
	}
	return *u.fragment, true
}

// String returns the canonical serialization.
func (u *URL) String() string {
	return u.Serialize(nil)
}

func (u *URL) defaultPort() int {
	return defaultPorts[u.scheme]
}

// shortenPath removes the last path segment, except that the drive
// letter of a file URL is never popped.
func (u *URL) shortenPath() {
	if u.scheme == "file" && len(u.path) == 1 && isWindowsDriveLetter(u.path[0]) {
		return
	}
	if len(u.path) > 0 {
		u.path = u.path[:len(u.path)-1]
	}
}

func cloneOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
