package safeurl

// The parser states. The machine is a single loop with a cursor that
// states may rewind to hand the current code point to the next state.
type state uint8

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

var stateNames = [...]string{
	stateSchemeStart:                   "scheme start",
	stateScheme:                        "scheme",
	stateNoScheme:                      "no scheme",
	stateSpecialRelativeOrAuthority:    "special relative or authority",
	statePathOrAuthority:               "path or authority",
	stateRelative:                      "relative",
	stateRelativeSlash:                 "relative slash",
	stateSpecialAuthoritySlashes:       "special authority slashes",
	stateSpecialAuthorityIgnoreSlashes: "special authority ignore slashes",
	stateAuthority:                     "authority",
	stateHost:                          "host",
	statePort:                          "port",
	stateFile:                          "file",
	stateFileSlash:                     "file slash",
	stateFileHost:                      "file host",
	statePathStart:                     "path start",
	statePath:                          "path",
	stateOpaquePath:                    "opaque path",
	stateQuery:                        "query",
	stateFragment:                      "fragment",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
