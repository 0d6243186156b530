package safeurl

import (
	"slices"
	"strconv"
	"strings"

	"github.com/rohmanhakim/safeurl/internal/encodeset"
	"github.com/rohmanhakim/safeurl/internal/encoding"
	"github.com/rohmanhakim/safeurl/internal/host"
	"github.com/rohmanhakim/safeurl/internal/infra"
)

// ParseOptions adjusts parsing without deviating from the standard by
// default: the zero value parses with the standard's encode sets, no
// base URL and UTF-8.
type ParseOptions struct {
	// BaseURL, when non-empty, is parsed first and relative input is
	// resolved against it.
	BaseURL string
	// Encoding is an encoding label from the Encoding standard; the
	// query of a special non-WebSocket URL is transcoded to it.
	// Empty means UTF-8.
	Encoding string

	// The per-component percent-encode sets. Nil means the set the
	// standard prescribes. The sanitizer swaps in the safest sets.
	UserinfoSet     *encodeset.Set
	PathSet         *encodeset.Set
	QuerySet        *encodeset.Set
	SpecialQuerySet *encodeset.Set
	FragmentSet     *encodeset.Set

	// Sink receives non-fatal validation issues.
	Sink ValidationSink
}

func (o *ParseOptions) sink() ValidationSink {
	if o == nil || o.Sink == nil {
		return noopSink{}
	}
	return o.Sink
}

func pickSet(override *encodeset.Set, standard encodeset.Set) encodeset.Set {
	if override != nil {
		return *override
	}
	return standard
}

// Parse builds a URL record from rawURL following the URL standard's
// parsing algorithm. Syntactic constructs the standard treats as hard
// failures return an error; mere validation issues are reported to
// the options' sink and parsing continues.
func Parse(rawURL string, opts *ParseOptions) (*URL, error) {
	var base *URL
	if opts != nil && opts.BaseURL != "" {
		baseOpts := *opts
		baseOpts.BaseURL = ""
		var err error
		base, err = Parse(opts.BaseURL, &baseOpts)
		if err != nil {
			return nil, err
		}
	}

	label := "utf-8"
	if opts != nil && opts.Encoding != "" {
		label = opts.Encoding
	}
	outputEncoding, err := encoding.OutputEncoding(label)
	if err != nil {
		return nil, err
	}

	resolved := &ParseOptions{}
	if opts != nil {
		resolved = opts
	}
	p := &parser{
		base:            base,
		url:             newURL(),
		state:           stateSchemeStart,
		encoding:        outputEncoding,
		userinfoSet:     pickSet(resolved.UserinfoSet, encodeset.Userinfo),
		pathSet:         pickSet(resolved.PathSet, encodeset.Path),
		querySet:        pickSet(resolved.QuerySet, encodeset.Query),
		specialQuerySet: pickSet(resolved.SpecialQuerySet, encodeset.SpecialQuery),
		fragmentSet:     pickSet(resolved.FragmentSet, encodeset.Fragment),
		sink:            resolved.sink(),
	}
	p.setInput(rawURL)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.url, nil
}

const eof rune = -1

type parser struct {
	input   []rune
	pointer int
	buffer  []rune
	state   state

	base *URL
	url  *URL

	encoding string

	userinfoSet     encodeset.Set
	pathSet         encodeset.Set
	querySet        encodeset.Set
	specialQuerySet encodeset.Set
	fragmentSet     encodeset.Set

	sink ValidationSink

	atSignSeen       bool
	insideBrackets   bool
	authorityDecided bool
	skipAuthority    bool
}

// setInput applies the input preprocessing: strip leading and
// trailing C0 controls and spaces, delete interior tabs and newlines.
func (p *parser) setInput(rawURL string) {
	trimmed := strings.TrimFunc(rawURL, infra.IsC0ControlOrSpace)
	if trimmed != rawURL {
		p.sink.RecordIssue(p.state.String(), CauseControlStripped, "")
	}
	if strings.ContainsFunc(trimmed, infra.IsASCIITabOrNewline) {
		p.sink.RecordIssue(p.state.String(), CauseTabOrNewlineRemoved, "")
		trimmed = strings.Map(func(r rune) rune {
			if infra.IsASCIITabOrNewline(r) {
				return -1
			}
			return r
		}, trimmed)
	}
	p.input = []rune(trimmed)
}

func (p *parser) issue(cause IssueCause, detail string) {
	p.sink.RecordIssue(p.state.String(), cause, detail)
}

func (p *parser) current() rune {
	if p.pointer >= 0 && p.pointer < len(p.input) {
		return p.input[p.pointer]
	}
	return eof
}

func (p *parser) nextIs(r rune) bool {
	return p.pointer+1 < len(p.input) && p.input[p.pointer+1] == r
}

func (p *parser) remaining() []rune {
	if p.pointer < 0 || p.pointer > len(p.input) {
		return nil
	}
	return p.input[p.pointer:]
}

func isSchemeChar(r rune) bool {
	return infra.IsASCIIAlphanumeric(r) || r == '+' || r == '-' || r == '.'
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func (p *parser) run() error {
	for {
		c := p.current()
		if err := p.step(c); err != nil {
			return err
		}
		if p.pointer >= len(p.input) {
			return nil
		}
		p.pointer++
	}
}

func (p *parser) step(c rune) error {
	special := p.url.IsSpecial()

	switch p.state {
	case stateSchemeStart:
		if c != eof && infra.IsASCIIAlpha(c) {
			p.buffer = append(p.buffer, lowerASCII(c))
			p.state = stateScheme
		} else {
			p.state = stateNoScheme
			p.pointer--
		}

	case stateScheme:
		switch {
		case c != eof && isSchemeChar(c):
			p.buffer = append(p.buffer, lowerASCII(c))
		case c == ':':
			p.url.scheme = string(p.buffer)
			p.buffer = nil
			switch {
			case p.url.scheme == "file":
				if !(p.nextIs('/') && p.pointer+2 < len(p.input) && p.input[p.pointer+2] == '/') {
					p.issue(CauseExpectedDoubleSlash, "file scheme")
				}
				p.state = stateFile
			case p.url.IsSpecial():
				if p.base != nil && p.base.scheme == p.url.scheme {
					p.state = stateSpecialRelativeOrAuthority
				} else {
					p.state = stateSpecialAuthoritySlashes
				}
			case p.nextIs('/'):
				p.state = statePathOrAuthority
				p.pointer++
			default:
				p.url.isOpaque = true
				p.url.opaque = ""
				p.state = stateOpaquePath
			}
		default:
			p.buffer = nil
			p.state = stateNoScheme
			p.pointer = -1
		}

	case stateNoScheme:
		if p.base == nil {
			return parseError(ErrCauseMissingScheme, "")
		}
		if p.base.isOpaque {
			if c != '#' {
				return parseError(ErrCauseOpaqueBase, "")
			}
			p.url.scheme = p.base.scheme
			p.url.isOpaque = true
			p.url.opaque = p.base.opaque
			p.url.query = cloneOptional(p.base.query)
			empty := ""
			p.url.fragment = &empty
			p.state = stateFragment
		} else {
			if p.base.scheme != "file" {
				p.state = stateRelative
			} else {
				p.state = stateFile
			}
			p.pointer--
		}

	case stateSpecialRelativeOrAuthority:
		if c == '/' && p.nextIs('/') {
			p.state = stateSpecialAuthorityIgnoreSlashes
			p.pointer++
		} else {
			p.issue(CauseExpectedDoubleSlash, "")
			p.state = stateRelative
			p.pointer--
		}

	case statePathOrAuthority:
		if c == '/' {
			p.state = stateAuthority
		} else {
			p.state = statePath
			p.pointer--
		}

	case stateRelative:
		p.url.scheme = p.base.scheme
		if c == '/' || (p.url.IsSpecial() && c == '\\') {
			if c == '\\' {
				p.issue(CauseBackslashAsSlash, "")
			}
			p.state = stateRelativeSlash
		} else {
			p.url.username = p.base.username
			p.url.password = p.base.password
			p.url.host = p.base.host
			p.url.port = p.base.port
			p.url.path = slices.Clone(p.base.path)
			p.url.query = cloneOptional(p.base.query)
			switch {
			case c == '?':
				empty := ""
				p.url.query = &empty
				p.state = stateQuery
			case c == '#':
				empty := ""
				p.url.fragment = &empty
				p.state = stateFragment
			case c != eof:
				p.url.query = nil
				p.url.shortenPath()
				p.state = statePath
				p.pointer--
			}
		}

	case stateRelativeSlash:
		switch {
		case p.url.IsSpecial() && (c == '/' || c == '\\'):
			if c == '\\' {
				p.issue(CauseBackslashAsSlash, "")
			}
			p.state = stateSpecialAuthorityIgnoreSlashes
		case c == '/':
			p.state = stateAuthority
		default:
			p.url.username = p.base.username
			p.url.password = p.base.password
			p.url.host = p.base.host
			p.url.port = p.base.port
			p.state = statePath
			p.pointer--
		}

	case stateSpecialAuthoritySlashes:
		if c == '/' && p.nextIs('/') {
			p.state = stateSpecialAuthorityIgnoreSlashes
			p.pointer++
		} else {
			p.issue(CauseExpectedDoubleSlash, "")
			p.state = stateSpecialAuthorityIgnoreSlashes
			p.pointer--
		}

	case stateSpecialAuthorityIgnoreSlashes:
		if c != '/' && c != '\\' {
			p.state = stateAuthority
			p.pointer--
		} else {
			p.issue(CauseExpectedDoubleSlash, "extra slash")
		}

	case stateAuthority:
		// Fast path: when the authority carries no credentials the
		// whole userinfo machinery can be skipped and the host state
		// reads the same code points directly.
		if !p.authorityDecided {
			p.authorityDecided = true
			p.skipAuthority = !p.authorityHasAtSign()
		}
		if p.skipAuthority {
			p.state = stateHost
			p.pointer--
			break
		}
		switch {
		case c == '@':
			p.issue(CauseEmbeddedCredentials, "")
			if p.atSignSeen {
				p.buffer = append([]rune("%40"), p.buffer...)
			}
			p.atSignSeen = true
			for i := range p.buffer {
				if p.buffer[i] == ':' && !p.url.passwordTokenSeen {
					p.url.passwordTokenSeen = true
					continue
				}
				encoded := encoding.IdempotentUTF8PercentEncode(p.buffer, i, p.userinfoSet)
				if p.url.passwordTokenSeen {
					p.url.password += encoded
				} else {
					p.url.username += encoded
				}
			}
			p.buffer = nil
		case c == eof || c == '/' || c == '?' || c == '#' || (special && c == '\\'):
			if p.atSignSeen && len(p.buffer) == 0 {
				return parseError(ErrCauseCredentialsWithoutHost, "")
			}
			p.pointer -= len(p.buffer) + 1
			p.buffer = nil
			p.state = stateHost
		default:
			p.buffer = append(p.buffer, c)
		}

	case stateHost:
		switch {
		case c == ':' && !p.insideBrackets:
			if len(p.buffer) == 0 {
				return parseError(ErrCauseEmptyHost, "colon without host")
			}
			h, err := host.Parse(string(p.buffer), special)
			if err != nil {
				return err
			}
			p.url.host = h
			p.buffer = nil
			p.state = statePort
			p.url.portTokenSeen = true
		case c == eof || c == '/' || c == '?' || c == '#' || (special && c == '\\'):
			p.pointer--
			if special && len(p.buffer) == 0 {
				return parseError(ErrCauseEmptyHost, "")
			}
			h, err := host.Parse(string(p.buffer), special)
			if err != nil {
				return err
			}
			p.url.host = h
			p.buffer = nil
			p.state = statePathStart
		default:
			if c == '[' {
				p.insideBrackets = true
			} else if c == ']' {
				p.insideBrackets = false
			}
			p.buffer = append(p.buffer, c)
		}

	case statePort:
		switch {
		case c != eof && infra.IsASCIIDigit(c):
			p.buffer = append(p.buffer, c)
		case c == eof || c == '/' || c == '?' || c == '#' || (special && c == '\\'):
			if len(p.buffer) > 0 {
				port, err := strconv.Atoi(string(p.buffer))
				if err != nil || port > 65535 {
					return parseError(ErrCausePortOutOfRange, "%s", string(p.buffer))
				}
				if dp := p.url.defaultPort(); dp != 0 && dp == port {
					p.url.port = -1
					p.url.defaultPortSeen = true
				} else {
					p.url.port = port
				}
				p.buffer = nil
			}
			p.state = statePathStart
			p.pointer--
		default:
			return parseError(ErrCauseInvalidPort, "%q", string(c))
		}

	case stateFile:
		p.url.scheme = "file"
		p.url.host = host.Empty()
		if c == '/' || c == '\\' {
			if c == '\\' {
				p.issue(CauseBackslashAsSlash, "")
			}
			p.state = stateFileSlash
		} else if p.base != nil && p.base.scheme == "file" {
			p.url.host = p.base.host
			p.url.path = slices.Clone(p.base.path)
			p.url.query = cloneOptional(p.base.query)
			switch {
			case c == '?':
				empty := ""
				p.url.query = &empty
				p.state = stateQuery
			case c == '#':
				empty := ""
				p.url.fragment = &empty
				p.state = stateFragment
			case c != eof:
				p.url.query = nil
				if !startsWithWindowsDriveLetter(p.remaining()) {
					p.url.shortenPath()
				} else {
					p.url.path = nil
				}
				p.state = statePath
				p.pointer--
			}
		} else {
			p.state = statePath
			p.pointer--
		}

	case stateFileSlash:
		if c == '/' || c == '\\' {
			if c == '\\' {
				p.issue(CauseBackslashAsSlash, "")
			}
			p.state = stateFileHost
		} else {
			if p.base != nil && p.base.scheme == "file" {
				p.url.host = p.base.host
				if !startsWithWindowsDriveLetter(p.remaining()) &&
					len(p.base.path) > 0 && isNormalizedWindowsDriveLetter(p.base.path[0]) {
					p.url.path = append(p.url.path, p.base.path[0])
				}
			}
			p.state = statePath
			p.pointer--
		}

	case stateFileHost:
		if c == eof || c == '/' || c == '\\' || c == '?' || c == '#' {
			p.pointer--
			switch {
			case isWindowsDriveLetter(string(p.buffer)):
				p.issue(CauseWindowsDriveLetterHost, string(p.buffer))
				p.state = statePath
				// Buffer kept: the drive letter is the first path
				// segment.
			case len(p.buffer) == 0:
				p.url.host = host.Empty()
				p.state = statePathStart
			default:
				h, err := host.Parse(string(p.buffer), true)
				if err != nil {
					return err
				}
				if h.Kind() == host.KindDomain && h.Name() == "localhost" {
					h = host.Empty()
				}
				p.url.host = h
				p.buffer = nil
				p.state = statePathStart
			}
		} else {
			p.buffer = append(p.buffer, c)
		}

	case statePathStart:
		if special {
			p.state = statePath
			if c == '\\' {
				p.issue(CauseBackslashAsSlash, "")
			}
			if c != '/' && c != '\\' {
				p.pointer--
			} else {
				p.url.pathTokenSeen = true
			}
		} else if c == '?' {
			empty := ""
			p.url.query = &empty
			p.state = stateQuery
		} else if c == '#' {
			empty := ""
			p.url.fragment = &empty
			p.state = stateFragment
		} else if c != eof {
			p.state = statePath
			if c != '/' {
				p.pointer--
			} else {
				p.url.pathTokenSeen = true
			}
		}

	case statePath:
		if c == eof || c == '/' || (special && c == '\\') || c == '?' || c == '#' {
			if c == '\\' {
				p.issue(CauseBackslashAsSlash, "")
			}
			buf := string(p.buffer)
			switch {
			case isDoubleDotSegment(buf):
				p.url.shortenPath()
				if c != '/' && !(special && c == '\\') {
					p.url.path = append(p.url.path, "")
				}
			case isSingleDotSegment(buf):
				if c != '/' && !(special && c == '\\') {
					p.url.path = append(p.url.path, "")
				}
			default:
				if p.url.scheme == "file" && len(p.url.path) == 0 && isWindowsDriveLetter(buf) {
					buf = buf[:1] + ":" + buf[2:]
				}
				p.url.path = append(p.url.path, buf)
			}
			p.buffer = nil
			if c == '?' {
				empty := ""
				p.url.query = &empty
				p.state = stateQuery
			} else if c == '#' {
				empty := ""
				p.url.fragment = &empty
				p.state = stateFragment
			}
		} else {
			p.checkComponentCodePoint(c)
			p.buffer = append(p.buffer, []rune(encoding.IdempotentUTF8PercentEncode(p.input, p.pointer, p.pathSet))...)
		}

	case stateOpaquePath:
		switch {
		case c == '?':
			empty := ""
			p.url.query = &empty
			p.state = stateQuery
		case c == '#':
			empty := ""
			p.url.fragment = &empty
			p.state = stateFragment
		case c != eof:
			p.checkComponentCodePoint(c)
			p.url.opaque += encoding.IdempotentUTF8PercentEncode(p.input, p.pointer, encodeset.C0Control)
		}

	case stateQuery:
		if p.encoding != "utf-8" && (!special || p.url.scheme == "ws" || p.url.scheme == "wss") {
			p.encoding = "utf-8"
		}
		if c == '#' || c == eof {
			set := p.querySet
			if special {
				set = p.specialQuerySet
			}
			encoded, err := encoding.PercentEncodeAfterEncoding(string(p.buffer), p.encoding, set, false)
			if err != nil {
				return err
			}
			*p.url.query += encoded
			p.buffer = nil
			if c == '#' {
				empty := ""
				p.url.fragment = &empty
				p.state = stateFragment
			}
		} else {
			p.checkComponentCodePoint(c)
			p.buffer = append(p.buffer, c)
		}

	case stateFragment:
		if c != eof {
			p.checkComponentCodePoint(c)
			*p.url.fragment += encoding.IdempotentUTF8PercentEncode(p.input, p.pointer, p.fragmentSet)
		}
	}
	return nil
}

// authorityHasAtSign scans ahead from the cursor for an @ before the
// end of the authority.
func (p *parser) authorityHasAtSign() bool {
	for i := p.pointer; i >= 0 && i < len(p.input); i++ {
		switch p.input[i] {
		case '@':
			return true
		case '/', '?', '#':
			return false
		case '\\':
			if p.url.IsSpecial() {
				return false
			}
		}
	}
	return false
}

// checkComponentCodePoint reports validation issues for literal code
// points the standard frowns on. Never fatal.
func (p *parser) checkComponentCodePoint(c rune) {
	if c == '%' {
		if p.pointer+2 >= len(p.input) ||
			!infra.IsASCIIHexDigit(p.input[p.pointer+1]) ||
			!infra.IsASCIIHexDigit(p.input[p.pointer+2]) {
			p.issue(CauseStrayPercent, "")
		}
		return
	}
	if !infra.IsURLCodePoint(c) {
		p.issue(CauseUnexpectedCodePoint, strconv.QuoteRune(c))
	}
}

// isWindowsDriveLetter reports whether s is an ASCII letter followed
// by a colon or pipe.
func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && infra.IsASCIIAlpha(rune(s[0])) && (s[1] == ':' || s[1] == '|')
}

// isNormalizedWindowsDriveLetter only accepts the colon form.
func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && infra.IsASCIIAlpha(rune(s[0])) && s[1] == ':'
}

// startsWithWindowsDriveLetter reports whether the remaining input
// begins with a drive letter that is the whole segment.
func startsWithWindowsDriveLetter(remaining []rune) bool {
	if len(remaining) < 2 {
		return false
	}
	if !isWindowsDriveLetter(string(remaining[:2])) {
		return false
	}
	if len(remaining) == 2 {
		return true
	}
	switch remaining[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}

func isDoubleDotSegment(s string) bool {
	switch strings.ToLower(s) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}

func isSingleDotSegment(s string) bool {
	switch strings.ToLower(s) {
	case ".", "%2e":
		return true
	}
	return false
}
