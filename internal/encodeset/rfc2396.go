package encodeset

// RFC 2396 derived sets, the predecessor grammar. The safest sets
// union these with the RFC 3986 and URL-standard sets so the output
// is legal under all three.

const (
	rfc2396Mark       = "-_.!~*'()"
	rfc2396Unreserved = asciiAlphanumeric + rfc2396Mark
	rfc2396Reserved   = ";/?:@&=+$,"
)

var (
	// RFC2396Userinfo allows unreserved plus the userinfo extras.
	RFC2396Userinfo = NewExcluding(rfc2396Unreserved + ";:&=+$,")

	// RFC2396AbsPath allows pchar, the parameter separator and the
	// segment separator.
	RFC2396AbsPath = NewExcluding(rfc2396Unreserved + ":@&=+$,;/")

	// RFC2396Query allows any uric character.
	RFC2396Query = NewExcluding(rfc2396Unreserved + rfc2396Reserved)

	// RFC2396Fragment has the same grammar as the query.
	RFC2396Fragment = RFC2396Query
)
