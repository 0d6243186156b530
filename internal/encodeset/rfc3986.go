package encodeset

// RFC 3986 derived sets, built with the exclude-mode constructor: the
// RFC names the characters a component may carry unescaped, so the
// encode set is everything else.

const (
	asciiAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	rfc3986Unreserved = asciiAlphanumeric + "-._~"
	rfc3986SubDelims  = "!$&'()*+,;="
)

var (
	// RFC3986Unreserved escapes everything except the unreserved
	// characters.
	RFC3986Unreserved = NewExcluding(rfc3986Unreserved)

	// RFC3986SubDelims escapes everything except the sub-delims.
	RFC3986SubDelims = NewExcluding(rfc3986SubDelims)

	// RFC3986Userinfo allows unreserved, sub-delims and the colon.
	RFC3986Userinfo = RFC3986Unreserved.Intersect(RFC3986SubDelims).Sub(":")

	// RFC3986Path allows pchar plus the segment separator.
	RFC3986Path = RFC3986Unreserved.Intersect(RFC3986SubDelims).Sub(":@/")

	// RFC3986Query allows pchar plus slash and question mark.
	RFC3986Query = RFC3986Path.Sub("?")

	// RFC3986Fragment has the same grammar as the query.
	RFC3986Fragment = RFC3986Query
)
