package encodeset

// The safest sets escape any character that at least one of the three
// grammars (URL standard, RFC 3986, RFC 2396) requires escaped. A URL
// encoded against them parses identically under all three, which is
// what the sanitizer wants. Note every safest set contains %, so the
// idempotent encoding rule applies and existing %HH escapes survive.

var (
	SafestUserinfo = Userinfo.Union(RFC3986Userinfo).Union(RFC2396Userinfo)

	SafestPath = Path.Union(RFC3986Path).Union(RFC2396AbsPath)

	SafestQuery = Query.Union(RFC3986Query).Union(RFC2396Query)

	SafestSpecialQuery = SafestQuery.Add("'")

	SafestFragment = Fragment.Union(RFC3986Fragment).Union(RFC2396Fragment)
)
