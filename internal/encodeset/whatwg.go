package encodeset

// The named percent-encode sets of the URL standard. Each component
// of a URL is escaped against its own set; the special-scheme query
// set additionally escapes the apostrophe.

func c0Control() string {
	b := make([]rune, 0x20)
	for i := range b {
		b[i] = rune(i)
	}
	return string(b)
}

var (
	// C0Control escapes the C0 controls and everything above ~.
	C0Control = NewWithThreshold(c0Control(), DefaultThreshold)

	// Fragment is the C0 control set plus space, quote, angle
	// brackets and backtick.
	Fragment = C0Control.Add(" \"<>`")

	// Query is the C0 control set plus space, quote, hash and angle
	// brackets.
	Query = C0Control.Add(" \"#<>")

	// SpecialQuery is Query plus the apostrophe, used for queries of
	// special-scheme URLs.
	SpecialQuery = Query.Add("'")

	// Path is Query plus question mark, backtick and curly braces.
	Path = Query.Add("?`{}")

	// Userinfo is Path plus the authority delimiters.
	Userinfo = Path.Add("/:;=@[\\]^|")
)
