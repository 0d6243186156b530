package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohmanhakim/safeurl/internal/encodeset"
	"github.com/rohmanhakim/safeurl/internal/encoding"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"utf-8", "utf-8"},
		{"UTF8", "utf-8"},
		{"  utf-8\t", "utf-8"},
		{"latin1", "windows-1252"},
		{"ascii", "windows-1252"},
		{"l1", "windows-1252"},
		{"iso-8859-9", "windows-1254"},
		{"tis-620", "windows-874"},
		{"sjis", "shift_jis"},
		{"korean", "euc-kr"},
		{"gb2312", "gbk"},
		{"unicodefffe", "utf-16be"},
		{"ucs-2", "utf-16le"},
		{"hz-gb-2312", "replacement"},
		{"x-user-defined", "x-user-defined"},
	}
	for _, tc := range cases {
		got, err := encoding.Lookup(tc.label)
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}
}

func TestLookupUnknownLabel(t *testing.T) {
	_, err := encoding.Lookup("martian")
	require.Error(t, err)
	var labelErr *encoding.LabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, "martian", labelErr.Label)
}

func TestOutputEncoding(t *testing.T) {
	for _, label := range []string{"utf-16", "utf-16be", "replacement", "iso-2022-kr"} {
		got, err := encoding.OutputEncoding(label)
		require.NoError(t, err, label)
		assert.Equal(t, "utf-8", got, label)
	}
	got, err := encoding.OutputEncoding("latin1")
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", got)
}

func TestPercentEncodeUTF8(t *testing.T) {
	got, err := encoding.PercentEncodeAfterEncoding("a b", "utf-8", encodeset.Query, false)
	require.NoError(t, err)
	assert.Equal(t, "a%20b", got)

	got, err = encoding.PercentEncodeAfterEncoding("a b", "utf-8", encodeset.Query, true)
	require.NoError(t, err)
	assert.Equal(t, "a+b", got)

	// Non-ASCII always lands above the threshold.
	got, err = encoding.PercentEncodeAfterEncoding("µ", "utf-8", encodeset.Query, false)
	require.NoError(t, err)
	assert.Equal(t, "%C2%B5", got)
}

func TestPercentEncodeIdempotency(t *testing.T) {
	// The safest sets escape %, which arms the idempotency rule.
	got, err := encoding.PercentEncodeAfterEncoding("100%25", "utf-8", encodeset.SafestQuery, false)
	require.NoError(t, err)
	assert.Equal(t, "100%25", got)

	got, err = encoding.PercentEncodeAfterEncoding("100%", "utf-8", encodeset.SafestQuery, false)
	require.NoError(t, err)
	assert.Equal(t, "100%25", got)

	got, err = encoding.PercentEncodeAfterEncoding("%zz", "utf-8", encodeset.SafestQuery, false)
	require.NoError(t, err)
	assert.Equal(t, "%25zz", got)

	// The standard query set does not escape %, so a stray one is
	// emitted untouched.
	got, err = encoding.PercentEncodeAfterEncoding("100%", "utf-8", encodeset.Query, false)
	require.NoError(t, err)
	assert.Equal(t, "100%", got)
}

func TestPercentEncodeLegacyCodec(t *testing.T) {
	got, err := encoding.PercentEncodeAfterEncoding("unit=µ", "windows-1252", encodeset.SpecialQuery, false)
	require.NoError(t, err)
	assert.Equal(t, "unit=%B5", got)

	// Unmappable code points become percent-encoded XML references.
	got, err = encoding.PercentEncodeAfterEncoding("テ", "windows-1252", encodeset.SpecialQuery, false)
	require.NoError(t, err)
	assert.Equal(t, "%26%2312486%3B", got)
}

func TestUTF8PercentEncode(t *testing.T) {
	assert.Equal(t, "a", encoding.UTF8PercentEncode('a', encodeset.Path))
	assert.Equal(t, "%20", encoding.UTF8PercentEncode(' ', encodeset.Path))
	assert.Equal(t, "%C2%A3", encoding.UTF8PercentEncode('£', encodeset.Path))
}

func TestIdempotentUTF8PercentEncode(t *testing.T) {
	input := []rune("a%2Fb%zz")
	set := encodeset.SafestPath
	assert.Equal(t, "a", encoding.IdempotentUTF8PercentEncode(input, 0, set))
	// %2F introduces a valid escape and is passed through.
	assert.Equal(t, "%", encoding.IdempotentUTF8PercentEncode(input, 1, set))
	// The second % has no hex digits after it.
	assert.Equal(t, "%25", encoding.IdempotentUTF8PercentEncode(input, 5, set))
	// A % at the very end cannot introduce an escape.
	assert.Equal(t, "%25", encoding.IdempotentUTF8PercentEncode([]rune("a%"), 1, set))
}

func TestPercentDecode(t *testing.T) {
	assert.Equal(t, []byte("Hello"), encoding.PercentDecodeString("%48%65llo"))
	assert.Equal(t, []byte("%zz"), encoding.PercentDecodeString("%zz"))
	assert.Equal(t, []byte("%"), encoding.PercentDecodeString("%"))
	assert.Equal(t, []byte("%4"), encoding.PercentDecodeString("%4"))
	assert.Equal(t, []byte{0xC2, 0xB5}, encoding.PercentDecodeString("%C2%B5"))
}
