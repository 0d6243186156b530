package host_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohmanhakim/safeurl/internal/host"
)

func TestParseIPv4(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"192.168.0.1", 0xC0A80001},
		{"127.0.0.1", 0x7F000001},
		{"0x7f.0.0.1", 0x7F000001},
		{"0X7F.0.0.1", 0x7F000001},
		{"0177.0.0.1", 0x7F000001},
		{"127.0.0.1.", 0x7F000001},
		{"192.168.1", 0xC0A80001},
		{"192.1", 0xC0000001},
		{"2130706433", 0x7F000001},
		{"0xFFFFFFFF", 0xFFFFFFFF},
		{"0", 0},
		{"0x0", 0},
	}
	for _, tc := range cases {
		got, err := host.ParseIPv4(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseIPv4Errors(t *testing.T) {
	for _, in := range []string{
		"256.1.1.1",
		"1.2.3.256",
		"1.2.3.4.5",
		"0x100000000",
		"1..2.3",
		"192.168.0.1.1",
		"0o10.1.1.1",
		"09.1.1.1",
	} {
		_, err := host.ParseIPv4(in)
		assert.Error(t, err, in)
	}
}

func TestSerializeIPv4RoundTrip(t *testing.T) {
	for _, addr := range []uint32{0, 1, 0x7F000001, 0xC0A80001, 0xFFFFFFFF} {
		serialized := host.SerializeIPv4(addr)
		got, err := host.ParseIPv4(serialized)
		require.NoError(t, err, serialized)
		assert.Equal(t, addr, got, serialized)
	}
	assert.Equal(t, "127.0.0.1", host.SerializeIPv4(0x7F000001))
	assert.Equal(t, "255.255.255.255", host.SerializeIPv4(0xFFFFFFFF))
}

func TestEndsInNumber(t *testing.T) {
	yes := []string{"1.2.3.4", "example.1", "example.0x1F", "example.0777", "1"}
	no := []string{"example.com", "1.2.3.4a", "example.", "", "example.1x2"}
	for _, in := range yes {
		assert.True(t, host.EndsInNumber(in), in)
	}
	for _, in := range no {
		assert.False(t, host.EndsInNumber(in), in)
	}
}

func TestParseIPv6(t *testing.T) {
	cases := []struct {
		in   string
		want [8]uint16
	}{
		{"::1", [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}},
		{"::", [8]uint16{}},
		{"1:2:3:4:5:6:7:8", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}},
		{"2001:db8::1", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}},
		{"1::8", [8]uint16{1, 0, 0, 0, 0, 0, 0, 8}},
		{"fe80::", [8]uint16{0xfe80, 0, 0, 0, 0, 0, 0, 0}},
		{"::ffff:192.168.0.1", [8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc0a8, 0x0001}},
		{"1:2:3:4:5:6:7.8.9.10", [8]uint16{1, 2, 3, 4, 5, 6, 0x0708, 0x090a}},
		{"ABCD::ef01", [8]uint16{0xabcd, 0, 0, 0, 0, 0, 0, 0xef01}},
	}
	for _, tc := range cases {
		got, err := host.ParseIPv6(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseIPv6Errors(t *testing.T) {
	for _, in := range []string{
		"",
		":",
		":1",
		"1:",
		"1:2:3:4:5:6:7",
		"1:2:3:4:5:6:7:8:9",
		"::1::",
		"1::2::3",
		"12345::",
		"g::1",
		"::256.1.1.1",
		"::1.2.3",
		"::1.2.3.4.5",
		"::01.2.3.4",
		"1:2:3:4:5:6:7:1.2.3.4",
	} {
		_, err := host.ParseIPv6(in)
		assert.Error(t, err, in)
	}
}

func TestSerializeIPv6(t *testing.T) {
	cases := []struct {
		in   [8]uint16
		want string
	}{
		{[8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, "::1"},
		{[8]uint16{}, "::"},
		{[8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, "1:2:3:4:5:6:7:8"},
		{[8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, "2001:db8::1"},
		{[8]uint16{1, 0, 0, 0, 0, 0, 0, 0}, "1::"},
		// The leftmost of two equally long zero runs compresses.
		{[8]uint16{1, 0, 0, 2, 0, 0, 3, 4}, "1::2:0:0:3:4"},
		// A single zero piece never compresses.
		{[8]uint16{1, 0, 2, 3, 4, 5, 6, 7}, "1:0:2:3:4:5:6:7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, host.SerializeIPv6(tc.in))
	}
}

func TestSerializeIPv6RoundTrip(t *testing.T) {
	inputs := []string{"::1", "2001:db8::8:800:200c:417a", "fe80::", "1:2:3:4:5:6:7:8"}
	for _, in := range inputs {
		pieces, err := host.ParseIPv6(in)
		require.NoError(t, err, in)
		serialized := host.SerializeIPv6(pieces)
		reparsed, err := host.ParseIPv6(serialized)
		require.NoError(t, err, serialized)
		assert.Equal(t, pieces, reparsed, in)
	}
}

func TestParseHostDispatch(t *testing.T) {
	h, err := host.Parse("[::1]", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindIPv6, h.Kind())
	assert.Equal(t, "[::1]", h.Serialize())

	_, err = host.Parse("[::1", true)
	require.Error(t, err)

	h, err = host.Parse("EXAMPLE.com", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindDomain, h.Kind())
	assert.Equal(t, "example.com", h.Serialize())

	h, err = host.Parse("192.168.0.1", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindIPv4, h.Kind())
	assert.Equal(t, "192.168.0.1", h.Serialize())

	h, err = host.Parse("0x7f.0.0.1", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindIPv4, h.Kind())
	assert.Equal(t, "127.0.0.1", h.Serialize())

	// Percent-encoded bytes are decoded before IDNA.
	h, err = host.Parse("ex%61mple.com", true)
	require.NoError(t, err)
	assert.Equal(t, "example.com", h.Serialize())

	h, err = host.Parse("b%C3%BCcher.example", true)
	require.NoError(t, err)
	assert.Equal(t, "xn--bcher-kva.example", h.Serialize())

	// International domains.
	h, err = host.Parse("例え.テスト", true)
	require.NoError(t, err)
	assert.Equal(t, "xn--r8jz45g.xn--zckzah", h.Serialize())
}

func TestParseHostForbiddenCodePoints(t *testing.T) {
	for _, in := range []string{"exa mple.com", "exam<ple.com", "ex|ample.com", "ex^ample.com"} {
		_, err := host.Parse(in, true)
		assert.Error(t, err, in)
	}
	// An opaque host refuses the forbidden set too.
	for _, in := range []string{"a b", "a#b", "a/b", "a@b", "a[b"} {
		_, err := host.Parse(in, false)
		assert.Error(t, err, in)
	}
}

func TestParseOpaqueHost(t *testing.T) {
	h, err := host.Parse("hostname", false)
	require.NoError(t, err)
	assert.Equal(t, host.KindOpaque, h.Kind())
	assert.Equal(t, "hostname", h.Serialize())

	// Uppercase survives; opaque hosts are not domains.
	h, err = host.Parse("HostName", false)
	require.NoError(t, err)
	assert.Equal(t, "HostName", h.Serialize())

	// Non-ASCII is percent-encoded, not IDNA-mapped.
	h, err = host.Parse("bücher", false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h.Serialize(), "b%C3%BC"))
}

func TestHostVariant(t *testing.T) {
	assert.False(t, host.None().IsPresent())
	assert.True(t, host.Empty().IsPresent())
	assert.Equal(t, "", host.Empty().Serialize())
	assert.Equal(t, "<none>", host.None().String())
}
