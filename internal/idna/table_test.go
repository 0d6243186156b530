package idna

import (
	"strings"
	"testing"
)

func TestMappingTableEntries(t *testing.T) {
	cases := []struct {
		r       rune
		status  status
		mapping string
	}{
		{'a', statusValid, ""},
		{'-', statusValid, ""},
		{'A', statusMapped, "a"},
		{'Z', statusMapped, "z"},
		{'_', statusDisallowedSTD3Valid, ""},
		{0x00AD, statusIgnored, ""},
		{0x00DF, statusDeviation, "ss"},
		{0x200C, statusDeviation, ""},
		{0x3002, statusMapped, "."},
		{0xFF41, statusMapped, "a"},
		{0x2028, statusDisallowed, ""},
		{0xD800, statusDisallowed, ""},
		{0x4E00, statusValid, ""},
		{0x0378, statusUnknown, ""},
	}
	for _, tc := range cases {
		st, mapping := lookupMapping(tc.r)
		if st != tc.status {
			t.Errorf("U+%04X: status %d, want %d", tc.r, st, tc.status)
		}
		if mapping != tc.mapping {
			t.Errorf("U+%04X: mapping %q, want %q", tc.r, mapping, tc.mapping)
		}
	}
}

func TestLoadMappingLineErrors(t *testing.T) {
	for _, line := range []string{
		"zzzz ; valid",
		"0041",
		"0041 ; sideways",
		"0041 ; mapped",
		"0042..0041 ; valid",
		"0041 ; mapped ; xyzzy",
		"110000 ; valid",
	} {
		if err := loadMappingLine(line); err == nil {
			t.Errorf("expected %q to be rejected", line)
		}
	}
}

func TestLoadMappingTableSkipsCommentsAndBlanks(t *testing.T) {
	data := strings.Join([]string{
		"# a comment",
		"",
		"0041 ; mapped ; 0061  # trailing comment",
	}, "\n")
	if err := loadMappingTable(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Reload the embedded table so other tests see the real data.
	if err := loadMappingTable(mappingTableData); err != nil {
		t.Fatalf("reloading embedded table: %v", err)
	}
}

func TestPunycodeRoundTrip(t *testing.T) {
	cases := []struct {
		unicode string
		ace     string
	}{
		{"bücher", "bcher-kva"},
		{"münchen", "mnchen-3ya"},
		{"テスト", "zckzah"},
	}
	for _, tc := range cases {
		encoded, err := punycodeEncode(tc.unicode)
		if err != nil {
			t.Fatalf("encode %q: %v", tc.unicode, err)
		}
		if encoded != tc.ace {
			t.Errorf("encode %q: got %q, want %q", tc.unicode, encoded, tc.ace)
		}
		decoded, err := punycodeDecode(encoded)
		if err != nil {
			t.Fatalf("decode %q: %v", encoded, err)
		}
		if decoded != tc.unicode {
			t.Errorf("decode %q: got %q, want %q", encoded, decoded, tc.unicode)
		}
	}
}
