package encoding

import (
	"fmt"
	"strings"

	"github.com/rohmanhakim/safeurl/internal/encodeset"
	"github.com/rohmanhakim/safeurl/internal/infra"
)

const upperhex = "0123456789ABCDEF"

func appendEscaped(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&0xF])
}

func isHexByte(c byte) bool {
	return infra.IsASCIIHexDigit(rune(c))
}

// PercentEncodeAfterEncoding encodes input with the named encoding
// and percent-escapes the resulting bytes that fall in set. Code
// points the encoding cannot represent are emitted as the
// percent-encoded XML numeric reference %26%23N%3B, which is how they
// survive a decode round trip on the far side.
//
// When set contains %, an existing %HH sequence in the byte stream is
// emitted untouched, so encoding is idempotent. With spaceAsPlus, a
// 0x20 byte becomes + instead of %20.
func PercentEncodeAfterEncoding(input, encodingName string, set encodeset.Set, spaceAsPlus bool) (string, error) {
	var out strings.Builder

	flush := func(encoded []byte) {
		for i := 0; i < len(encoded); i++ {
			b := encoded[i]
			if spaceAsPlus && b == ' ' {
				out.WriteByte('+')
				continue
			}
			if !set.Contains(rune(b)) {
				out.WriteByte(b)
				continue
			}
			if b == '%' && set.Contains('%') &&
				i+2 < len(encoded) && isHexByte(encoded[i+1]) && isHexByte(encoded[i+2]) {
				out.WriteByte('%')
				continue
			}
			appendEscaped(&out, b)
		}
	}

	if encodingName == "" || encodingName == UTF8 {
		flush([]byte(input))
		return out.String(), nil
	}

	codec, err := codecs.get(encodingName)
	if err != nil {
		return "", err
	}
	encoder := codec.NewEncoder()

	// Encode code point by code point so an unmappable one can be
	// replaced without losing the rest of the run.
	var chunk []byte
	for _, r := range input {
		encoded, encErr := encoder.Bytes([]byte(string(r)))
		if encErr != nil {
			flush(chunk)
			chunk = chunk[:0]
			fmt.Fprintf(&out, "%%26%%23%d%%3B", r)
			continue
		}
		chunk = append(chunk, encoded...)
	}
	flush(chunk)
	return out.String(), nil
}

// UTF8PercentEncode encodes a single code point as UTF-8 and escapes
// each byte that falls in set.
func UTF8PercentEncode(r rune, set encodeset.Set) string {
	var out strings.Builder
	for _, b := range []byte(string(r)) {
		if set.Contains(rune(b)) {
			appendEscaped(&out, b)
		} else {
			out.WriteByte(b)
		}
	}
	return out.String()
}

// IdempotentUTF8PercentEncode encodes the code point at input[pointer]
// against set, except that a % introducing a well-formed %HH escape is
// passed through unchanged. A stray % becomes %25. The rule only
// applies when set itself escapes %; otherwise the % is emitted raw
// like any other non-member.
func IdempotentUTF8PercentEncode(input []rune, pointer int, set encodeset.Set) string {
	c := input[pointer]
	if c == '%' && set.Contains('%') {
		if pointer+2 >= len(input) ||
			!infra.IsASCIIHexDigit(input[pointer+1]) ||
			!infra.IsASCIIHexDigit(input[pointer+2]) {
			return "%25"
		}
		return "%"
	}
	return UTF8PercentEncode(c, set)
}

// PercentDecode replaces every well-formed %HH sequence in input with
// the byte it denotes. Malformed sequences pass through unchanged.
func PercentDecode(input []byte) []byte {
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		b := input[i]
		if b != '%' || i+2 >= len(input) || !isHexByte(input[i+1]) || !isHexByte(input[i+2]) {
			out = append(out, b)
			continue
		}
		out = append(out, unhex(input[i+1])<<4|unhex(input[i+2]))
		i += 2
	}
	return out
}

// PercentDecodeString is PercentDecode over the UTF-8 bytes of s.
func PercentDecodeString(s string) []byte {
	return PercentDecode([]byte(s))
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
