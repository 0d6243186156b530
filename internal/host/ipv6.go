package host

import (
	"strconv"
	"strings"

	"github.com/rohmanhakim/safeurl/internal/infra"
)

// ParseIPv6 parses the interior of a bracketed host into eight 16-bit
// pieces. A single :: stands for as many zero pieces as are needed to
// make eight; an
// embedded dotted-quad may supply the final 32 bits.
func ParseIPv6(input string) ([8]uint16, error) {
	var address [8]uint16
	runes := []rune(input)
	pieceIndex := 0
	compress := -1
	pointer := 0
	length := len(runes)

	if length == 0 {
		return address, hostError(ErrCauseInvalidIPv6, "empty address")
	}
	if runes[0] == ':' {
		if length < 2 || runes[1] != ':' {
			return address, hostError(ErrCauseInvalidIPv6, "address begins with a lone colon")
		}
		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for pointer < length {
		if pieceIndex == 8 {
			return address, hostError(ErrCauseInvalidIPv6, "more than 8 pieces")
		}
		if runes[pointer] == ':' {
			if compress >= 0 {
				return address, hostError(ErrCauseInvalidIPv6, ":: appears twice")
			}
			pointer++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value, digits := 0, 0
		for digits < 4 && pointer < length && infra.IsASCIIHexDigit(runes[pointer]) {
			value = value*0x10 + hexValue(runes[pointer])
			pointer++
			digits++
		}

		if pointer < length && runes[pointer] == '.' {
			if digits == 0 {
				return address, hostError(ErrCauseInvalidIPv6, "dotted part after a colon run")
			}
			pointer -= digits
			if pieceIndex > 6 {
				return address, hostError(ErrCauseInvalidIPv6, "no room for an embedded IPv4 address")
			}
			if err := parseEmbeddedIPv4(runes[pointer:], &address, &pieceIndex); err != nil {
				return address, err
			}
			pointer = length
			break
		}

		if pointer < length {
			if runes[pointer] != ':' {
				return address, hostError(ErrCauseInvalidIPv6, "unexpected %q", string(runes[pointer]))
			}
			pointer++
			if pointer == length {
				return address, hostError(ErrCauseInvalidIPv6, "address ends with a lone colon")
			}
		}
		address[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress >= 0 {
		swaps := pieceIndex - compress
		for i := 7; i != 0 && swaps > 0; {
			address[i], address[compress+swaps-1] = address[compress+swaps-1], address[i]
			i--
			swaps--
		}
	} else if pieceIndex != 8 {
		return address, hostError(ErrCauseInvalidIPv6, "%d pieces without ::", pieceIndex)
	}
	return address, nil
}

func parseEmbeddedIPv4(runes []rune, address *[8]uint16, pieceIndex *int) error {
	numbersSeen := 0
	pointer := 0
	length := len(runes)
	for pointer < length {
		if numbersSeen > 0 {
			if runes[pointer] == '.' && numbersSeen < 4 {
				pointer++
			} else {
				return hostError(ErrCauseInvalidIPv6, "malformed embedded IPv4 address")
			}
		}
		if pointer >= length || !infra.IsASCIIDigit(runes[pointer]) {
			return hostError(ErrCauseInvalidIPv6, "embedded IPv4 part is not a number")
		}
		piece := -1
		for pointer < length && infra.IsASCIIDigit(runes[pointer]) {
			digit := int(runes[pointer] - '0')
			switch {
			case piece < 0:
				piece = digit
			case piece == 0:
				return hostError(ErrCauseInvalidIPv6, "leading zero in embedded IPv4 part")
			default:
				piece = piece*10 + digit
			}
			if piece > 255 {
				return hostError(ErrCauseInvalidIPv6, "embedded IPv4 part above 255")
			}
			pointer++
		}
		address[*pieceIndex] = address[*pieceIndex]*0x100 + uint16(piece)
		numbersSeen++
		if numbersSeen == 2 || numbersSeen == 4 {
			(*pieceIndex)++
		}
	}
	if numbersSeen != 4 {
		return hostError(ErrCauseInvalidIPv6, "embedded IPv4 address has %d parts", numbersSeen)
	}
	return nil
}

func hexValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// SerializeIPv6 renders the pieces in canonical lowercase-hex form,
// substituting :: for the first longest run of two or more zero
// pieces.
func SerializeIPv6(address [8]uint16) string {
	var b strings.Builder
	compress := firstLongestZeroRun(address)
	ignoreZeros := false
	for pieceIndex := 0; pieceIndex < 8; pieceIndex++ {
		if ignoreZeros {
			if address[pieceIndex] == 0 {
				continue
			}
			ignoreZeros = false
		}
		if compress == pieceIndex {
			if pieceIndex == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			ignoreZeros = true
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(address[pieceIndex]), 16))
		if pieceIndex != 7 {
			b.WriteByte(':')
		}
	}
	return b.String()
}

// firstLongestZeroRun returns the start of the leftmost longest run of
// at least two zero pieces, or -1 when no such run exists.
func firstLongestZeroRun(address [8]uint16) int {
	index := -1
	indexLength := 0
	currentLength := 0
	for i, piece := range address {
		if piece != 0 {
			currentLength = 0
			continue
		}
		currentLength++
		if currentLength > indexLength && currentLength >= 2 {
			index = i + 1 - currentLength
			indexLength = currentLength
		}
	}
	return index
}
