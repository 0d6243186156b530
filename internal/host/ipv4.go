package host

import (
	"strconv"
	"strings"

	"github.com/rohmanhakim/safeurl/internal/infra"
)

// parseIPv4Number parses one dotted-quad part. A 0x or 0X prefix
// switches to base 16 and a remaining leading 0 to base 8; both are
// legacy forms the standard flags as validation issues without
// rejecting them. The second result reports that flag.
func parseIPv4Number(input string) (uint64, bool, error) {
	if input == "" {
		return 0, false, hostError(ErrCauseInvalidIPv4, "empty number part")
	}
	legacy := false
	radix := 10
	if len(input) >= 2 && (input[:2] == "0x" || input[:2] == "0X") {
		legacy = true
		input = input[2:]
		radix = 16
	} else if input[0] == '0' && len(input) >= 2 {
		legacy = true
		input = input[1:]
		radix = 8
	}
	if input == "" {
		return 0, true, nil
	}
	n, err := strconv.ParseUint(input, radix, 64)
	if err != nil {
		return 0, legacy, hostError(ErrCauseInvalidIPv4, "part %q is not a base-%d number", input, radix)
	}
	return n, legacy, nil
}

// EndsInNumber reports whether the last label of input is numeric,
// which is what commits the host parser to the IPv4 branch.
func EndsInNumber(input string) bool {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" {
		if len(parts) == 1 {
			return false
		}
		parts = parts[:len(parts)-1]
	}
	last := parts[len(parts)-1]
	if last != "" && allASCIIDigits(last) {
		return true
	}
	_, _, err := parseIPv4Number(last)
	return err == nil
}

func allASCIIDigits(s string) bool {
	for _, r := range s {
		if !infra.IsASCIIDigit(r) {
			return false
		}
	}
	return true
}

// ParseIPv4 parses a dotted-quad host, including the legacy one-, two-
// and three-part forms, into a packed 32-bit address.
func ParseIPv4(input string) (uint32, error) {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 || len(parts) == 0 {
		return 0, hostError(ErrCauseInvalidIPv4, "%d parts", len(parts))
	}
	numbers := make([]uint64, 0, 4)
	for _, part := range parts {
		n, _, err := parseIPv4Number(part)
		if err != nil {
			return 0, err
		}
		numbers = append(numbers, n)
	}
	for _, n := range numbers[:len(numbers)-1] {
		if n > 255 {
			return 0, hostError(ErrCauseInvalidIPv4, "part %d out of range", n)
		}
	}
	last := numbers[len(numbers)-1]
	if last >= pow256(5-len(numbers)) {
		return 0, hostError(ErrCauseInvalidIPv4, "last part %d out of range", last)
	}
	ipv4 := uint32(last)
	for i, n := range numbers[:len(numbers)-1] {
		ipv4 += uint32(n) << (8 * (3 - i))
	}
	return ipv4, nil
}

func pow256(exp int) uint64 {
	return 1 << (8 * exp)
}

// SerializeIPv4 renders the address in canonical dotted-decimal form.
func SerializeIPv4(address uint32) string {
	var b strings.Builder
	for i := 3; i >= 0; i-- {
		b.WriteString(strconv.FormatUint(uint64(address>>(8*i))&0xFF, 10))
		if i != 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}
