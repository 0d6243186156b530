package idna

import (
	"errors"
	"strings"
)

// Punycode per RFC 3492, operating on single labels without the ACE
// prefix.

const (
	punyBase        int32 = 36
	punyTMin        int32 = 1
	punyTMax        int32 = 26
	punySkew        int32 = 38
	punyDamp        int32 = 700
	punyInitialBias int32 = 72
	punyInitialN    int32 = 128
	punyMaxInt      int32 = 1<<31 - 1

	punyBaseMinusTMin = punyBase - punyTMin
)

var (
	errPunyOverflow = errors.New("punycode: overflow")
	errPunyNotBasic = errors.New("punycode: non-basic code point before delimiter")
	errPunyInvalid  = errors.New("punycode: invalid input")
)

func punyAdapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= punyDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > punyBaseMinusTMin*punyTMax/2 {
		delta /= punyBaseMinusTMin
		k += punyBase
	}
	return k + (punyBaseMinusTMin+1)*delta/(delta+punySkew)
}

func punyDigit(b byte) int32 {
	switch {
	case b >= '0' && b <= '9':
		return int32(b - 22)
	case b >= 'A' && b <= 'Z':
		return int32(b - 'A')
	case b >= 'a' && b <= 'z':
		return int32(b - 'a')
	}
	return punyBase
}

func punyBasic(digit int32) byte {
	if digit < 26 {
		return byte(digit) + 'a'
	}
	return byte(digit) - 26 + '0'
}

// punycodeDecode converts an ASCII Punycode label to Unicode.
func punycodeDecode(s string) (string, error) {
	basic := strings.LastIndexByte(s, '-')
	output := make([]rune, 0, len(s))
	for i := 0; i < basic; i++ {
		if s[i] >= 0x80 {
			return "", errPunyNotBasic
		}
		output = append(output, rune(s[i]))
	}

	i, n, bias := int32(0), punyInitialN, punyInitialBias
	for pos := basic + 1; pos < len(s); {
		oldi, w := i, int32(1)
		for k := punyBase; ; k += punyBase {
			digit := punyDigit(s[pos])
			pos++
			if digit >= punyBase || digit > (punyMaxInt-i)/w {
				return "", errPunyOverflow
			}
			i += digit * w
			t := k - bias
			if t < punyTMin {
				t = punyTMin
			} else if t > punyTMax {
				t = punyTMax
			}
			if digit < t {
				break
			}
			if pos == len(s) {
				return "", errPunyInvalid
			}
			if w > punyMaxInt/(punyBase-t) {
				return "", errPunyOverflow
			}
			w *= punyBase - t
		}
		out := int32(len(output) + 1)
		bias = punyAdapt(i-oldi, out, oldi == 0)
		if i/out > punyMaxInt-n {
			return "", errPunyOverflow
		}
		n += i / out
		i %= out
		if n > 0x10FFFF || (0xD800 <= n && n <= 0xDFFF) {
			return "", errPunyInvalid
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n
		i++
	}
	return string(output), nil
}

// punycodeEncode converts a Unicode label to its ASCII Punycode form.
func punycodeEncode(input string) (string, error) {
	var output []byte
	runes := []rune(input)
	for _, r := range runes {
		if r < 0x80 {
			output = append(output, byte(r))
		}
	}
	basicLength := int32(len(output))
	handled := basicLength
	if basicLength > 0 {
		output = append(output, '-')
	}

	n, delta, bias := punyInitialN, int32(0), punyInitialBias
	for int(handled) < len(runes) {
		m := punyMaxInt
		for _, r := range runes {
			if int32(r) >= n && int32(r) < m {
				m = int32(r)
			}
		}
		if m-n > (punyMaxInt-delta)/(handled+1) {
			return "", errPunyOverflow
		}
		delta += (m - n) * (handled + 1)
		n = m
		for _, r := range runes {
			switch {
			case int32(r) < n:
				delta++
				if delta <= 0 {
					return "", errPunyOverflow
				}
			case int32(r) == n:
				q := delta
				for k := punyBase; ; k += punyBase {
					t := k - bias
					if t < punyTMin {
						t = punyTMin
					} else if t > punyTMax {
						t = punyTMax
					}
					if q < t {
						break
					}
					output = append(output, punyBasic(t+(q-t)%(punyBase-t)))
					q = (q - t) / (punyBase - t)
				}
				output = append(output, punyBasic(q))
				bias = punyAdapt(delta, handled+1, handled == basicLength)
				delta = 0
				handled++
			}
		}
		delta++
		n++
	}
	return string(output), nil
}
