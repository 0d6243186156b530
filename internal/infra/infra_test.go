package infra_test

import (
	"testing"

	"github.com/rohmanhakim/safeurl/internal/infra"
)

func TestASCIIClasses(t *testing.T) {
	if !infra.IsASCIIAlpha('a') || !infra.IsASCIIAlpha('Z') {
		t.Error("expected letters to be alpha")
	}
	if infra.IsASCIIAlpha('1') || infra.IsASCIIAlpha('é') {
		t.Error("expected non-letters to not be alpha")
	}
	if !infra.IsASCIIDigit('0') || infra.IsASCIIDigit('a') {
		t.Error("digit classification wrong")
	}
	for _, r := range "09afAF" {
		if !infra.IsASCIIHexDigit(r) {
			t.Errorf("expected %q to be a hex digit", r)
		}
	}
	if infra.IsASCIIHexDigit('g') || infra.IsASCIIHexDigit('G') {
		t.Error("expected g to not be a hex digit")
	}
}

func TestControlClasses(t *testing.T) {
	for _, r := range "\t\n\r" {
		if !infra.IsASCIITabOrNewline(r) {
			t.Errorf("expected %q to be tab or newline", r)
		}
	}
	if infra.IsASCIITabOrNewline(' ') {
		t.Error("space is not tab or newline")
	}
	if !infra.IsC0Control(0x00) || !infra.IsC0Control(0x1F) || infra.IsC0Control(' ') {
		t.Error("C0 control classification wrong")
	}
	if !infra.IsC0ControlOrSpace(' ') {
		t.Error("space should be in C0-or-space")
	}
	if !infra.IsASCIIWhitespace('\f') {
		t.Error("form feed should be ASCII whitespace")
	}
}

func TestSurrogateAndNoncharacter(t *testing.T) {
	if !infra.IsSurrogate(0xD800) || !infra.IsSurrogate(0xDFFF) || infra.IsSurrogate(0xE000) {
		t.Error("surrogate classification wrong")
	}
	for _, r := range []rune{0xFDD0, 0xFDEF, 0xFFFE, 0xFFFF, 0x1FFFE, 0x10FFFF} {
		if !infra.IsNoncharacter(r) {
			t.Errorf("expected U+%04X to be a noncharacter", r)
		}
	}
	if infra.IsNoncharacter('a') || infra.IsNoncharacter(0x10FFFD) {
		t.Error("noncharacter classification wrong")
	}
}

func TestURLCodePoint(t *testing.T) {
	for _, r := range "az09!$&'()*+,-./:;=?@_~" {
		if !infra.IsURLCodePoint(r) {
			t.Errorf("expected %q to be a URL code point", r)
		}
	}
	for _, r := range []rune{'"', '<', '>', '`', '{', '}', '\\', '^', '|', ' ', '%', 0x7F, 0xFFFE} {
		if infra.IsURLCodePoint(r) {
			t.Errorf("expected %q to not be a URL code point", r)
		}
	}
	if !infra.IsURLCodePoint('é') || !infra.IsURLCodePoint('例') {
		t.Error("expected non-ASCII letters to be URL code points")
	}
}
