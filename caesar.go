package cipherkey

import (
	"strings"
	"unicode"
)

// Caesar rotates ASCII letters by shift positions within their case.
// Any shift is accepted and reduced into [0,26). With reverse set the
// rotation is undone. Every other byte, including non-ASCII and invalid
// UTF-8, passes through untouched.
func Caesar(text string, shift int, reverse bool) string {
	if text == "" {
		return ""
	}

	s := ((shift % 26) + 26) % 26
	if reverse {
		s = (26 - s) % 26
	}
	if s == 0 {
		return text
	}

	b := []byte(text)
	for i, c := range b {
		b[i] = rotate(c, byte(s))
	}
	return string(b)
}

func rotate(c, shift byte) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A' + (c-'A'+shift)%26
	case c >= 'a' && c <= 'z':
		return 'a' + (c-'a'+shift)%26
	default:
		return c
	}
}

// ParseShift reads a Caesar shift from a key the way a lenient integer
// parser does: leading whitespace, an optional sign, then decimal digits up
// to the first non-digit. The result is reduced into [0,26).
// A key without leading digits yields 0, which makes Caesar the identity.
func ParseShift(key string) int {
	s := strings.TrimLeftFunc(key, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	shift, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		shift = (shift*10 + int(s[digits]-'0')) % 26
	}
	if digits == 0 {
		return 0
	}

	if negative {
		shift = (26 - shift) % 26
	}
	return shift
}
