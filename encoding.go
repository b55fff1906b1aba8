package cipherkey

import (
	"encoding/base32"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// base32Alphabet is the RFC 4648 base32 alphabet.
const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

const upperhex = "0123456789ABCDEF"

// Base64Encode percent-escapes text as a URI component, then applies
// standard padded base64. The output is always ASCII.
func Base64Encode(text string) string {
	if text == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(URLEncode(text)))
}

// Base64Decode reverses Base64Encode.
// ASCII whitespace is ignored and padding is optional.
func Base64Decode(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	raw, err := forgivingBase64(encoded)
	if err != nil {
		return "", newTransformError(ErrDecoding, MethodBase64, msgBase64, err)
	}

	// Decoded bytes are read as Latin-1 before unescaping.
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}

	text, err := percentDecode(b.String())
	if err != nil {
		return "", newTransformError(ErrDecoding, MethodBase64, msgBase64, err)
	}
	return text, nil
}

// forgivingBase64 decodes base64 with optional padding and embedded
// ASCII whitespace.
func forgivingBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, s)

	if len(s)%4 == 0 {
		s = strings.TrimSuffix(s, "=")
		s = strings.TrimSuffix(s, "=")
	}
	if len(s)%4 == 1 {
		return nil, fmt.Errorf("invalid base64 length %d", len(s))
	}

	return base64.RawStdEncoding.DecodeString(s)
}

// Base32Encode encodes the UTF-8 bytes of text with the RFC 4648 alphabet,
// padded with '=' to a multiple of eight characters.
func Base32Encode(text string) string {
	if text == "" {
		return ""
	}
	return base32.StdEncoding.EncodeToString([]byte(text))
}

// Base32Decode reverses Base32Encode.
// Trailing padding is optional and lowercase input is accepted. A trailing
// group of fewer than eight bits is discarded.
func Base32Decode(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sanitized := strings.ToUpper(strings.TrimRight(encoded, "="))

	out := make([]byte, 0, len(sanitized)*5/8)
	var value uint32
	bits := 0
	for i := 0; i < len(sanitized); i++ {
		idx := strings.IndexByte(base32Alphabet, sanitized[i])
		if idx < 0 {
			cause := fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, sanitized[i], i)
			return "", newTransformError(ErrDecoding, MethodBase32, msgBase32, cause)
		}

		value = value<<5 | uint32(idx)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(value>>bits))
			value &= 1<<bits - 1
		}
	}

	if !utf8.Valid(out) {
		return "", newTransformError(ErrDecoding, MethodBase32, msgBase32, errInvalidUTF8)
	}
	return string(out), nil
}

// URLEncode percent-escapes every byte of text except the URI component
// unreserved set: letters, digits and - _ . ! ~ * ' ( ).
func URLEncode(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// URLDecode reverses URLEncode. Every %XX sequence is decoded and '+'
// is kept literally.
func URLDecode(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	text, err := percentDecode(encoded)
	if err != nil {
		return "", newTransformError(ErrDecoding, MethodURL, msgURL, err)
	}
	return text, nil
}

var errInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

// percentDecode unescapes all %XX sequences and requires UTF-8 output.
func percentDecode(s string) (string, error) {
	text, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(text) {
		return "", errInvalidUTF8
	}
	return text, nil
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
