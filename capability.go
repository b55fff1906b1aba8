package cipherkey

import (
	"fmt"
	"strings"
)

// Method identifies a supported transformation.
// Use these constants in struct tags: `transform:"base64"`
type Method string

const (
	// MethodCaesar rotates ASCII letters by a numeric shift.
	MethodCaesar Method = "caesar"

	// MethodAES encrypts with a passphrase through the configured Cipher.
	MethodAES Method = "aes"

	// MethodBase64 percent-escapes then applies standard base64.
	MethodBase64 Method = "base64"

	// MethodBase32 applies RFC 4648 base32 to the UTF-8 bytes.
	MethodBase32 Method = "base32"

	// MethodURL applies URI component percent-encoding.
	MethodURL Method = "url"
)

// KeyKind describes what kind of key a method expects.
type KeyKind int

const (
	KeyNone    KeyKind = iota // no key
	KeyNumeric                // integer shift
	KeyText                   // free-form passphrase
)

func (k KeyKind) String() string {
	switch k {
	case KeyNumeric:
		return "number"
	case KeyText:
		return "text"
	default:
		return "none"
	}
}

// MethodInfo describes a catalog entry.
type MethodInfo struct {
	ID             Method
	Name           string
	RequiresKey    bool
	KeyKind        KeyKind
	KeyPlaceholder string
}

// catalog is the ordered method catalog. The first entry is the fallback
// for unknown ids.
var catalog = []MethodInfo{
	{ID: MethodCaesar, Name: "Caesar Cipher", RequiresKey: true, KeyKind: KeyNumeric, KeyPlaceholder: "Shift (e.g. 3)"},
	{ID: MethodAES, Name: "AES", RequiresKey: true, KeyKind: KeyText, KeyPlaceholder: "Secret Key"},
	{ID: MethodBase64, Name: "Base64"},
	{ID: MethodBase32, Name: "Base32"},
	{ID: MethodURL, Name: "URL Encoding"},
}

// catalogIndex maps method ids to their catalog position.
var catalogIndex = func() map[Method]int {
	idx := make(map[Method]int, len(catalog))
	for i, m := range catalog {
		idx[m.ID] = i
	}
	return idx
}()

// Methods returns the catalog in display order.
// The returned slice is a copy and may be modified by the caller.
func Methods() []MethodInfo {
	out := make([]MethodInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Describe returns the catalog entry for m.
func Describe(m Method) (MethodInfo, bool) {
	i, ok := catalogIndex[m]
	if !ok {
		return MethodInfo{}, false
	}
	return catalog[i], true
}

// IsValidMethod returns true if m is a known method.
func IsValidMethod(m Method) bool {
	_, ok := catalogIndex[m]
	return ok
}

// Resolve returns the catalog entry for id.
// Unknown ids resolve to the first catalog entry.
func Resolve(id string) MethodInfo {
	if info, ok := Describe(Method(id)); ok {
		return info
	}
	return catalog[0]
}

// ParseMethod returns the method for id, falling back like Resolve.
func ParseMethod(id string) Method {
	return Resolve(id).ID
}

// Direction selects the forward or inverse transform.
type Direction int

const (
	// Encrypt applies the forward transform (encode/encrypt).
	Encrypt Direction = iota

	// Decrypt applies the inverse transform (decode/decrypt).
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Decrypt {
		return Encrypt
	}
	return Decrypt
}

// ParseDirection parses "encrypt"/"encode" or "decrypt"/"decode".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "encode":
		return Encrypt, nil
	case "decrypt", "decode":
		return Decrypt, nil
	default:
		return Encrypt, fmt.Errorf("unknown direction %q", s)
	}
}
