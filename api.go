// Package cipherkey provides reversible text transformations behind one
// entry point.
//
// # Methods
//
// The catalog is fixed and ordered:
//
//   - caesar: Caesar Cipher, numeric key (shift)
//   - aes: AES, text key (passphrase)
//   - base64: Base64, no key
//   - base32: Base32, no key
//   - url: URL Encoding, no key
//
// Unknown method ids resolve to the first entry.
//
// # Basic Usage
//
//	out, err := cipherkey.Transform("Hello, World!", cipherkey.MethodCaesar, cipherkey.Encrypt, "3")
//	// out == "Khoor, Zruog!"
//
//	token, _ := cipherkey.Transform("secret", cipherkey.MethodAES, cipherkey.Encrypt, "passphrase")
//	plain, err := cipherkey.Transform(token, cipherkey.MethodAES, cipherkey.Decrypt, "wrong")
//	// errors.Is(err, cipherkey.ErrDecryption), err.Error() == "Could not decrypt with the provided key"
//
// Failures are *TransformError values whose Error() is a display message.
// Use errors.Is with ErrDecryption or ErrDecoding to branch on the kind.
//
// # Ciphers
//
// The AES method delegates to a Cipher:
//
//   - OpenSSL() - AES-256-CBC in the OpenSSL "Salted__" format (default, CryptoJS compatible)
//   - Argon2GCM() - Argon2id key derivation with AES-GCM
//
//	engine := cipherkey.New(cipherkey.WithCipher(cipherkey.Argon2GCM()))
//
// # Struct Fields
//
// A Processor applies methods to tagged fields while marshaling:
//
//	type Message struct {
//	    ID   string `json:"id"`
//	    Body string `json:"body" transform:"aes"`
//	}
//
//	func (m Message) Clone() Message { return m }
//
//	proc, _ := cipherkey.NewProcessor[Message](format.JSON())
//	proc.SetKey(cipherkey.MethodAES, "passphrase")
//	data, _ := proc.Seal(ctx, &msg)
//	restored, _ := proc.Open(ctx, data)
//
// Codecs for JSON, XML, YAML, MessagePack, BSON and TOML live in the format package.
// Tagged fields carry text: Seal rejects values that are not valid UTF-8.
package cipherkey
