package cipherkey

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // EVP_BytesToKey is defined over MD5
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// Encryption errors.
var (
	ErrCiphertextShort = errors.New("ciphertext too short")
	ErrMissingSalt     = errors.New("missing salt header")
	ErrInvalidPadding  = errors.New("invalid padding")
)

// Cipher is the passphrase-keyed primitive behind the AES method.
// Tokens are self-contained text carrying everything but the passphrase.
type Cipher interface {
	// Encrypt encrypts plaintext and returns a textual token.
	Encrypt(passphrase, plaintext string) (string, error)

	// Decrypt recovers plaintext from a token produced by Encrypt.
	Decrypt(passphrase, token string) (string, error)
}

// AESEncrypt encrypts text with key using the engine's cipher.
// Empty text or an empty key yields empty output.
func (e *Engine) AESEncrypt(text, key string) (string, error) {
	if text == "" || key == "" {
		return "", nil
	}

	token, err := e.cipher.Encrypt(key, text)
	if err != nil {
		return "", newTransformError(ErrEncryption, MethodAES, msgEncrypt, err)
	}
	return token, nil
}

// AESDecrypt recovers text from token using key.
// Empty input yields empty output. Every failure of the primitive, and any
// result that is not valid UTF-8, is reported as ErrDecryption.
func (e *Engine) AESDecrypt(token, key string) (text string, err error) {
	if token == "" || key == "" {
		return "", nil
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = newTransformError(ErrDecryption, MethodAES, msgDecrypt, fmt.Errorf("cipher panic: %v", r))
		}
	}()

	plaintext, err := e.cipher.Decrypt(key, token)
	if err != nil {
		return "", newTransformError(ErrDecryption, MethodAES, msgDecrypt, err)
	}
	if !utf8.ValidString(plaintext) {
		return "", newTransformError(ErrDecryption, MethodAES, msgDecrypt, errInvalidUTF8)
	}
	return plaintext, nil
}

// AESEncrypt encrypts text with key using the default engine.
func AESEncrypt(text, key string) (string, error) {
	return Default().AESEncrypt(text, key)
}

// AESDecrypt decrypts token with key using the default engine.
func AESDecrypt(token, key string) (string, error) {
	return Default().AESDecrypt(token, key)
}

// OpenSSLOption configures the OpenSSL-compatible cipher.
type OpenSSLOption func(*openSSLCipher)

// WithRandReader injects the salt source.
func WithRandReader(r io.Reader) OpenSSLOption {
	return func(c *openSSLCipher) {
		c.randReader = r
	}
}

const (
	saltSize  = 8
	keySize   = 32
	saltMagic = "Salted__"
)

// openSSLCipher implements passphrase AES-256-CBC in the OpenSSL "enc"
// format, as produced by CryptoJS.AES and `openssl enc -md md5`.
type openSSLCipher struct {
	randReader io.Reader
}

// OpenSSL returns the default cipher. Tokens are
// base64("Salted__" | salt | ciphertext); key and IV are derived from the
// passphrase and salt with EVP_BytesToKey over MD5; plaintext is PKCS#7 padded.
func OpenSSL(opts ...OpenSSLOption) Cipher {
	c := &openSSLCipher{randReader: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *openSSLCipher) Encrypt(passphrase, plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.randReader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, iv := evpBytesToKey([]byte(passphrase), salt, keySize, aes.BlockSize)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(saltMagic)+saltSize+len(padded))
	copy(out, saltMagic)
	copy(out[len(saltMagic):], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[len(saltMagic)+saltSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *openSSLCipher) Decrypt(passphrase, token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}

	header := len(saltMagic) + saltSize
	if len(raw) < header || !bytes.Equal(raw[:len(saltMagic)], []byte(saltMagic)) {
		return "", ErrMissingSalt
	}

	salt, body := raw[len(saltMagic):header], raw[header:]
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return "", ErrCiphertextShort
	}

	key, iv := evpBytesToKey([]byte(passphrase), salt, keySize, aes.BlockSize)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// evpBytesToKey derives key and IV the way OpenSSL's EVP_BytesToKey does
// with MD5 and a single iteration.
func evpBytesToKey(passphrase, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	derived := make([]byte, 0, keyLen+ivLen+md5.Size)
	var prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New() //nolint:gosec // see import
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrInvalidPadding
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-padding], nil
}

// Argon2Params configures key derivation for the Argon2GCM cipher.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	SaltLen uint32 // Salt length
}

// DefaultArgon2Params returns the parameters used by Argon2GCM.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  19 * 1024, // 19 MiB
		Threads: 2,
		SaltLen: 16,
	}
}

// argon2GCMCipher derives an AES-256 key from the passphrase with Argon2id
// and seals with AES-GCM.
type argon2GCMCipher struct {
	params     Argon2Params
	randReader io.Reader
}

// Argon2GCM returns an authenticated cipher with default parameters.
// Tokens are base64(salt | nonce | sealed).
func Argon2GCM() Cipher {
	return Argon2GCMWithParams(DefaultArgon2Params())
}

// Argon2GCMWithParams returns an Argon2GCM cipher with custom parameters.
func Argon2GCMWithParams(params Argon2Params) Cipher {
	return &argon2GCMCipher{params: params, randReader: rand.Reader}
}

func (c *argon2GCMCipher) gcm(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(passphrase), salt, c.params.Time, c.params.Memory, c.params.Threads, keySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (c *argon2GCMCipher) Encrypt(passphrase, plaintext string) (string, error) {
	salt := make([]byte, c.params.SaltLen)
	if _, err := io.ReadFull(c.randReader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := c.gcm(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.randReader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Prepend salt and nonce to ciphertext
	sealed := gcm.Seal(append(salt, nonce...), nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *argon2GCMCipher) Decrypt(passphrase, token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}

	saltLen := int(c.params.SaltLen)
	if len(raw) < saltLen {
		return "", ErrCiphertextShort
	}

	salt, rest := raw[:saltLen], raw[saltLen:]
	gcm, err := c.gcm(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize+gcm.Overhead() {
		return "", ErrCiphertextShort
	}

	plaintext, err := gcm.Open(nil, rest[:nonceSize], rest[nonceSize:], nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
