package cipherkey

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrDecryption indicates a token could not be decrypted with the given key.
	ErrDecryption = errors.New("decryption failed")

	// ErrEncryption indicates the cipher primitive failed to produce a token.
	ErrEncryption = errors.New("encryption failed")

	// ErrDecoding indicates malformed Base64, Base32 or URL-encoded input.
	ErrDecoding = errors.New("decoding failed")

	// ErrInvalidCharacter indicates a character outside the codec alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrUnknownMethod indicates a method id outside the catalog.
	// Transform never returns it; unknown ids fall back to the first catalog entry.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrMissingKey indicates a keyed method was used without a configured key.
	ErrMissingKey = errors.New("missing key")

	// ErrInvalidTag indicates a struct tag names an unknown method.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// Human-readable failure messages shown in place of output.
const (
	msgDecrypt = "Could not decrypt with the provided key"
	msgEncrypt = "Could not encrypt with the provided key"
	msgBase64  = "Invalid Base64 string"
	msgBase32  = "Invalid Base32 string"
	msgURL     = "Invalid URL encoded string"
)

// TransformError is the failure result of a codec.
// Error returns the human-readable message; Unwrap returns the sentinel kind.
type TransformError struct {
	Err     error  // Underlying sentinel error (ErrDecryption, ErrDecoding, ...)
	Method  Method // Method that failed
	Message string // Message suitable for display
	Cause   error  // Original error from the primitive, if any
}

func (e *TransformError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrMissingKey, ErrInvalidTag)
	Field  string // Field name that triggered the error
	Method Method // Method that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Method != "" {
		return fmt.Sprintf("%s for method %q (field %s)", e.Err.Error(), e.Method, e.Field)
	}
	if e.Method != "" {
		return fmt.Sprintf("%s for method %q", e.Err.Error(), e.Method)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FieldError represents a codec failure on a single struct field.
// It unwraps to the codec's error, so errors.Is(err, ErrDecoding) works.
type FieldError struct {
	Field     string
	Method    Method
	Direction Direction
	Cause     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %s (%s): %v", e.Direction, e.Field, e.Method, e.Cause)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newTransformError(sentinel error, method Method, message string, cause error) error {
	return &TransformError{
		Err:     sentinel,
		Method:  method,
		Message: message,
		Cause:   cause,
	}
}

func newConfigError(sentinel error, method Method, field string) error {
	return &ConfigError{
		Err:    sentinel,
		Method: method,
		Field:  field,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
