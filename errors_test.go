package cipherkey

import (
	"errors"
	"testing"
)

func TestTransformError_Is(t *testing.T) {
	err := newTransformError(ErrDecryption, MethodAES, msgDecrypt, errors.New("bad padding"))

	if !errors.Is(err, ErrDecryption) {
		t.Error("TransformError should unwrap to ErrDecryption")
	}

	if errors.Is(err, ErrDecoding) {
		t.Error("TransformError should not match ErrDecoding")
	}
}

func TestTransformError_Message(t *testing.T) {
	err := newTransformError(ErrDecoding, MethodBase64, msgBase64, errors.New("illegal data"))

	want := "Invalid Base64 string"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTransformError_NoMessage(t *testing.T) {
	err := &TransformError{Err: ErrDecoding, Method: MethodURL}

	want := "decoding failed"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTransformError_Unwrap(t *testing.T) {
	err := &TransformError{Err: ErrDecryption, Method: MethodAES, Cause: errors.New("key error")}

	unwrapped := err.Unwrap()
	if unwrapped != ErrDecryption {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrDecryption)
	}
}

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrMissingKey, MethodAES, "Body")

	if !errors.Is(err, ErrMissingKey) {
		t.Error("ConfigError should unwrap to ErrMissingKey")
	}

	if errors.Is(err, ErrInvalidTag) {
		t.Error("ConfigError should not match ErrInvalidTag")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newConfigError(ErrMissingKey, MethodAES, "Body"),
			want: `missing key for method "aes" (field Body)`,
		},
		{
			name: "method only",
			err:  &ConfigError{Err: ErrMissingKey, Method: MethodCaesar},
			want: `missing key for method "caesar"`,
		},
		{
			name: "field only",
			err:  &ConfigError{Err: ErrInvalidTag, Field: "Ref"},
			want: `invalid tag (field Ref)`,
		},
		{
			name: "err only",
			err:  &ConfigError{Err: ErrInvalidTag},
			want: `invalid tag`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldError_Message(t *testing.T) {
	cause := newTransformError(ErrDecoding, MethodBase32, msgBase32, nil)
	err := &FieldError{Field: "Ref", Method: MethodBase32, Direction: Decrypt, Cause: cause}

	want := "decrypt field Ref (base32): Invalid Base32 string"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFieldError_UnwrapChain(t *testing.T) {
	cause := newTransformError(ErrDecryption, MethodAES, msgDecrypt, nil)
	var err error = &FieldError{Field: "Body", Method: MethodAES, Direction: Decrypt, Cause: cause}

	if !errors.Is(err, ErrDecryption) {
		t.Error("FieldError should reach ErrDecryption through its cause")
	}

	var te *TransformError
	if !errors.As(err, &te) {
		t.Fatal("errors.As should extract *TransformError from FieldError")
	}
	if te.Method != MethodAES {
		t.Errorf("Method = %q, want %q", te.Method, MethodAES)
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("invalid json"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("unexpected end of JSON input"))

	want := "unmarshal failed: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCodecError_NoCause(t *testing.T) {
	err := &CodecError{Err: ErrMarshal}

	want := "marshal failed"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorsAs_ConfigError(t *testing.T) {
	err := newConfigError(ErrMissingKey, MethodCaesar, "Shifted")

	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatal("errors.As should extract *ConfigError")
	}

	if configErr.Method != MethodCaesar {
		t.Errorf("Method = %q, want %q", configErr.Method, MethodCaesar)
	}
	if configErr.Field != "Shifted" {
		t.Errorf("Field = %q, want %q", configErr.Field, "Shifted")
	}
}

func TestErrorsAs_CodecError(t *testing.T) {
	err := newCodecError(ErrMarshal, errors.New("encoding error"))

	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Fatal("errors.As should extract *CodecError")
	}

	if codecErr.Err != ErrMarshal {
		t.Errorf("Err = %v, want %v", codecErr.Err, ErrMarshal)
	}
}
