package testing

import (
	"bytes"
	"io"
	"testing"

	"github.com/zoobzio/cipherkey"
	"github.com/zoobzio/cipherkey/format"
)

func TestSaltReader_Cycles(t *testing.T) {
	buf := make([]byte, 300)
	if _, err := io.ReadFull(SaltReader(), buf); err != nil {
		t.Fatalf("ReadFull() error: %v", err)
	}
	if buf[0] != 0 || buf[255] != 255 || buf[256] != 0 || buf[299] != 43 {
		t.Errorf("unexpected sequence: %v", buf[250:260])
	}
}

func TestTestEngine_Reproducible(t *testing.T) {
	a, err := TestEngine(t).AESEncrypt("secret", TestPassphrase(t))
	if err != nil {
		t.Fatalf("AESEncrypt() error: %v", err)
	}
	b, err := TestEngine(t).AESEncrypt("secret", TestPassphrase(t))
	if err != nil {
		t.Fatalf("AESEncrypt() error: %v", err)
	}
	if a != b {
		t.Errorf("tokens differ: %q vs %q", a, b)
	}

	plain, err := cipherkey.AESDecrypt(a, TestPassphrase(t))
	if err != nil || plain != "secret" {
		t.Errorf("AESDecrypt() = %q, %v", plain, err)
	}
}

func TestSealedProcessor_Validates(t *testing.T) {
	proc := SealedProcessor(t, format.JSON())
	if err := proc.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestSealedProcessor_Reproducible(t *testing.T) {
	seal := func() []byte {
		proc := SealedProcessor(t, format.JSON())
		proc.SetEngine(TestEngine(t))
		data, err := proc.Seal(t.Context(), NewSealedNote())
		if err != nil {
			t.Fatalf("Seal() error: %v", err)
		}
		return data
	}

	if a, b := seal(), seal(); !bytes.Equal(a, b) {
		t.Errorf("sealed output differs:\n%s\n%s", a, b)
	}
}

func TestSealedNote_Clone(t *testing.T) {
	original := NewSealedNote()
	if cloned := original.Clone(); cloned != *original {
		t.Error("Clone() should copy all fields")
	}
}
