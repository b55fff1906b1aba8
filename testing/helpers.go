// Package testing provides test utilities for cipherkey.
package testing

import (
	"bytes"
	"io"
	"testing"

	"github.com/zoobzio/cipherkey"
)

// TestPassphrase returns a passphrase for the aes method.
func TestPassphrase(t testing.TB) string {
	t.Helper()
	return "correct horse battery staple"
}

// TestShift returns a caesar key.
func TestShift(t testing.TB) string {
	t.Helper()
	return "7"
}

// SaltReader returns a reader yielding the repeating byte sequence
// 0, 1, ..., 255. Tokens built from it are reproducible.
func SaltReader() io.Reader {
	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}
	return &cycleReader{src: bytes.NewReader(seq), seq: seq}
}

type cycleReader struct {
	src *bytes.Reader
	seq []byte
}

func (r *cycleReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := r.src.Read(p[n:])
		n += m
		if err == io.EOF {
			r.src.Reset(r.seq)
		}
	}
	return n, nil
}

// TestEngine returns an engine whose AES tokens are reproducible.
func TestEngine(t testing.TB) *cipherkey.Engine {
	t.Helper()
	return cipherkey.New(cipherkey.WithCipher(cipherkey.OpenSSL(cipherkey.WithRandReader(SaltReader()))))
}

// SimpleNote is a test type with no transform tags.
type SimpleNote struct {
	ID   string `json:"id" yaml:"id" msgpack:"id" bson:"id" toml:"id"`
	Body string `json:"body" yaml:"body" msgpack:"body" bson:"body" toml:"body"`
}

// Clone implements Cloner[SimpleNote].
func (n SimpleNote) Clone() SimpleNote { return n }

// SealedNote is a test type carrying every method.
type SealedNote struct {
	ID      string `json:"id" yaml:"id" msgpack:"id" bson:"id" toml:"id"`
	Body    string `json:"body" yaml:"body" msgpack:"body" bson:"body" toml:"body" transform:"aes"`
	Shifted string `json:"shifted" yaml:"shifted" msgpack:"shifted" bson:"shifted" toml:"shifted" transform:"caesar"`
	Ref     string `json:"ref" yaml:"ref" msgpack:"ref" bson:"ref" toml:"ref" transform:"base64"`
	Code    string `json:"code" yaml:"code" msgpack:"code" bson:"code" toml:"code" transform:"base32"`
	Link    string `json:"link" yaml:"link" msgpack:"link" bson:"link" toml:"link" transform:"url"`
}

// Clone implements Cloner[SealedNote].
func (n SealedNote) Clone() SealedNote { return n }

// NewSealedNote returns a populated SealedNote.
func NewSealedNote() *SealedNote {
	return &SealedNote{
		ID:      "note-1",
		Body:    "héllo wörld ✓",
		Shifted: "Hello, World!",
		Ref:     "100% a+b",
		Code:    "foobar",
		Link:    "https://example.com/?q=a b&x=ü",
	}
}

// SealedProcessor returns a processor for SealedNote with every key set.
func SealedProcessor(t testing.TB, codec cipherkey.Codec) *cipherkey.Processor[SealedNote] {
	t.Helper()
	proc, err := cipherkey.NewProcessor[SealedNote](codec)
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	proc.SetKey(cipherkey.MethodAES, TestPassphrase(t))
	proc.SetKey(cipherkey.MethodCaesar, TestShift(t))
	return proc
}
