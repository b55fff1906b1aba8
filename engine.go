package cipherkey

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Request is a single transform invocation.
// An empty Key means no key was supplied.
type Request struct {
	Text      string
	Method    Method
	Direction Direction
	Key       string
}

// Option configures an Engine.
type Option func(*Engine)

// WithCipher sets the primitive behind the AES method.
func WithCipher(c Cipher) Option {
	return func(e *Engine) {
		e.cipher = c
	}
}

// Engine routes requests to codecs. It holds no mutable state after
// construction and is safe for concurrent use.
type Engine struct {
	cipher Cipher
}

// New returns an Engine. Without options AES uses the OpenSSL cipher.
func New(opts ...Option) *Engine {
	e := &Engine{cipher: OpenSSL()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine used by the package-level functions.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Transform applies the requested method in the requested direction.
//
// Unknown methods fall back to the first catalog entry. For Caesar the key
// is read with ParseShift; for AES it is passed through verbatim; other
// methods ignore it. Codec failures are returned as *TransformError.
func (e *Engine) Transform(ctx context.Context, req Request) (string, error) {
	method := req.Method
	if !IsValidMethod(method) {
		method = catalog[0].ID
		emitMethodDefaulted(ctx, req.Method, method)
	}

	start := time.Now()
	emitTransformStart(ctx, method, req.Direction, len(req.Text))

	out, err := e.dispatch(method, req)

	emitTransformComplete(ctx, method, req.Direction, len(out), time.Since(start), err)
	return out, err
}

func (e *Engine) dispatch(method Method, req Request) (string, error) {
	forward := req.Direction != Decrypt

	switch method {
	case MethodCaesar:
		return Caesar(req.Text, ParseShift(req.Key), !forward), nil
	case MethodAES:
		if forward {
			return e.AESEncrypt(req.Text, req.Key)
		}
		return e.AESDecrypt(req.Text, req.Key)
	case MethodBase64:
		if forward {
			return Base64Encode(req.Text), nil
		}
		return Base64Decode(req.Text)
	case MethodBase32:
		if forward {
			return Base32Encode(req.Text), nil
		}
		return Base32Decode(req.Text)
	case MethodURL:
		if forward {
			return URLEncode(req.Text), nil
		}
		return URLDecode(req.Text)
	default:
		panic(fmt.Sprintf("cipherkey: unhandled method %q", method))
	}
}

// Transform runs text through method in direction using the default engine.
func Transform(text string, method Method, direction Direction, key string) (string, error) {
	return Default().Transform(context.Background(), Request{
		Text:      text,
		Method:    method,
		Direction: direction,
		Key:       key,
	})
}
