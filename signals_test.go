package cipherkey

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitTransformStart(_ *testing.T) {
	// Should not panic
	emitTransformStart(context.Background(), MethodBase64, Encrypt, 12)
}

func TestEmitTransformComplete_Success(_ *testing.T) {
	emitTransformComplete(context.Background(), MethodBase64, Encrypt, 16, 100*time.Microsecond, nil)
}

func TestEmitTransformComplete_Error(_ *testing.T) {
	emitTransformComplete(context.Background(), MethodAES, Decrypt, 0, 100*time.Microsecond, errors.New("test error"))
}

func TestEmitMethodDefaulted(_ *testing.T) {
	emitMethodDefaulted(context.Background(), Method("rot47"), MethodCaesar)
}

func TestEmitProcessorCreated(_ *testing.T) {
	emitProcessorCreated(context.Background(), "application/json", "TestType", 3)
}

func TestEmitSealStart(_ *testing.T) {
	emitSealStart(context.Background(), "application/json", "TestType")
}

func TestEmitSealComplete_Success(_ *testing.T) {
	emitSealComplete(context.Background(), "application/json", "TestType", 1024, 100*time.Millisecond, nil)
}

func TestEmitSealComplete_Error(_ *testing.T) {
	emitSealComplete(context.Background(), "application/json", "TestType", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitOpenStart(_ *testing.T) {
	emitOpenStart(context.Background(), "application/json", "TestType", 512)
}

func TestEmitOpenComplete_Success(_ *testing.T) {
	emitOpenComplete(context.Background(), "application/json", "TestType", 100*time.Millisecond, nil)
}

func TestEmitOpenComplete_Error(_ *testing.T) {
	emitOpenComplete(context.Background(), "application/json", "TestType", 100*time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalTransformStart", SignalTransformStart},
		{"SignalTransformComplete", SignalTransformComplete},
		{"SignalMethodDefaulted", SignalMethodDefaulted},
		{"SignalProcessorCreated", SignalProcessorCreated},
		{"SignalSealStart", SignalSealStart},
		{"SignalSealComplete", SignalSealComplete},
		{"SignalOpenStart", SignalOpenStart},
		{"SignalOpenComplete", SignalOpenComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyMethod", KeyMethod},
		{"KeyRequestedMethod", KeyRequestedMethod},
		{"KeyDirection", KeyDirection},
		{"KeyInputSize", KeyInputSize},
		{"KeyOutputSize", KeyOutputSize},
		{"KeyContentType", KeyContentType},
		{"KeyTypeName", KeyTypeName},
		{"KeySize", KeySize},
		{"KeyFieldCount", KeyFieldCount},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
