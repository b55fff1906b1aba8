package cipherkey

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for transform events.
var (
	SignalTransformStart    = capitan.NewSignal("cipherkey.transform.start", "Transform beginning")
	SignalTransformComplete = capitan.NewSignal("cipherkey.transform.complete", "Transform finished")
	SignalMethodDefaulted   = capitan.NewSignal("cipherkey.method.defaulted", "Unknown method replaced by catalog default")
	SignalProcessorCreated  = capitan.NewSignal("cipherkey.processor.created", "Processor instantiated")
	SignalSealStart         = capitan.NewSignal("cipherkey.seal.start", "Seal operation beginning")
	SignalSealComplete      = capitan.NewSignal("cipherkey.seal.complete", "Seal operation finished")
	SignalOpenStart         = capitan.NewSignal("cipherkey.open.start", "Open operation beginning")
	SignalOpenComplete      = capitan.NewSignal("cipherkey.open.complete", "Open operation finished")
)

// Keys for typed event data. Text and keys are never emitted.
var (
	KeyMethod          = capitan.NewStringKey("method")
	KeyRequestedMethod = capitan.NewStringKey("requested_method")
	KeyDirection       = capitan.NewStringKey("direction")
	KeyInputSize       = capitan.NewIntKey("input_size")
	KeyOutputSize      = capitan.NewIntKey("output_size")
	KeyContentType     = capitan.NewStringKey("content_type")
	KeyTypeName        = capitan.NewStringKey("type_name")
	KeySize            = capitan.NewIntKey("size")
	KeyFieldCount      = capitan.NewIntKey("field_count")
	KeyDuration        = capitan.NewDurationKey("duration")
	KeyError           = capitan.NewErrorKey("error")
)

// emitTransformStart emits an event when a transform begins.
func emitTransformStart(ctx context.Context, method Method, dir Direction, inputSize int) {
	capitan.Emit(ctx, SignalTransformStart,
		KeyMethod.Field(string(method)),
		KeyDirection.Field(dir.String()),
		KeyInputSize.Field(inputSize),
	)
}

// emitTransformComplete emits an event when a transform finishes.
func emitTransformComplete(ctx context.Context, method Method, dir Direction, outputSize int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyMethod.Field(string(method)),
		KeyDirection.Field(dir.String()),
		KeyOutputSize.Field(outputSize),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalTransformComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalTransformComplete, fields...)
	}
}

// emitMethodDefaulted emits an event when an unknown method id falls back.
func emitMethodDefaulted(ctx context.Context, requested, used Method) {
	capitan.Emit(ctx, SignalMethodDefaulted,
		KeyRequestedMethod.Field(string(requested)),
		KeyMethod.Field(string(used)),
		KeyError.Field(ErrUnknownMethod),
	)
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string, fields int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
	)
}

// emitSealStart emits an event when seal begins.
func emitSealStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSealStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSealComplete emits an event when seal finishes.
func emitSealComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSealComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSealComplete, fields...)
	}
}

// emitOpenStart emits an event when open begins.
func emitOpenStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalOpenStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitOpenComplete emits an event when open finishes.
func emitOpenComplete(ctx context.Context, contentType, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalOpenComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalOpenComplete, fields...)
	}
}
