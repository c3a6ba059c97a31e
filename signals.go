package ferry

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serializer events.
var (
	SignalProbeStart     = capitan.NewSignal("ferry.probe.start", "Capability probe beginning")
	SignalProbeComplete  = capitan.NewSignal("ferry.probe.complete", "Capability probe finished")
	SignalEncodeStart    = capitan.NewSignal("ferry.encode.start", "Encode to native handle beginning")
	SignalEncodeComplete = capitan.NewSignal("ferry.encode.complete", "Encode to native handle finished")
	SignalDecodeStart    = capitan.NewSignal("ferry.decode.start", "Decode from native handle beginning")
	SignalDecodeComplete = capitan.NewSignal("ferry.decode.complete", "Decode from native handle finished")
)

// Keys for typed event data.
var (
	KeyHost          = capitan.NewStringKey("host")
	KeyStrategy      = capitan.NewStringKey("strategy")
	KeyComponentType = capitan.NewStringKey("component_type")
	KeySize          = capitan.NewIntKey("size")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
)

// emitProbeStart emits an event when probing begins.
func emitProbeStart(ctx context.Context, host string) {
	capitan.Emit(ctx, SignalProbeStart,
		KeyHost.Field(host),
	)
}

// emitProbeComplete emits an event when probing finishes.
// A non-nil cause is emitted at error severity.
func emitProbeComplete(ctx context.Context, host string, strategy Strategy, componentType string, duration time.Duration, cause error) {
	fields := []capitan.Field{
		KeyHost.Field(host),
		KeyStrategy.Field(strategy.String()),
		KeyComponentType.Field(componentType),
		KeyDuration.Field(duration),
	}
	if cause != nil {
		fields = append(fields, KeyError.Field(cause))
		capitan.Error(ctx, SignalProbeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalProbeComplete, fields...)
	}
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, strategy Strategy) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyStrategy.Field(strategy.String()),
	)
}

// emitEncodeComplete emits an event when encode finishes. size is the
// length of the JSON text handed to the host.
func emitEncodeComplete(ctx context.Context, strategy Strategy, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyStrategy.Field(strategy.String()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, strategy Strategy) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyStrategy.Field(strategy.String()),
	)
}

// emitDecodeComplete emits an event when decode finishes. size is the
// length of the JSON text the host produced.
func emitDecodeComplete(ctx context.Context, strategy Strategy, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyStrategy.Field(strategy.String()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
