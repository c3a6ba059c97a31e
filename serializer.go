package ferry

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/zoobzio/ferry/component"
)

const (
	opEncode = "encode"
	opDecode = "decode"
)

// Serializer converts components to and from native handles using the
// strategy its probe selected.
//
// A Serializer is immutable once probed and safe for concurrent use. The
// zero value is unsupported and fails every conversion with ErrNotProbed.
type Serializer struct {
	host          string
	strategy      Strategy
	cause         error
	conv          converter
	componentType reflect.Type
	json          component.Serializer
	logger        *zap.Logger
}

// IsSupported reports whether conversions can succeed on this host.
func (s *Serializer) IsSupported() bool {
	return s != nil && s.conv != nil
}

// Strategy returns the strategy the probe selected.
func (s *Serializer) Strategy() Strategy {
	if !s.IsSupported() {
		return StrategyNone
	}
	return s.strategy
}

// Cause returns why the serializer is unsupported, or nil when it is
// supported. The returned error is an *InitError.
func (s *Serializer) Cause() error {
	if s.IsSupported() {
		return nil
	}
	if s == nil || s.cause == nil {
		return newInitError("probe", ErrNotProbed, nil)
	}
	return s.cause
}

// Host returns the descriptor table entry the serializer was probed with.
func (s *Serializer) Host() string {
	if s == nil {
		return ""
	}
	return s.host
}

// ComponentType returns the host's internal component type, or nil when it
// was never resolved.
func (s *Serializer) ComponentType() reflect.Type {
	if s == nil {
		return nil
	}
	return s.componentType
}

// Encode converts c into a native handle of the host's component type.
// Every error carries ErrUnsupported.
func (s *Serializer) Encode(ctx context.Context, c component.Component) (NativeHandle, error) {
	if !s.IsSupported() {
		return nil, &UnsupportedError{Op: opEncode, Cause: s.Cause()}
	}

	start := time.Now()
	emitEncodeStart(ctx, s.strategy)
	h, size, err := s.encode(c)
	emitEncodeComplete(ctx, s.strategy, size, time.Since(start), err)
	if err != nil {
		s.logger.Debug("native encode failed", zap.Stringer("strategy", s.strategy), zap.Error(err))
		return nil, err
	}
	return h, nil
}

func (s *Serializer) encode(c component.Component) (NativeHandle, int, error) {
	text, err := s.json.Serialize(c)
	if err != nil {
		return nil, 0, s.fault(opEncode, "component json", err)
	}
	h, err := guard(func() (NativeHandle, error) {
		return s.conv.fromText(text)
	})
	if err != nil {
		return nil, len(text), s.fault(opEncode, "host", err)
	}
	if isNil(h) {
		return nil, len(text), s.fault(opEncode, "host", ErrNilHandle)
	}
	return h, len(text), nil
}

// Decode converts a native handle of the host's component type into a
// component. Every error carries ErrUnsupported.
func (s *Serializer) Decode(ctx context.Context, h NativeHandle) (component.Component, error) {
	if !s.IsSupported() {
		return component.Component{}, &UnsupportedError{Op: opDecode, Cause: s.Cause()}
	}

	start := time.Now()
	emitDecodeStart(ctx, s.strategy)
	c, size, err := s.decode(h)
	emitDecodeComplete(ctx, s.strategy, size, time.Since(start), err)
	if err != nil {
		s.logger.Debug("native decode failed", zap.Stringer("strategy", s.strategy), zap.Error(err))
		return component.Component{}, err
	}
	return c, nil
}

func (s *Serializer) decode(h NativeHandle) (component.Component, int, error) {
	if isNil(h) {
		return component.Component{}, 0, s.fault(opDecode, "handle", ErrNilHandle)
	}
	var text string
	_, err := guard(func() (NativeHandle, error) {
		var err error
		text, err = s.conv.toText(h)
		return nil, err
	})
	if err != nil {
		return component.Component{}, 0, s.fault(opDecode, "host", err)
	}
	c, err := s.json.Deserialize(text)
	if err != nil {
		return component.Component{}, len(text), s.fault(opDecode, "component json", err)
	}
	return c, len(text), nil
}

func (s *Serializer) fault(op, stage string, err error) error {
	return &UnsupportedError{Op: op, Cause: newConversionError(s.strategy, stage, err)}
}

// guard runs fn, turning a panic in host code into an error.
func guard(fn func() (NativeHandle, error)) (h NativeHandle, err error) {
	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = fmt.Errorf("host panicked: %v", r)
		}
	}()
	return fn()
}

// isNil reports whether h is nil or a typed nil.
func isNil(h NativeHandle) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
