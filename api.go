// Package ferry converts rich-text components to and from a host's internal
// text representation.
//
// The host's internal types are unstable: they are renamed, moved and
// reshaped between releases. ferry probes the running host once, through a
// lookup.Lookup, and binds to the first conversion strategy that resolves:
//
//   - GSON delegation: the host serializer type carries a static JSON adapter
//     that converts internal components to and from JSON text.
//   - Direct call: the host serializer type has static functions converting
//     JSON text to an internal component and back.
//
// Either way, the stable side of the conversion is the canonical component
// JSON format of package component.
//
// # Usage
//
// Host bindings register their classes with lookup.Default, after which the
// process-wide Serializer is available:
//
//	if !ferry.IsSupported() {
//	    return ferry.Get().Cause()
//	}
//	handle, err := ferry.Get().Encode(ctx, component.Text("hello"))
//
// A Serializer for a specific lookup and descriptor set is built with Probe.
//
// # Errors
//
// Every Encode and Decode error is an *UnsupportedError carrying
// ErrUnsupported. Its cause is an *InitError when the host was never
// supported and a *ConversionError when the individual call failed:
//
//	var conv *ferry.ConversionError
//	if errors.As(err, &conv) {
//	    // the host is supported; this value could not be converted
//	}
//
// # Signals
//
// Probes and conversions emit capitan signals (SignalProbeComplete,
// SignalEncodeComplete, SignalDecodeComplete and their start counterparts).
// Probe outcomes are logged through the zap logger set with SetLogger.
package ferry

// NativeHandle is an opaque value of the host's internal component type.
// It is never inspected or retained.
type NativeHandle any
