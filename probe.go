package ferry

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/zoobzio/ferry/accessor"
	"github.com/zoobzio/ferry/lookup"
)

// Probe detects how to convert components for the host l describes and
// returns a Serializer bound to the first strategy that resolves.
//
// Strategies are tried in priority order:
//
//  1. GSON delegation: the serializer type has a static JSON adapter field.
//  2. Direct call: the serializer type has static string-to-component and
//     component-to-string functions.
//
// Probe never fails. When nothing resolves, the returned Serializer reports
// IsSupported false and every conversion fails with the recorded cause.
func Probe(l lookup.Lookup, d accessor.Descriptors, opts ...Option) *Serializer {
	o := newOptions(d.LegacyColors, opts)
	ctx := context.Background()
	start := time.Now()
	emitProbeStart(ctx, d.Host)

	s := probe(l, d, o)

	var typeName string
	if s.componentType != nil {
		typeName = s.componentType.String()
	}
	emitProbeComplete(ctx, d.Host, s.strategy, typeName, time.Since(start), s.cause)
	if s.cause != nil {
		o.logger.Warn("native component conversion unsupported",
			zap.String("host", d.Host),
			zap.Error(s.cause),
		)
	} else {
		o.logger.Info("native component conversion ready",
			zap.String("host", d.Host),
			zap.Stringer("strategy", s.strategy),
			zap.String("component_type", typeName),
		)
	}
	return s
}

func probe(l lookup.Lookup, d accessor.Descriptors, o options) (s *Serializer) {
	s = &Serializer{
		host:     d.Host,
		strategy: StrategyNone,
		json:     o.json,
		logger:   o.logger,
	}
	defer func() {
		if r := recover(); r != nil {
			s.conv = nil
			s.strategy = StrategyNone
			s.cause = newInitError("probe", ErrProbePanic, fmt.Errorf("%v", r))
		}
	}()

	componentType, ok := l.ResolveType(d.Component)
	if !ok {
		s.cause = newInitError("component type", ErrTypeNotFound, fmt.Errorf("no type named %s", d.Component))
		return s
	}
	s.componentType = componentType

	serializerType, ok := l.ResolveType(d.Serializer)
	if !ok {
		s.cause = newInitError("serializer type", ErrTypeNotFound, fmt.Errorf("no type named %s", d.Serializer))
		return s
	}

	if field, ok := l.ResolveField(serializerType, d.Adapter); ok {
		conv, err := gsonFrom(field, componentType)
		if err != nil {
			s.cause = err
			return s
		}
		s.conv, s.strategy = conv, StrategyGSON
		return s
	}

	fns, err := l.StaticFunctions(serializerType)
	if err != nil {
		s.cause = newInitError("static functions", ErrNoStrategy, err)
		return s
	}
	decode, encode, ok := selectFunctions(fns, componentType)
	if !ok {
		s.cause = newInitError("static functions", ErrNoStrategy,
			fmt.Errorf("%s has no text conversion pair among %d functions", serializerType, len(fns)))
		return s
	}
	s.conv = &directConverter{encode: encode, decode: decode}
	s.strategy = StrategyDirect
	return s
}

// gsonFrom reads the adapter field and adopts its value.
func gsonFrom(field lookup.Field, componentType reflect.Type) (*gsonConverter, error) {
	v, err := field.Get()
	if err != nil {
		return nil, newInitError("adapter field", ErrFieldUnreadable, err)
	}
	if v == nil {
		return nil, newInitError("adapter field", ErrAdapterNil, errors.New(field.Name))
	}
	adapter, err := adapterOf(v)
	if err != nil {
		return nil, newInitError("adapter field", ErrAdapterShape, err)
	}
	return &gsonConverter{adapter: adapter, target: componentType}, nil
}
