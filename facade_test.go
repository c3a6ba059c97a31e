package ferry

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/zoobzio/ferry/accessor"
	"github.com/zoobzio/ferry/component"
	"github.com/zoobzio/ferry/lookup"
	ferrytest "github.com/zoobzio/ferry/testing"
)

// countingLookup counts type resolutions made through it.
type countingLookup struct {
	lookup.Lookup
	resolves atomic.Int64
}

func (l *countingLookup) ResolveType(d accessor.TypeDescriptor) (reflect.Type, bool) {
	l.resolves.Add(1)
	return l.Lookup.ResolveType(d)
}

func TestFacade_ProbesOnce(t *testing.T) {
	l := &countingLookup{Lookup: ferrytest.DirectHost(t)}
	d := descriptors(t, ferrytest.DirectVersion)

	var probes atomic.Int64
	f := &facade{probe: func() *Serializer {
		probes.Add(1)
		return Probe(l, d)
	}}

	const callers = 32
	results := make([]*Serializer, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.get()
		}(i)
	}
	wg.Wait()

	if got := probes.Load(); got != 1 {
		t.Errorf("probes = %d, want 1", got)
	}
	if got := l.resolves.Load(); got != 2 {
		t.Errorf("type resolutions = %d, want 2", got)
	}
	for i, s := range results {
		if s != results[0] {
			t.Fatalf("caller %d saw a different serializer", i)
		}
		if !s.IsSupported() || s.Strategy() != StrategyDirect {
			t.Errorf("caller %d: supported = %v, strategy = %s", i, s.IsSupported(), s.Strategy())
		}
	}
}

func TestFacade_CachesFailure(t *testing.T) {
	ctx := context.Background()
	l := &countingLookup{Lookup: ferrytest.EmptyHost(t)}
	d := descriptors(t, ferrytest.DirectVersion)
	f := &facade{probe: func() *Serializer { return Probe(l, d) }}

	first := f.get().Cause()
	for i := 0; i < 10; i++ {
		if f.get().IsSupported() {
			t.Fatal("IsSupported() = true, want false")
		}
		if f.get().Cause() != first {
			t.Fatal("Cause() changed between calls")
		}

		_, err := f.get().Encode(ctx, component.Text("hello"))
		if !errors.Is(err, ErrUnsupported) || !errors.Is(err, ErrTypeNotFound) {
			t.Fatalf("Encode() error = %v, want ErrUnsupported caused by ErrTypeNotFound", err)
		}
		_, err = f.get().Decode(ctx, ferrytest.NewChat("hello"))
		if !errors.Is(err, ErrUnsupported) || !errors.Is(err, ErrTypeNotFound) {
			t.Fatalf("Decode() error = %v, want ErrUnsupported caused by ErrTypeNotFound", err)
		}
	}
	if got := l.resolves.Load(); got != 1 {
		t.Errorf("type resolutions = %d, want 1", got)
	}
}

func withDefaultHost(t *testing.T, version string, classes ...lookup.Class) {
	t.Helper()
	r := lookup.Default()
	r.Reset()
	t.Cleanup(r.Reset)
	r.SetHostVersion(version)
	for _, c := range classes {
		if err := lookup.Define(c); err != nil {
			t.Fatalf("Define(%s) error: %v", c.Name, err)
		}
	}
}

func TestProbeDefault(t *testing.T) {
	withDefaultHost(t, ferrytest.DirectVersion,
		lookup.Class{Name: ferrytest.ComponentClass, Type: ferrytest.ChatType},
		lookup.Class{
			Name:    ferrytest.SerializerClass,
			Type:    reflect.TypeFor[directStatics](),
			Statics: ferrytest.NewDirectStatics(),
		},
	)

	s := probeDefault()
	if s.Strategy() != StrategyDirect {
		t.Fatalf("Strategy() = %s, want direct (cause %v)", s.Strategy(), s.Cause())
	}
	if s.Host() != "modern" {
		t.Errorf("Host() = %q, want modern", s.Host())
	}
}

func TestProbeDefault_UnknownVersion(t *testing.T) {
	withDefaultHost(t, "1.7.10")

	s := probeDefault()
	if s.IsSupported() {
		t.Fatal("IsSupported() = true, want false")
	}
	var initErr *InitError
	if !errors.As(s.Cause(), &initErr) || initErr.Step != "descriptors" {
		t.Fatalf("Cause() = %v, want descriptors InitError", s.Cause())
	}
	if !errors.Is(s.Cause(), accessor.ErrUnknownHostVersion) {
		t.Errorf("Cause() = %v, want ErrUnknownHostVersion", s.Cause())
	}
}

func TestGet(t *testing.T) {
	s := Get()
	if s != Get() {
		t.Error("Get() should return the same serializer every call")
	}
	if IsSupported() != s.IsSupported() {
		t.Error("IsSupported() disagrees with Get()")
	}
}
