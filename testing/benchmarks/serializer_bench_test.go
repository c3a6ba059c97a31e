package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/ferry"
	"github.com/zoobzio/ferry/accessor"
	"github.com/zoobzio/ferry/component"
	"github.com/zoobzio/ferry/lookup"
	ferrytest "github.com/zoobzio/ferry/testing"
)

func probe(b *testing.B, host func(testing.TB) *lookup.Registry, version string) *ferry.Serializer {
	b.Helper()
	d, err := accessor.For(version)
	if err != nil {
		b.Fatalf("For(%q) error: %v", version, err)
	}
	s := ferry.Probe(host(b), d)
	if !s.IsSupported() {
		b.Fatalf("unsupported: %v", s.Cause())
	}
	return s
}

var message = component.Text("Hello, ").
	WithColor(component.Gold).
	Append(component.Text("world").WithDecoration(component.Bold, true))

func BenchmarkProbe_GSON(b *testing.B) {
	d, _ := accessor.For(ferrytest.GSONVersion)
	host := ferrytest.GSONHost(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ferry.Probe(host, d)
	}
}

func BenchmarkProbe_Direct(b *testing.B) {
	d, _ := accessor.For(ferrytest.DirectVersion)
	host := ferrytest.DirectHost(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ferry.Probe(host, d)
	}
}

func BenchmarkEncode_GSON(b *testing.B) {
	s := probe(b, ferrytest.GSONHost, ferrytest.GSONVersion)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Encode(ctx, message)
	}
}

func BenchmarkEncode_BoundAdapter(b *testing.B) {
	s := probe(b, ferrytest.LegacyHost, ferrytest.LegacyVersion)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Encode(ctx, message)
	}
}

func BenchmarkEncode_Direct(b *testing.B) {
	s := probe(b, ferrytest.DirectHost, ferrytest.DirectVersion)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Encode(ctx, message)
	}
}

func BenchmarkDecode_GSON(b *testing.B) {
	s := probe(b, ferrytest.GSONHost, ferrytest.GSONVersion)
	ctx := context.Background()
	h, _ := s.Encode(ctx, message)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Decode(ctx, h)
	}
}

func BenchmarkDecode_Direct(b *testing.B) {
	s := probe(b, ferrytest.DirectHost, ferrytest.DirectVersion)
	ctx := context.Background()
	h, _ := s.Encode(ctx, message)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Decode(ctx, h)
	}
}

func BenchmarkEncode_Unsupported(b *testing.B) {
	d, _ := accessor.For(ferrytest.DirectVersion)
	s := ferry.Probe(ferrytest.EmptyHost(b), d)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Encode(ctx, message)
	}
}

func BenchmarkComponentJSON(b *testing.B) {
	s := component.JSON()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		text, _ := s.Serialize(message)
		_, _ = s.Deserialize(text)
	}
}

func BenchmarkComponentJSON_Downsample(b *testing.B) {
	s := component.JSON(component.DownsampleColors())
	c := message.WithColor("#12ab34")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Serialize(c)
	}
}
