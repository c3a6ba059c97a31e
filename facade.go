package ferry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/zoobzio/ferry/accessor"
	"github.com/zoobzio/ferry/lookup"
)

// facade probes once and publishes the outcome.
type facade struct {
	once  sync.Once
	probe func() *Serializer
	s     *Serializer
}

func (f *facade) get() *Serializer {
	f.once.Do(func() {
		f.s = f.probe()
	})
	return f.s
}

var global = &facade{probe: probeDefault}

// probeDefault probes the process registry with the descriptors its host
// version selects.
func probeDefault() *Serializer {
	reg := lookup.Default()
	version := reg.HostVersion()
	d, err := accessor.For(version)
	if err != nil {
		s := &Serializer{
			host:     version,
			strategy: StrategyNone,
			cause:    newInitError("descriptors", err, nil),
		}
		Logger().Warn("native component conversion unsupported",
			zap.String("host_version", version),
			zap.Error(err),
		)
		return s
	}
	return Probe(reg, d)
}

// Get returns the process-wide Serializer, probing the host registered in
// lookup.Default on first use. Concurrent first callers block until the
// probe completes; every caller observes the same Serializer.
func Get() *Serializer {
	return global.get()
}

// IsSupported reports whether the process-wide Serializer can convert.
func IsSupported() bool {
	return Get().IsSupported()
}
