package ferry

import (
	"go.uber.org/zap"

	"github.com/zoobzio/ferry/component"
)

// Option configures a probe.
type Option func(*options)

type options struct {
	logger *zap.Logger
	json   component.Serializer
}

// WithLogger sets the logger a Serializer reports to.
// Defaults to the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithComponentSerializer replaces the component JSON codec that text is
// read and written with. Defaults to component.JSON, with colors
// downsampled when the host predates hex colors.
func WithComponentSerializer(cs component.Serializer) Option {
	return func(o *options) {
		o.json = cs
	}
}

func newOptions(legacyColors bool, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	if o.json == nil {
		if legacyColors {
			o.json = component.JSON(component.DownsampleColors())
		} else {
			o.json = component.JSON()
		}
	}
	return o
}
