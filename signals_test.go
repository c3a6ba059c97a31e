package ferry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitProbeStart(_ *testing.T) {
	emitProbeStart(context.Background(), "modern")
}

func TestEmitProbeComplete_Success(_ *testing.T) {
	emitProbeComplete(context.Background(), "modern", StrategyDirect, "*testing.Chat", 5*time.Millisecond, nil)
}

func TestEmitProbeComplete_Error(_ *testing.T) {
	emitProbeComplete(context.Background(), "modern", StrategyNone, "", 5*time.Millisecond, errors.New("test error"))
}

func TestEmitEncode(_ *testing.T) {
	emitEncodeStart(context.Background(), StrategyGSON)
	emitEncodeComplete(context.Background(), StrategyGSON, 16, time.Millisecond, nil)
	emitEncodeComplete(context.Background(), StrategyGSON, 0, time.Millisecond, errors.New("test error"))
}

func TestEmitDecode(_ *testing.T) {
	emitDecodeStart(context.Background(), StrategyDirect)
	emitDecodeComplete(context.Background(), StrategyDirect, 16, time.Millisecond, nil)
	emitDecodeComplete(context.Background(), StrategyDirect, 0, time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalProbeStart", SignalProbeStart},
		{"SignalProbeComplete", SignalProbeComplete},
		{"SignalEncodeStart", SignalEncodeStart},
		{"SignalEncodeComplete", SignalEncodeComplete},
		{"SignalDecodeStart", SignalDecodeStart},
		{"SignalDecodeComplete", SignalDecodeComplete},
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
		{"KeyHost", KeyHost},
		{"KeyStrategy", KeyStrategy},
		{"KeyComponentType", KeyComponentType},
		{"KeySize", KeySize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
