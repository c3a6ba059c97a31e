package ferry

import "testing"

func TestStrategy(t *testing.T) {
	tests := []struct {
		strategy  Strategy
		name      string
		supported bool
	}{
		{StrategyGSON, "gson", true},
		{StrategyDirect, "direct", true},
		{StrategyNone, "none", false},
		{"", "none", false},
		{"unknown", "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.strategy.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.strategy.Supported(); got != tt.supported {
				t.Errorf("Supported() = %v, want %v", got, tt.supported)
			}
		})
	}
}
