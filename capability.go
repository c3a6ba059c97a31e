package ferry

// Strategy identifies how a Serializer reaches the host's conversion code.
type Strategy string

const (
	// StrategyNone means no strategy resolved; every operation fails.
	StrategyNone Strategy = "none"

	// StrategyGSON delegates to the host serializer's shared JSON adapter.
	StrategyGSON Strategy = "gson"

	// StrategyDirect calls the host serializer's static text functions.
	StrategyDirect Strategy = "direct"
)

// String returns the strategy name.
func (s Strategy) String() string {
	if s == "" {
		return string(StrategyNone)
	}
	return string(s)
}

// Supported reports whether s converts anything.
func (s Strategy) Supported() bool {
	return s == StrategyGSON || s == StrategyDirect
}
