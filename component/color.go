package component

import (
	"strconv"
	"strings"
)

// Named colors available on every host version.
const (
	Black       = "black"
	DarkBlue    = "dark_blue"
	DarkGreen   = "dark_green"
	DarkAqua    = "dark_aqua"
	DarkRed     = "dark_red"
	DarkPurple  = "dark_purple"
	Gold        = "gold"
	Gray        = "gray"
	DarkGray    = "dark_gray"
	Blue        = "blue"
	Green       = "green"
	Aqua        = "aqua"
	Red         = "red"
	LightPurple = "light_purple"
	Yellow      = "yellow"
	White       = "white"
)

type namedColor struct {
	name string
	rgb  uint32
}

// namedColors is ordered by legacy color code, which also breaks distance ties.
var namedColors = []namedColor{
	{Black, 0x000000},
	{DarkBlue, 0x0000aa},
	{DarkGreen, 0x00aa00},
	{DarkAqua, 0x00aaaa},
	{DarkRed, 0xaa0000},
	{DarkPurple, 0xaa00aa},
	{Gold, 0xffaa00},
	{Gray, 0xaaaaaa},
	{DarkGray, 0x555555},
	{Blue, 0x5555ff},
	{Green, 0x55ff55},
	{Aqua, 0x55ffff},
	{Red, 0xff5555},
	{LightPurple, 0xff55ff},
	{Yellow, 0xffff55},
	{White, 0xffffff},
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (uint32, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Hex formats rgb as "#rrggbb".
func Hex(rgb uint32) string {
	s := strconv.FormatUint(uint64(rgb&0xffffff), 16)
	return "#" + strings.Repeat("0", 6-len(s)) + s
}

// Nearest returns the named color closest to rgb by squared RGB distance.
func Nearest(rgb uint32) string {
	best, bestDist := namedColors[0].name, int64(-1)
	for _, nc := range namedColors {
		d := rgbDistance(rgb, nc.rgb)
		if bestDist < 0 || d < bestDist {
			best, bestDist = nc.name, d
		}
	}
	return best
}

func rgbDistance(a, b uint32) int64 {
	dr := int64(a>>16&0xff) - int64(b>>16&0xff)
	dg := int64(a>>8&0xff) - int64(b>>8&0xff)
	db := int64(a&0xff) - int64(b&0xff)
	return dr*dr + dg*dg + db*db
}

// Downsampled returns a copy of c with every hex color replaced by its
// nearest named color. Hosts that predate hex colors reject them.
// Colors that are not valid hex are left untouched.
func (c Component) Downsampled() Component {
	out := c.Clone()
	out.downsample()
	return out
}

func (c *Component) downsample() {
	if rgb, ok := ParseHex(c.Color); ok {
		c.Color = Nearest(rgb)
	}
	for i := range c.With {
		c.With[i].downsample()
	}
	for i := range c.Extra {
		c.Extra[i].downsample()
	}
	if c.Hover != nil && c.Hover.Contents != nil {
		c.Hover.Contents.downsample()
	}
}
