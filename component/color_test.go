package component

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"#ffaa00", 0xffaa00, true},
		{"#FFAA00", 0xffaa00, true},
		{"#000000", 0, true},
		{"red", 0, false},
		{"#12345", 0, false},
		{"#gggggg", 0, false},
		{"ffaa00", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseHex(%q) = %06x, %v, want %06x, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0xaa); got != "#0000aa" {
		t.Errorf("Hex(0xaa) = %q, want %q", got, "#0000aa")
	}
	if got := Hex(0xffaa00); got != "#ffaa00" {
		t.Errorf("Hex(0xffaa00) = %q, want %q", got, "#ffaa00")
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		rgb  uint32
		want string
	}{
		{0x000001, Black},
		{0xfefefe, White},
		{0xff0000, DarkRed},
		{0x55ff56, Green},
		{0xffab01, Gold},
		{0x5555fe, Blue},
	}

	for _, tt := range tests {
		t.Run(Hex(tt.rgb), func(t *testing.T) {
			if got := Nearest(tt.rgb); got != tt.want {
				t.Errorf("Nearest(%06x) = %q, want %q", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestNearest_ExactNamed(t *testing.T) {
	for _, nc := range namedColors {
		if got := Nearest(nc.rgb); got != nc.name {
			t.Errorf("Nearest(%06x) = %q, want %q", nc.rgb, got, nc.name)
		}
	}
}

func TestDownsampled(t *testing.T) {
	original := Text("x").WithColor("#fefefe").
		WithHover(Text("tip").WithColor("#ffab01")).
		Append(Text("y").WithColor("#000001"), Text("z").WithColor(Red), Text("w").WithColor("#zzzzzz"))

	got := original.Downsampled()

	if got.Color != White {
		t.Errorf("root color = %q, want %q", got.Color, White)
	}
	if got.Hover.Contents.Color != Gold {
		t.Errorf("hover color = %q, want %q", got.Hover.Contents.Color, Gold)
	}
	wantExtras := []string{Black, Red, "#zzzzzz"}
	for i, want := range wantExtras {
		if got.Extra[i].Color != want {
			t.Errorf("extra[%d] color = %q, want %q", i, got.Extra[i].Color, want)
		}
	}
	if original.Color != "#fefefe" || original.Extra[0].Color != "#000001" || original.Hover.Contents.Color != "#ffab01" {
		t.Error("Downsampled() mutated the receiver")
	}
}
