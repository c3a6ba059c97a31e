package component

import "testing"

func TestBuilders(t *testing.T) {
	c := Text("Hello, ").
		WithColor(Gold).
		Append(Text("world").WithDecoration(Bold, true))

	if c.Text != "Hello, " || c.Color != Gold {
		t.Errorf("unexpected root: %+v", c)
	}
	if len(c.Extra) != 1 || c.Extra[0].Text != "world" {
		t.Fatalf("unexpected extras: %+v", c.Extra)
	}
	if on, set := c.Extra[0].Decorated(Bold); !on || !set {
		t.Errorf("Decorated(Bold) = %v, %v, want true, true", on, set)
	}
	if _, set := c.Decorated(Italic); set {
		t.Error("Decorated(Italic) should be unset")
	}
}

func TestBuildersDoNotMutate(t *testing.T) {
	base := Text("base")
	_ = base.WithColor(Red)
	_ = base.WithDecoration(Italic, true)
	_ = base.Append(Text("child"))
	_ = base.WithClick(RunCommand, "/help")
	_ = base.WithHover(Text("tip"))

	if !base.Equal(Text("base")) {
		t.Errorf("builder mutated receiver: %+v", base)
	}
}

func TestWithDecoration_Unknown(t *testing.T) {
	c := Text("x").WithDecoration(Decoration("sparkle"), true)
	if !c.Equal(Text("x")) {
		t.Errorf("unknown decoration should be ignored: %+v", c)
	}
	if _, set := c.Decorated(Decoration("sparkle")); set {
		t.Error("unknown decoration should never be set")
	}
}

func TestTranslatableAndKeybind(t *testing.T) {
	c := Translatable("chat.type.text", Text("Steve"), Text("hi"))
	if c.Translate != "chat.type.text" || len(c.With) != 2 {
		t.Errorf("unexpected translatable: %+v", c)
	}
	if k := Keybind("key.jump"); k.Keybind != "key.jump" {
		t.Errorf("unexpected keybind: %+v", k)
	}
}

func TestPlainText(t *testing.T) {
	c := Text("a").Append(Text("b").Append(Text("c")), Keybind("key.jump"))
	if got := c.PlainText(); got != "abckey.jump" {
		t.Errorf("PlainText() = %q, want %q", got, "abckey.jump")
	}
}

func TestClone_Isolation(t *testing.T) {
	original := Text("root").
		WithDecoration(Bold, true).
		WithClick(OpenURL, "https://example.com").
		WithHover(Text("tip")).
		Append(Text("child"))

	clone := original.Clone()
	clone.Extra[0].Text = "changed"
	*clone.Bold = false
	clone.Click.Value = "changed"
	clone.Hover.Contents.Text = "changed"

	if original.Extra[0].Text != "child" {
		t.Error("clone shares extras with original")
	}
	if !*original.Bold {
		t.Error("clone shares decorations with original")
	}
	if original.Click.Value != "https://example.com" {
		t.Error("clone shares click event with original")
	}
	if original.Hover.Contents.Text != "tip" {
		t.Error("clone shares hover contents with original")
	}
}

func TestEqual(t *testing.T) {
	on, off := true, false
	tests := []struct {
		name string
		a, b Component
		want bool
	}{
		{"same text", Text("a"), Text("a"), true},
		{"different text", Text("a"), Text("b"), false},
		{"nil vs empty extras", Component{Text: "a"}, Component{Text: "a", Extra: []Component{}}, true},
		{"decoration set vs unset", Component{Text: "a", Bold: &on}, Text("a"), false},
		{"decoration values", Component{Text: "a", Bold: &on}, Component{Text: "a", Bold: &off}, false},
		{"decoration pointers", Component{Text: "a", Bold: &on}, Component{Text: "a", Bold: &[]bool{true}[0]}, true},
		{"nested extras", Text("a").Append(Text("b")), Text("a").Append(Text("c")), false},
		{"click", Text("a").WithClick(RunCommand, "/a"), Text("a").WithClick(RunCommand, "/a"), true},
		{"click missing", Text("a").WithClick(RunCommand, "/a"), Text("a"), false},
		{"hover", Text("a").WithHover(Text("x")), Text("a").WithHover(Text("x")), true},
		{"hover contents", Text("a").WithHover(Text("x")), Text("a").WithHover(Text("y")), false},
		{"translate args", Translatable("k", Text("1")), Translatable("k", Text("2")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() is not symmetric")
			}
		})
	}
}
