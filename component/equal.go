package component

// Equal reports whether c and o describe the same component.
// Nil and empty child lists are equal.
func (c Component) Equal(o Component) bool {
	if c.Text != o.Text || c.Translate != o.Translate || c.Keybind != o.Keybind ||
		c.Color != o.Color || c.Font != o.Font || c.Insertion != o.Insertion {
		return false
	}
	if !boolEqual(c.Bold, o.Bold) || !boolEqual(c.Italic, o.Italic) ||
		!boolEqual(c.Underlined, o.Underlined) || !boolEqual(c.Strikethrough, o.Strikethrough) ||
		!boolEqual(c.Obfuscated, o.Obfuscated) {
		return false
	}
	if !clickEqual(c.Click, o.Click) || !hoverEqual(c.Hover, o.Hover) {
		return false
	}
	return allEqual(c.With, o.With) && allEqual(c.Extra, o.Extra)
}

func allEqual(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func boolEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clickEqual(a, b *ClickEvent) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func hoverEqual(a, b *HoverEvent) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Action != b.Action {
		return false
	}
	if a.Contents == nil || b.Contents == nil {
		return a.Contents == b.Contents
	}
	return a.Contents.Equal(*b.Contents)
}
