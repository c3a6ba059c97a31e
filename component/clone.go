package component

// Clone returns a deep copy of c. Modifications to the copy's slices,
// decorations or events never affect c.
//
// Builders clone before modifying, so callers only need Clone when they
// intend to mutate fields directly.
func (c Component) Clone() Component {
	out := c
	out.With = cloneAll(c.With)
	out.Extra = cloneAll(c.Extra)
	out.Bold = cloneBool(c.Bold)
	out.Italic = cloneBool(c.Italic)
	out.Underlined = cloneBool(c.Underlined)
	out.Strikethrough = cloneBool(c.Strikethrough)
	out.Obfuscated = cloneBool(c.Obfuscated)
	if c.Click != nil {
		click := *c.Click
		out.Click = &click
	}
	if c.Hover != nil {
		hover := HoverEvent{Action: c.Hover.Action}
		if c.Hover.Contents != nil {
			contents := c.Hover.Contents.Clone()
			hover.Contents = &contents
		}
		out.Hover = &hover
	}
	return out
}

func cloneAll(cs []Component) []Component {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Component, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
