package portfolio

import "strings"

// DarkClass is the marker set on the root element while the dark theme is on.
const DarkClass = "dark"

// Marker is the root presentation context a Theme writes to.
type Marker interface {
	Add(class string)
	Remove(class string)
}

// Theme is the dark/light flag. Every change is applied to root immediately.
type Theme struct {
	dark bool
	root Marker
}

// NewTheme returns a theme in the given state, already applied to root.
func NewTheme(root Marker, dark bool) *Theme {
	t := &Theme{dark: dark, root: root}
	t.apply()
	return t
}

// Dark reports whether the dark theme is on.
func (t *Theme) Dark() bool { return t.dark }

// Toggle flips between dark and light.
func (t *Theme) Toggle() {
	t.Set(!t.dark)
}

// Set switches to the given state and applies it to root.
func (t *Theme) Set(dark bool) {
	t.dark = dark
	t.apply()
}

func (t *Theme) apply() {
	if t.root == nil {
		return
	}
	if t.dark {
		t.root.Add(DarkClass)
	} else {
		t.root.Remove(DarkClass)
	}
}

// ClassList is an ordered set of class names, rendered as the class
// attribute of <html>.
type ClassList struct {
	names []string
}

// NewClassList returns a list holding names in order, without duplicates.
func NewClassList(names ...string) *ClassList {
	c := &ClassList{}
	for _, n := range names {
		c.Add(n)
	}
	return c
}

func (c *ClassList) Add(class string) {
	if class == "" || c.Has(class) {
		return
	}
	c.names = append(c.names, class)
}

func (c *ClassList) Remove(class string) {
	for i, n := range c.names {
		if n == class {
			c.names = append(c.names[:i], c.names[i+1:]...)
			return
		}
	}
}

// Has reports whether class is present.
func (c *ClassList) Has(class string) bool {
	for _, n := range c.names {
		if n == class {
			return true
		}
	}
	return false
}

func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}
