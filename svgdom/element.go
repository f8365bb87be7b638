package svgdom

import (
	"github.com/google/uuid"
)

// Element is a single node in an SVG document tree.
type Element struct {
	// Tag is the SVG tag name, e.g. "line" or "rect".
	Tag string

	id       string
	attrs    map[string]string
	style    map[string]string
	text     string
	children []*Element
}

// New creates an element with the given tag and a fresh unique id.
func New(tag string) *Element {
	return &Element{
		Tag:   tag,
		id:    uuid.NewString(),
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// ID returns the element's unique identifier. The id is assigned at
// construction and never changes, so it can be used as a handle for
// later updates or removal.
func (e *Element) ID() string { return e.id }

// SetAttr sets an attribute. Setting an empty value removes the attribute.
func (e *Element) SetAttr(name, value string) *Element {
	if value == "" {
		delete(e.attrs, name)
		return e
	}
	e.attrs[name] = value
	return e
}

// Attr returns the value of an attribute, or "" if unset.
func (e *Element) Attr(name string) string { return e.attrs[name] }

// Attrs returns a copy of the attribute map.
func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// SetStyle sets a CSS style property. Setting an empty value removes it.
func (e *Element) SetStyle(name, value string) *Element {
	if value == "" {
		delete(e.style, name)
		return e
	}
	e.style[name] = value
	return e
}

// Style returns the value of a style property, or "" if unset.
func (e *Element) Style(name string) string { return e.style[name] }

// Styles returns a copy of the style map.
func (e *Element) Styles() map[string]string {
	out := make(map[string]string, len(e.style))
	for k, v := range e.style {
		out[k] = v
	}
	return out
}

// SetText sets the element's character data, e.g. the content of a
// text element.
func (e *Element) SetText(s string) *Element {
	e.text = s
	return e
}

// Text returns the element's character data.
func (e *Element) Text() string { return e.text }

// Append adds a child element.
func (e *Element) Append(child *Element) *Element {
	e.children = append(e.children, child)
	return e
}

// Children returns the child slice. Callers must not modify it.
func (e *Element) Children() []*Element { return e.children }

// Find returns the element with the given id in the tree rooted at e,
// or nil if no such element exists.
func (e *Element) Find(id string) *Element {
	if e.id == id {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// RemoveChild removes the direct or indirect child with the given id.
// It reports whether an element was removed.
func (e *Element) RemoveChild(id string) bool {
	for i, c := range e.children {
		if c.id == id {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return true
		}
		if c.RemoveChild(id) {
			return true
		}
	}
	return false
}
