// Package svgdom models a small SVG element tree.
//
// Elements carry a tag name, a stable id, attribute and style maps, optional
// character data, and children. The tree is deliberately minimal: it exists
// so that drawing code can build shapes as data and hand them to a canvas,
// which decides how the markup reaches a display. Rendering is deterministic
// (attributes and style properties are emitted in sorted order) so that
// output can be compared in tests.
//
// Elements are not safe for concurrent mutation. Build an element, hand it
// to a canvas, and perform further changes through the canvas update path.
package svgdom
