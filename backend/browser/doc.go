// Package browser hosts a graphics window in a web browser.
//
// The canvas runs an HTTP server that serves a page shell and a
// websocket endpoint. Drawing mutations are applied to an authoritative
// SVG element tree on the Go side and pushed to the page as small JSON
// patches; mouse clicks, key presses, and input changes travel back over
// the same socket. When a page connects (or reconnects) it receives a
// full replay of the current tree, so the display always converges on
// the Go-side state.
//
// The canvas is registered under the name "browser" on import.
package browser
