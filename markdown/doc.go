// Package markdown renders untrusted markdown to sanitized HTML.
//
// Rendering is CommonMark via goldmark; every result is then passed through
// a bluemonday UGC policy, so script tags, inline event handlers, and other
// unsafe constructs never reach the page even when embedded as raw HTML in
// the source.
package markdown
