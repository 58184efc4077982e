package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to sanitized HTML. All output passes through
// a UGC sanitization policy, so raw HTML, scripts, and event handlers in
// the source are stripped regardless of renderer settings.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// Option configures a Renderer.
type Option func(*settings)

type settings struct {
	hardWraps bool
	linkify   bool
}

// WithHardWraps renders single newlines as <br> elements. Post bodies are
// written in a chat-like register where authors expect their line breaks
// to survive.
func WithHardWraps() Option {
	return func(s *settings) { s.hardWraps = true }
}

// WithLinkify turns bare URLs into links.
func WithLinkify() Option {
	return func(s *settings) { s.linkify = true }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	var extensions []goldmark.Extender
	if s.linkify {
		extensions = append(extensions, extension.Linkify)
	}
	var rendererOpts []renderer.Option
	if s.hardWraps {
		rendererOpts = append(rendererOpts, ghtml.WithHardWraps())
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extensions...),
			goldmark.WithRendererOptions(rendererOpts...),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// ToHTML renders markdown to sanitized HTML.
func (r *Renderer) ToHTML(src string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		// Convert only fails on writer errors, which bytes.Buffer never
		// produces. Fall back to sanitizing the raw source.
		return r.policy.Sanitize(src)
	}
	return r.policy.Sanitize(buf.String())
}

// --- Package-level default renderer ---

var defaultRenderer = New(WithHardWraps(), WithLinkify())

// ToHTML renders markdown with the default renderer: hard wraps and
// linkified URLs, sanitized for untrusted content.
func ToHTML(src string) string {
	return defaultRenderer.ToHTML(src)
}
