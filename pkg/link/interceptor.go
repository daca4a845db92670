package link

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/navkit/internal/errors"
	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/metrics"
)

// DefaultIgnoreAttribute marks anchors the interceptor leaves alone.
const DefaultIgnoreAttribute = "data-handle-ignore"

const defaultTracerName = "navkit"

// Router performs client-side navigation.
type Router interface {
	// Push adds a history entry for href.
	Push(href string)

	// Replace replaces the current history entry with href.
	Replace(href string)
}

// Decision is the outcome of handling one click.
type Decision uint8

const (
	PassNoAnchor Decision = iota
	PassIgnored
	PassTargetFrame
	PassModifier
	PassExternalOrigin
	Pushed
	Replaced
)

// String returns the metric/log label of the decision.
func (d Decision) String() string {
	switch d {
	case PassNoAnchor:
		return "pass_no_anchor"
	case PassIgnored:
		return "pass_ignored"
	case PassTargetFrame:
		return "pass_target_frame"
	case PassModifier:
		return "pass_modifier"
	case PassExternalOrigin:
		return "pass_external_origin"
	case Pushed:
		return "pushed"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Intercepted reports whether the click was routed client-side.
func (d Decision) Intercepted() bool {
	return d == Pushed || d == Replaced
}

// Interceptor decides, click by click, whether to route a link client-side.
type Interceptor struct {
	win        dom.Window
	router     Router
	ignoreAttr string

	logger  *slog.Logger
	metrics *metrics.Collectors
	tracer  trace.Tracer
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithLogger sets the interceptor's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interceptor) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithMetrics records decisions on m.
func WithMetrics(m *metrics.Collectors) Option {
	return func(i *Interceptor) {
		i.metrics = m
	}
}

// WithTracer sets the tracer used for click spans.
// Default: otel.Tracer("navkit") from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(i *Interceptor) {
		if tracer != nil {
			i.tracer = tracer
		}
	}
}

// WithIgnoreAttribute changes the attribute that opts an anchor out.
func WithIgnoreAttribute(name string) Option {
	return func(i *Interceptor) {
		if name != "" {
			i.ignoreAttr = name
		}
	}
}

// New creates an interceptor that reads the document location from win and
// navigates through r.
func New(win dom.Window, r Router, opts ...Option) *Interceptor {
	i := &Interceptor{
		win:        win,
		router:     r,
		ignoreAttr: DefaultIgnoreAttribute,
		logger:     slog.Default().With("component", "link"),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.tracer == nil {
		i.tracer = otel.Tracer(defaultTracerName)
	}
	return i
}

// HandleClick runs the interception procedure for one click event. When the
// click is routed, the event's default action is prevented. An href that
// cannot be resolved returns an N101 error and leaves the event untouched.
func (i *Interceptor) HandleClick(ev *dom.Event) (Decision, error) {
	_, span := i.tracer.Start(context.Background(), "navkit.link.click",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	decision, href, err := i.decide(ev)

	span.SetAttributes(
		attribute.String("navkit.link.decision", decision.String()),
		attribute.String("navkit.link.href", href),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		i.metrics.ClickError()
		return decision, err
	}
	span.SetStatus(codes.Ok, "")
	i.metrics.Click(decision.String())
	i.logger.Debug("link click", "decision", decision.String(), "href", href)

	return decision, nil
}

// decide returns the decision and, for anchors, the href it concerned.
func (i *Interceptor) decide(ev *dom.Event) (Decision, string, error) {
	if ev == nil || ev.Target == nil {
		return PassNoAnchor, "", nil
	}

	anchor := dom.Closest(ev.Target, dom.IsAnchorWithHref)
	if anchor == nil {
		return PassNoAnchor, "", nil
	}
	href, _ := anchor.Attribute("href")

	if v, ok := anchor.Attribute(i.ignoreAttr); ok && (v == "" || v == "true") {
		return PassIgnored, href, nil
	}

	if target, ok := anchor.Attribute("target"); ok && target != "_self" {
		return PassTargetFrame, href, nil
	}

	if ev.Modifiers.Any() {
		return PassModifier, href, nil
	}

	doc := i.win.Location()
	resolved, absolute, err := resolve(doc.Href, href)
	if err != nil {
		return PassNoAnchor, href, err
	}
	if dom.Origin(resolved) != doc.Origin {
		return PassExternalOrigin, absolute, nil
	}

	decision := Pushed
	if absolute == doc.Href {
		decision = Replaced
		i.router.Replace(absolute)
	} else {
		i.router.Push(absolute)
	}
	ev.PreventDefault()

	return decision, absolute, nil
}

// resolve makes href absolute against the document URL and returns it
// with its serialized form. The fragment always comes from href, so an
// empty href drops the document's fragment, and a bare "?" or "#" in href
// is kept in the serialized form.
func resolve(base, href string) (*url.URL, string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return nil, "", errors.New("N101").WithDetail("document URL " + base + " is not valid").Wrap(err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil, "", errors.New("N101").WithDetail("href " + href + " could not be resolved").Wrap(err)
	}

	u := b.ResolveReference(ref)
	u.Fragment, u.RawFragment = ref.Fragment, ref.RawFragment
	n := dom.Normalize(u)
	n.ForceQuery = ref.ForceQuery && n.RawQuery == ""

	absolute := dom.Href(n)
	if n.Fragment == "" && strings.Contains(href, "#") {
		absolute += "#"
	}
	return n, absolute, nil
}
