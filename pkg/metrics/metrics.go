package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "navkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "navkit",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collectors holds the navkit metrics.
type Collectors struct {
	listenersActive      *prometheus.GaugeVec
	listenerAcquisitions *prometheus.CounterVec
	locationUpdates      *prometheus.CounterVec
	clicks               *prometheus.CounterVec
	clickErrors          prometheus.Counter
	spaRequests          *prometheus.CounterVec
}

// New creates and registers the collectors. Registering twice against the
// same registry panics, as with promauto.
func New(opts ...Option) *Collectors {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Collectors{
		listenersActive: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "location_listeners_active",
			Help:        "Number of global event listeners currently held by location sources",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),

		listenerAcquisitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "location_listener_acquisitions_total",
			Help:        "Total number of times a location source registered its event listener",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),

		locationUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "location_updates_total",
			Help:        "Total number of locations republished by a source",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),

		clicks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "link_clicks_total",
			Help:        "Total number of clicks seen by link interceptors by decision",
			ConstLabels: config.ConstLabels,
		}, []string{"decision"}),

		clickErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "link_click_errors_total",
			Help:        "Total number of clicks whose href could not be resolved",
			ConstLabels: config.ConstLabels,
		}),

		spaRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "spa_requests_total",
			Help:        "Total number of SPA server responses by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}
}

var (
	defaultCollectors     *Collectors
	defaultCollectorsOnce sync.Once
)

// Default returns collectors registered on prometheus.DefaultRegisterer,
// created on first use.
func Default() *Collectors {
	defaultCollectorsOnce.Do(func() {
		defaultCollectors = New()
	})
	return defaultCollectors
}

// Handler serves the default Prometheus gatherer.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ListenerAcquired records a source registering its event listener.
func (c *Collectors) ListenerAcquired(source string) {
	if c == nil {
		return
	}
	c.listenersActive.WithLabelValues(source).Inc()
	c.listenerAcquisitions.WithLabelValues(source).Inc()
}

// ListenerReleased records a source removing its event listener.
func (c *Collectors) ListenerReleased(source string) {
	if c == nil {
		return
	}
	c.listenersActive.WithLabelValues(source).Dec()
}

// LocationUpdated records a source republishing a location.
func (c *Collectors) LocationUpdated(source string) {
	if c == nil {
		return
	}
	c.locationUpdates.WithLabelValues(source).Inc()
}

// Click records an interceptor decision.
func (c *Collectors) Click(decision string) {
	if c == nil {
		return
	}
	c.clicks.WithLabelValues(decision).Inc()
}

// ClickError records a click whose href could not be resolved.
func (c *Collectors) ClickError() {
	if c == nil {
		return
	}
	c.clickErrors.Inc()
}

// SPARequest records an SPA server response kind ("file", "fallback",
// "not_found").
func (c *Collectors) SPARequest(kind string) {
	if c == nil {
		return
	}
	c.spaRequests.WithLabelValues(kind).Inc()
}
