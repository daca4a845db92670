package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vango-dev/navkit/internal/errors"
	"github.com/vango-dev/navkit/pkg/options"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "navkit.json"

	// DefaultAddr is the default SPA server address.
	DefaultAddr = "localhost:3000"

	// DefaultDir is the default build output directory.
	DefaultDir = "dist"

	// DefaultIndex is the default app shell document.
	DefaultIndex = "index.html"

	// DefaultMetricsPath is where the server exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"
)

// Cache policies accepted in serve.cache.
const (
	CacheNone       = "none"
	CacheProduction = "production"
)

// Config represents the complete navkit.json configuration.
type Config struct {
	// Routing holds the options applied to the location tracker.
	Routing RoutingConfig `json:"routing"`

	// Serve contains SPA server configuration.
	Serve ServeConfig `json:"serve"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RoutingConfig mirrors the routing options.
type RoutingConfig struct {
	// Mode is "window" or "hash".
	Mode string `json:"mode,omitempty"`

	// BasePath is the path prefix the application is mounted under.
	// Absent means no base path.
	BasePath *string `json:"basePath,omitempty"`
}

// ServeConfig contains SPA server settings.
type ServeConfig struct {
	// Dir is the directory containing the build output.
	Dir string `json:"dir,omitempty"`

	// Addr is the address to listen on.
	Addr string `json:"addr,omitempty"`

	// Index is the app shell served for client routes.
	Index string `json:"index,omitempty"`

	// Cache is the caching policy, "none" or "production".
	Cache string `json:"cache,omitempty"`

	// MetricsPath is where metrics are exposed. "-" disables them.
	MetricsPath string `json:"metricsPath,omitempty"`

	// Headers are added to every file response.
	Headers map[string]string `json:"headers,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Routing: RoutingConfig{
			Mode: string(options.ModeWindow),
		},
		Serve: ServeConfig{
			Dir:         DefaultDir,
			Addr:        DefaultAddr,
			Index:       DefaultIndex,
			Cache:       CacheNone,
			MetricsPath: DefaultMetricsPath,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for navkit.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("N201").
				WithDetail("No navkit.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'navkit config init' to create one")
		}
		return nil, errors.New("N202").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("N202").
			WithDetail("Failed to parse navkit.json: " + err.Error()).
			WithSuggestion("Check that navkit.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("N203").WithDetail("no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("N203").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("N203").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for fields left empty in the file.
// Routing fields are left alone: an empty mode is reported by Validate.
func (c *Config) applyDefaults() {
	if c.Serve.Dir == "" {
		c.Serve.Dir = DefaultDir
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultAddr
	}
	if c.Serve.Index == "" {
		c.Serve.Index = DefaultIndex
	}
	if c.Serve.Cache == "" {
		c.Serve.Cache = CacheNone
	}
	if c.Serve.MetricsPath == "" {
		c.Serve.MetricsPath = DefaultMetricsPath
	}
}

// Validate checks the configuration. An unknown routing mode yields N001:
// the tracker accepts it but stops publishing locations, so callers usually
// report it as a warning.
func (c *Config) Validate() error {
	if !options.Mode(c.Routing.Mode).Known() {
		return errors.New("N001").
			WithDetail("routing.mode is " + quote(c.Routing.Mode)).
			WithSuggestion(`Set routing.mode to "window" or "hash"`)
	}
	if c.Serve.Cache != CacheNone && c.Serve.Cache != CacheProduction {
		return errors.New("N205").
			WithDetail("serve.cache is " + quote(c.Serve.Cache)).
			WithSuggestion(`Set serve.cache to "none" or "production"`)
	}
	return nil
}

// Options returns the routing options described by the config.
func (c *Config) Options() options.Options {
	o := options.Options{Mode: options.Mode(c.Routing.Mode)}
	if c.Routing.BasePath != nil {
		p := *c.Routing.BasePath
		o.BasePath = &p
	}
	return o
}

// ApplyTo writes the routing options into store, notifying its subscribers.
func (c *Config) ApplyTo(store *options.Store) {
	o := c.Options()
	if o.BasePath != nil {
		store.Set(options.WithMode(o.Mode), options.WithBasePath(*o.BasePath))
		return
	}
	store.Set(options.WithMode(o.Mode), options.WithoutBasePath())
}

// ServeDir returns the absolute path to the build output directory.
func (c *Config) ServeDir() string {
	if filepath.IsAbs(c.Serve.Dir) {
		return c.Serve.Dir
	}
	return filepath.Join(c.Dir(), c.Serve.Dir)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// Find walks up from start to the directory containing navkit.json.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("N201").
				WithDetail("No navkit.json found in " + start + " or any parent directory").
				WithSuggestion("Run 'navkit config init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the configuration of the project containing the
// current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := Find(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

func quote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
