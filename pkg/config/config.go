package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsrec.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Recommend RecommendConfig `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation settings"`

	Catalog CatalogConfig `yaml:"catalog" json:"catalog" jsonschema:"description=Article catalog import settings"`

	Auth struct {
		BcryptCost int `yaml:"bcrypt_cost" json:"bcrypt_cost" jsonschema:"default=10,minimum=4,maximum=31,description=Bcrypt cost for password hashes"`
	} `yaml:"auth" json:"auth" jsonschema:"description=Authentication settings"`
}

// RecommendConfig holds recommendation settings
type RecommendConfig struct {
	Limit  int `yaml:"limit" json:"limit" jsonschema:"default=5,minimum=1,maximum=5,description=Maximum recommendations per request"`
	Window int `yaml:"window" json:"window" jsonschema:"default=0,minimum=0,description=Most recent interactions to consider (0 means all)"`
}

// FeedConfig is a single catalog feed
type FeedConfig struct {
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=RSS or Atom feed URL"`
	Category string `yaml:"category" json:"category" jsonschema:"description=Category assigned to imported articles (feed title if empty)"`
}

// CatalogConfig holds catalog import settings
type CatalogConfig struct {
	Feeds      []FeedConfig  `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds to import"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Import interval"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,minimum=1,description=Maximum concurrent feed imports"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsrec/1.0,description=User agent for feed requests"`
	AdKeywords []string      `yaml:"ad_keywords" json:"ad_keywords" jsonschema:"description=Keywords marking promotional articles (built-in list if empty)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// SetDefaults fills unset fields with default values
func (c *Config) SetDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsrec.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// recommend
	if c.Recommend.Limit == 0 {
		c.Recommend.Limit = 5
	}

	// catalog
	if c.Catalog.Interval == 0 {
		c.Catalog.Interval = 30 * time.Minute
	}
	if c.Catalog.MaxWorkers == 0 {
		c.Catalog.MaxWorkers = 5
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = 30 * time.Second
	}
	if c.Catalog.UserAgent == "" {
		c.Catalog.UserAgent = "Newsrec/1.0"
	}

	// auth
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Recommend.Limit < 1 || cfg.Recommend.Limit > 5 {
		return fmt.Errorf("recommend.limit must be between 1 and 5")
	}
	if cfg.Recommend.Window < 0 {
		return fmt.Errorf("recommend.window must be non-negative")
	}

	if cfg.Catalog.MaxWorkers < 1 {
		return fmt.Errorf("catalog.max_workers must be at least 1")
	}
	if cfg.Catalog.Interval < time.Minute {
		return fmt.Errorf("catalog.interval must be at least 1 minute")
	}
	for i, f := range cfg.Catalog.Feeds {
		if f.URL == "" {
			return fmt.Errorf("catalog.feeds[%d].url is required", i)
		}
	}

	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRecommendConfig returns recommendation configuration
func (c *Config) GetRecommendConfig() RecommendConfig {
	return c.Recommend
}
