// Package config loads jcrbox repository configuration with Viper: TOML
// files plus JCRBOX_-prefixed environment variables. The configuration
// carries implementation-specific repository parameters, the meta-update
// switch, and a prefix-to-URI namespace map applied to a workspace's
// registry at startup.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/logger"
)

// Config is the root configuration object.
type Config struct {
	Repository RepositoryConfig `mapstructure:"repository"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// RepositoryConfig configures the repository connection and workspace.
type RepositoryConfig struct {
	// Parameters are passed opaquely to the repository implementation.
	Parameters map[string]string `mapstructure:"parameters"`

	// AllowMetaUpdates permits re-registering changed node types.
	AllowMetaUpdates bool `mapstructure:"allow_meta_updates"`

	// Namespaces maps prefixes to namespace URIs to register at startup.
	Namespaces map[string]string `mapstructure:"namespaces"`
}

// LoggingConfig configures the process-global logger.
type LoggingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	JSON    bool `mapstructure:"json"`
}

// SetDefaults installs default values on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("repository.allow_meta_updates", false)
	v.SetDefault("logging.enabled", false)
	v.SetDefault("logging.json", false)
}

// Load reads configuration from JCRBOX_-prefixed environment variables and
// an optional jcrbox.toml in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JCRBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigName("jcrbox")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}
	return LoadWithViper(v)
}

// LoadFromFile reads configuration from a specific TOML file.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", configPath)
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates configuration from a prepared Viper
// instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for prefix, uri := range c.Repository.Namespaces {
		if strings.TrimSpace(prefix) == "" {
			return errors.Newf("repository.namespaces: blank prefix for uri %q", uri)
		}
		if strings.ContainsAny(prefix, ":/{}") {
			return errors.Newf("repository.namespaces: invalid prefix %q", prefix)
		}
		if strings.TrimSpace(uri) == "" {
			return errors.Newf("repository.namespaces: blank uri for prefix %q", prefix)
		}
	}
	return nil
}

// NamespaceRegistrar is the writable side of a namespace registry.
type NamespaceRegistrar interface {
	Register(prefix, uri string)
}

// Apply registers the configured namespaces and initializes logging when
// enabled.
func (c *Config) Apply(registrar NamespaceRegistrar) error {
	if c.Logging.Enabled {
		if err := logger.Initialize(c.Logging.JSON); err != nil {
			return errors.Wrap(err, "initializing logger")
		}
	}
	for prefix, uri := range c.Repository.Namespaces {
		registrar.Register(prefix, uri)
		logger.Logger.Debugw("registered namespace",
			logger.FieldPrefix, prefix, logger.FieldNamespace, uri)
	}
	return nil
}
