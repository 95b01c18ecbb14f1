package client

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "CROCODOC"

// Config carries the credentials and transport defaults shared by clients.
// Build it once at startup and pass it to NewClient; it is read-only after that.
type Config struct {
	Token string `envconfig:"TOKEN" yaml:"token"`

	// ParamName names the request field carrying Token.
	ParamName string `envconfig:"PARAM_NAME" default:"token" yaml:"param_name,omitempty"`
	// ParamNameFunc, when set, is consulted on every request instead of ParamName.
	ParamNameFunc func() string `ignored:"true" yaml:"-"`

	BaseURL string        `envconfig:"BASE_URL" default:"https://crocodoc.com/api/v2" yaml:"base_url,omitempty"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"60s" yaml:"timeout,omitempty"`
	Debug   bool          `envconfig:"DEBUG" default:"false" yaml:"debug,omitempty"`
}

// TokenParamName resolves the name the token is sent under.
func (c Config) TokenParamName() string {
	if c.ParamNameFunc != nil {
		if name := c.ParamNameFunc(); name != "" {
			return name
		}
	}
	if c.ParamName != "" {
		return c.ParamName
	}
	return DefaultParamName
}

// Validate checks the fields every request depends on.
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrEmptyToken
	}
	return nil
}

// LoadConfig reads CROCODOC_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from env: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a crocodoc.yml file. Missing optional fields keep
// their defaults.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := Config{
		ParamName: DefaultParamName,
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// MarshalYAMLFile renders cfg in the crocodoc.yml layout.
func (c Config) MarshalYAMLFile() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}
