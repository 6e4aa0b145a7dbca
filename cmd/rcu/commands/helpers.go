package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heritage-io/rcu-client/internal/constants"
	"github.com/heritage-io/rcu-client/pkg/rcu"
	"github.com/heritage-io/rcu-client/pkg/rcuclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired    = errors.New("API key is required (--api-key or RCU_API_KEY)")
	ErrClientIDRequired  = errors.New("client ID is required (--client-id or RCU_CLIENT_ID)")
	ErrSecretKeyRequired = errors.New("secret key is required (--secret-key or RCU_SECRET_KEY)")
)

// DefaultAPIEndpoint is used when no endpoint is configured.
const DefaultAPIEndpoint = "https://api.rcu.gov.sa"

// CreateClient builds an rcu.Client from the effective configuration
// (flags, environment, config file).
func CreateClient() (rcu.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}

	config := &rcu.Config{
		APIEndpoint: endpoint,
		APIKey:      viper.GetString("api_key"),
		SecretKey:   viper.GetString("secret_key"),
		ClientID:    viper.GetString("client_id"),
		AccessToken: viper.GetString("token"),
		Debug:       viper.GetBool("verbose"),
		Cache:       cacheConfigFromViper(),
	}

	if config.Debug {
		config.Logger = &stderrLogger{}
	}

	client, err := rcuclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// CreateAuthenticatedClient builds a client and establishes a session when
// the configuration carries credentials instead of a pre-obtained token.
func CreateAuthenticatedClient(ctx context.Context) (rcu.Client, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	if err := client.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	return client, nil
}

// cacheConfigFromViper maps the --cache/--nats-url flags to a cache config.
func cacheConfigFromViper() *rcu.CacheConfig {
	switch rcu.CacheType(viper.GetString("cache")) {
	case rcu.CacheTypeMemory:
		return &rcu.CacheConfig{
			Type:    rcu.CacheTypeMemory,
			MaxSize: rcu.DefaultCacheSize,
			TTL:     rcu.DefaultCacheTTL,
		}
	case rcu.CacheTypeNATS:
		return &rcu.CacheConfig{
			Type: rcu.CacheTypeNATS,
			TTL:  rcu.DefaultCacheTTL,
			NATS: &rcu.NATSKVConfig{
				URL:    viper.GetString("nats_url"),
				Bucket: "rcu-cache",
			},
		}
	default:
		return nil
	}
}

// renderOutput writes data as json or yaml per --output, or calls the
// table renderer for the default format.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("encoding JSON output: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("encoding YAML output: %w", err)
		}

		return nil
	default:
		return renderTable()
	}
}

// persistedKeys are the settings saveConfig writes to the config file.
// Transient flags (output, cache, verbose...) stay per-invocation.
var persistedKeys = []string{"api", "api_key", "client_id", "secret_key", "token"}

// saveConfig persists the credential and endpoint settings to the config
// file.
func saveConfig() error {
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		cfgFile = filepath.Join(home, ".rcu", "config.yml")
	}

	stored := viper.New()
	for _, key := range persistedKeys {
		stored.Set(key, viper.GetString(key))
	}

	if err := stored.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return os.Chmod(cfgFile, constants.ConfigFilePerm)
}

// stderrLogger is a minimal rcu.Logger for --verbose runs.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)

		return
	}

	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}
