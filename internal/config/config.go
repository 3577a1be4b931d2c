package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cryptowatch/internal/coin"
)

// Config holds all configuration for cryptowatch.
type Config struct {
	// Reporting currency, e.g. USD
	FiatCurrency string `mapstructure:"fiat_currency"`

	// Addresses to aggregate, per chain
	BitcoinAddresses  []string `mapstructure:"bitcoin_addresses"`
	EthereumAddresses []string `mapstructure:"ethereum_addresses"`
	LitecoinAddresses []string `mapstructure:"litecoin_addresses"`

	EtherscanAPIKey string `mapstructure:"etherscan_api_key"`

	// Base URLs for API endpoints (configurable for testing)
	BlockchainBaseURL    string `mapstructure:"blockchain_base_url"`
	EtherscanBaseURL     string `mapstructure:"etherscan_base_url"`
	ChainsoBaseURL       string `mapstructure:"chainso_base_url"`
	CoinmarketcapBaseURL string `mapstructure:"coinmarketcap_base_url"`

	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
	LogLevel       string        `mapstructure:"log_level"`

	// CLI behaviour
	Watch time.Duration `mapstructure:"watch"`
	Clear bool          `mapstructure:"clear"`
}

// Addresses returns the address book keyed by coin.
func (c *Config) Addresses() map[coin.Type][]string {
	return map[coin.Type][]string{
		coin.Bitcoin:  c.BitcoinAddresses,
		coin.Ethereum: c.EthereumAddresses,
		coin.Litecoin: c.LitecoinAddresses,
	}
}

// env maps configuration keys to their environment variables.
var env = map[string]string{
	"fiat_currency":          "FIAT_CURRENCY",
	"bitcoin_addresses":      "BITCOIN_ADDRESSES",
	"ethereum_addresses":     "ETHEREUM_ADDRESSES",
	"litecoin_addresses":     "LITECOIN_ADDRESSES",
	"etherscan_api_key":      "ETHERSCAN_API_KEY",
	"blockchain_base_url":    "BLOCKCHAIN_BASE_URL",
	"etherscan_base_url":     "ETHERSCAN_BASE_URL",
	"chainso_base_url":       "CHAINSO_BASE_URL",
	"coinmarketcap_base_url": "COINMARKETCAP_BASE_URL",
	"request_timeout":        "REQUEST_TIMEOUT",
	"max_concurrency":        "MAX_CONCURRENCY",
	"log_level":              "LOG_LEVEL",
}

// Load reads configuration from flags, environment variables and an
// optional YAML config file, in that order of precedence.
//
// If path is empty, config.yaml is looked up in the working directory and
// in $HOME/.cryptowatch; a missing file is not an error. An explicit path
// must exist. flags may be nil.
//
// List values given through the environment are comma separated:
//
//	BITCOIN_ADDRESSES=1abc,1def
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("fiat_currency", "USD")
	v.SetDefault("blockchain_base_url", "https://blockchain.info")
	v.SetDefault("etherscan_base_url", "https://api.etherscan.io/v2/api")
	v.SetDefault("chainso_base_url", "https://chain.so/api/v2")
	v.SetDefault("coinmarketcap_base_url", "https://api.coinmarketcap.com/v1/ticker")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("max_concurrency", 4)
	v.SetDefault("log_level", "info")
	v.SetDefault("watch", time.Duration(0))
	v.SetDefault("clear", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cryptowatch")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	if flags != nil {
		for _, key := range []string{"fiat_currency", "log_level", "watch", "clear"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.FiatCurrency = strings.ToUpper(strings.TrimSpace(config.FiatCurrency))
	config.BitcoinAddresses = compact(config.BitcoinAddresses)
	config.EthereumAddresses = compact(config.EthereumAddresses)
	config.LitecoinAddresses = compact(config.LitecoinAddresses)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every missing or invalid setting at once.
func (c *Config) Validate() error {
	var missing []string
	if c.FiatCurrency == "" {
		missing = append(missing, "FIAT_CURRENCY")
	}
	if len(c.EthereumAddresses) > 0 && c.EtherscanAPIKey == "" {
		missing = append(missing, "ETHERSCAN_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", c.MaxConcurrency)
	}
	if c.Watch < 0 {
		return fmt.Errorf("watch interval must not be negative, got %s", c.Watch)
	}

	return nil
}

// compact trims entries and drops empty ones
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
