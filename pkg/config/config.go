package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DOCSIGN_ETHEREUM_RPC_URL.
const EnvPrefix = "DOCSIGN"

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings.
//
// WriteTimeout and RequestTimeout bound how long an action may wait on the
// wallet node. Both are zero by default, meaning no limit.
type ServerConfig struct {
	Host            string        `mapstructure:"host" default:"0.0.0.0"`
	Port            int           `mapstructure:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
}

// EthereumConfig describes the wallet provider and the document registry contract.
//
// An empty RPCURL is accepted at load time: it means no provider is installed,
// which every action reports to the operator instead of failing startup.
type EthereumConfig struct {
	RPCURL           string `mapstructure:"rpc_url" validate:"omitempty,url"`
	ChainID          int64  `mapstructure:"chain_id" default:"97" validate:"gt=0"`
	NetworkName      string `mapstructure:"network_name" default:"bsc-testnet" validate:"required"`
	ContractAddress  string `mapstructure:"contract_address" default:"0x5527675ef8c4b9d5dc9e71638fdc8d725d44d5b4" validate:"required,eth_addr"`
	PrivateKey       string `mapstructure:"private_key" validate:"omitempty,hexadecimal"`
	KeystoreFile     string `mapstructure:"keystore_file"`
	KeystorePassword string `mapstructure:"keystore_password"`
	GasLimit         uint64 `mapstructure:"gas_limit"`
	MaxGasPrice      string `mapstructure:"max_gas_price" validate:"omitempty,numeric"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// Load loads configuration from file and environment variables.
// An empty configPath skips the file and relies on defaults and environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{
		"ethereum.rpc_url",
		"ethereum.private_key",
		"ethereum.keystore_file",
		"ethereum.keystore_password",
		"ethereum.contract_address",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// bool defaults go through viper; a false from the file is indistinguishable from unset after unmarshal
	v.SetDefault("monitoring.enabled", true)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if config.Ethereum.PrivateKey != "" && config.Ethereum.KeystoreFile != "" {
		return fmt.Errorf("ethereum.private_key and ethereum.keystore_file are mutually exclusive")
	}
	return nil
}

// Address returns the listen address of the HTTP server
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
