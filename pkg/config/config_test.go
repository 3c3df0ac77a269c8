package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(97), cfg.Ethereum.ChainID)
	assert.Equal(t, "bsc-testnet", cfg.Ethereum.NetworkName)
	assert.Equal(t, "0x5527675ef8c4b9d5dc9e71638fdc8d725d44d5b4", cfg.Ethereum.ContractAddress)
	assert.Empty(t, cfg.Ethereum.RPCURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Zero(t, cfg.Server.WriteTimeout)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Monitoring.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  shutdown_timeout: 5s
ethereum:
  rpc_url: http://127.0.0.1:8545
  chain_id: 1337
  network_name: localnet
  gas_limit: 250000
monitoring:
  enabled: false
logging:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, int64(1337), cfg.Ethereum.ChainID)
	assert.Equal(t, "localnet", cfg.Ethereum.NetworkName)
	assert.Equal(t, uint64(250000), cfg.Ethereum.GasLimit)
	assert.False(t, cfg.Monitoring.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ActionTimeouts(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantWrite   time.Duration
		wantRequest time.Duration
	}{
		{
			name: "explicit zero disables",
			body: `
server:
  write_timeout: 0s
  request_timeout: 0s
`,
		},
		{
			name: "explicit limits kept",
			body: `
server:
  write_timeout: 45s
  request_timeout: 2m
`,
			wantWrite:   45 * time.Second,
			wantRequest: 2 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantWrite, cfg.Server.WriteTimeout)
			assert.Equal(t, tt.wantRequest, cfg.Server.RequestTimeout)
			assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		})
	}
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DOCSIGN_ETHEREUM_RPC_URL", "http://node.internal:8545")
	t.Setenv("DOCSIGN_ETHEREUM_PRIVATE_KEY", "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://node.internal:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318", cfg.Ethereum.PrivateKey)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bad contract address",
			body: "ethereum:\n  contract_address: not-an-address\n",
		},
		{
			name: "bad log level",
			body: "logging:\n  level: loud\n",
		},
		{
			name: "key and keystore together",
			body: "ethereum:\n  private_key: \"abcd\"\n  keystore_file: /tmp/key.json\n",
		},
		{
			name: "bad max gas price",
			body: "ethereum:\n  max_gas_price: lots\n",
		},
		{
			name: "negative request timeout",
			body: "server:\n  request_timeout: -1s\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console", OutputPath: "stderr"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "verbose", Format: "json"})
	if err == nil {
		t.Fatal("expected invalid level error")
	}
}
