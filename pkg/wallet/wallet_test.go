package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/docsign-bridge/pkg/config"
)

// fakeEth serves the eth_ namespace subset the connector needs
type fakeEth struct {
	chainID  int64
	gasPrice int64
}

func (f *fakeEth) ChainId() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(f.chainID))
}

func (f *fakeEth) GasPrice() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(f.gasPrice))
}

func newFakeNode(t *testing.T, svc *fakeEth) string {
	t.Helper()

	srv := rpc.NewServer()
	if err := srv.RegisterName("eth", svc); err != nil {
		t.Fatalf("register eth service: %v", err)
	}

	httpSrv := httptest.NewServer(srv)
	t.Cleanup(func() {
		httpSrv.Close()
		srv.Stop()
	})
	return httpSrv.URL
}

func testEthereumConfig(rpcURL string) *config.EthereumConfig {
	return &config.EthereumConfig{
		RPCURL:          rpcURL,
		ChainID:         97,
		NetworkName:     "bsc-testnet",
		ContractAddress: "0x5527675ef8c4b9d5dc9e71638fdc8d725d44d5b4",
	}
}

func newHexKey(t *testing.T) (string, *Signer) {
	t.Helper()

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	return hex.EncodeToString(crypto.FromECDSA(key)), NewSigner(key)
}

func TestRPCConnector_NoProvider(t *testing.T) {
	connector := NewRPCConnector(testEthereumConfig(""), zap.NewNop())

	conn, err := connector.Connect(context.Background())
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
	if conn != nil {
		t.Fatal("expected nil connection")
	}
	if errors.Is(err, ErrConnectionDenied) {
		t.Fatal("no-provider must not be reported as a denied connection")
	}
}

func TestRPCConnector_ReadOnlyConnection(t *testing.T) {
	url := newFakeNode(t, &fakeEth{chainID: 97})
	connector := NewRPCConnector(testEthereumConfig(url), zap.NewNop())

	conn, err := connector.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	defer conn.Close()

	if conn.Network() != (Network{ChainID: 97, Name: "bsc-testnet"}) {
		t.Fatalf("unexpected network %+v", conn.Network())
	}
	if conn.CanSign() {
		t.Fatal("expected read-only connection")
	}
	if conn.Backend() == nil {
		t.Fatal("expected a contract backend")
	}
	if _, err := conn.TransactOpts(context.Background()); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}

func TestRPCConnector_SigningConnection(t *testing.T) {
	url := newFakeNode(t, &fakeEth{chainID: 97, gasPrice: 5_000_000_000})
	hexKey, signer := newHexKey(t)

	cfg := testEthereumConfig(url)
	cfg.PrivateKey = "0x" + hexKey
	cfg.GasLimit = 200000
	cfg.MaxGasPrice = "3000000000"

	conn, err := NewRPCConnector(cfg, zap.NewNop()).Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	defer conn.Close()

	if conn.Account() != signer.Address() {
		t.Fatalf("expected account %s, got %s", signer.Address().Hex(), conn.Account().Hex())
	}

	opts, err := conn.TransactOpts(context.Background())
	if err != nil {
		t.Fatalf("TransactOpts() failed: %v", err)
	}
	if opts.From != signer.Address() {
		t.Fatalf("expected from %s, got %s", signer.Address().Hex(), opts.From.Hex())
	}
	if opts.GasLimit != 200000 {
		t.Fatalf("expected gas limit 200000, got %d", opts.GasLimit)
	}
	if opts.GasPrice == nil || opts.GasPrice.Int64() != 3_000_000_000 {
		t.Fatalf("expected gas price capped at 3 gwei, got %v", opts.GasPrice)
	}

	callOpts := conn.CallOpts(context.Background())
	if callOpts.From != signer.Address() {
		t.Fatalf("expected call from %s, got %s", signer.Address().Hex(), callOpts.From.Hex())
	}
}

func TestRPCConnector_Denied(t *testing.T) {
	url := newFakeNode(t, &fakeEth{chainID: 56})

	tests := []struct {
		name   string
		config func() *config.EthereumConfig
	}{
		{
			name:   "wrong chain",
			config: func() *config.EthereumConfig { return testEthereumConfig(url) },
		},
		{
			name: "unreachable node",
			config: func() *config.EthereumConfig {
				return testEthereumConfig("http://127.0.0.1:1")
			},
		},
		{
			name: "bad private key",
			config: func() *config.EthereumConfig {
				cfg := testEthereumConfig(newFakeNode(t, &fakeEth{chainID: 97}))
				cfg.PrivateKey = "abcd"
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := NewRPCConnector(tt.config(), zap.NewNop()).Connect(context.Background())
			if !errors.Is(err, ErrConnectionDenied) {
				t.Fatalf("expected ErrConnectionDenied, got %v", err)
			}
			if conn != nil {
				t.Fatal("expected nil connection")
			}

			var connectErr *ConnectError
			if !errors.As(err, &connectErr) {
				t.Fatalf("expected *ConnectError, got %T", err)
			}
			if connectErr.Error() == "" {
				t.Fatal("expected provider message")
			}
		})
	}
}

func TestSignerFromKeystore(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}

	key := &keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: privateKey,
	}
	keyJSON, err := keystore.EncryptKey(key, "correct horse", keystore.LightScryptN, keystore.LightScryptP)
	if err != nil {
		t.Fatalf("EncryptKey() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "operator.json")
	if err := os.WriteFile(path, keyJSON, 0o600); err != nil {
		t.Fatalf("write keystore: %v", err)
	}

	signer, err := LoadSigner(&config.EthereumConfig{KeystoreFile: path, KeystorePassword: "correct horse"})
	if err != nil {
		t.Fatalf("LoadSigner() failed: %v", err)
	}
	if signer.Address() != key.Address {
		t.Fatalf("expected address %s, got %s", key.Address.Hex(), signer.Address().Hex())
	}

	if _, err := SignerFromKeystore(path, "wrong"); err == nil {
		t.Fatal("expected error for wrong passphrase")
	}
}

func TestLoadSigner_NoAccount(t *testing.T) {
	signer, err := LoadSigner(&config.EthereumConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signer != nil {
		t.Fatal("expected nil signer")
	}
}

func TestConnection_CloseIdempotent(t *testing.T) {
	calls := 0
	conn := NewConnection(Network{ChainID: 97, Name: "bsc-testnet"}, nil, nil, WithCloser(func() { calls++ }))

	conn.Close()
	conn.Close()

	if calls != 1 {
		t.Fatalf("expected closer to run once, got %d", calls)
	}
}
