package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/docsign-bridge/internal/metrics"
	"github.com/chainsafe/docsign-bridge/pkg/config"
)

// RPCConnector dials a JSON-RPC node and unlocks the configured operator account.
type RPCConnector struct {
	cfg    *config.EthereumConfig
	logger *zap.Logger
}

// NewRPCConnector creates a connector for the configured network
func NewRPCConnector(cfg *config.EthereumConfig, logger *zap.Logger) *RPCConnector {
	return &RPCConnector{
		cfg:    cfg,
		logger: logger,
	}
}

// Network returns the network every connection is scoped to
func (c *RPCConnector) Network() Network {
	return Network{ChainID: c.cfg.ChainID, Name: c.cfg.NetworkName}
}

// Connect dials the node, checks that it serves the expected chain and unlocks the signer if one is configured.
func (c *RPCConnector) Connect(ctx context.Context) (*Connection, error) {
	if c.cfg.RPCURL == "" {
		metrics.ConnectionAttempts.WithLabelValues("no_provider").Inc()
		return nil, ErrNoProvider
	}

	network := c.Network()
	c.logger.Debug("Connecting to wallet provider",
		zap.String("rpc_url", c.cfg.RPCURL),
		zap.Int64("chain_id", network.ChainID),
		zap.String("network", network.Name))

	client, err := ethclient.DialContext(ctx, c.cfg.RPCURL)
	if err != nil {
		return nil, c.denied(err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, c.denied(err)
	}
	if chainID.Cmp(big.NewInt(network.ChainID)) != 0 {
		client.Close()
		return nil, c.denied(fmt.Errorf("provider is on chain %s, expected %d (%s)", chainID, network.ChainID, network.Name))
	}

	signer, err := LoadSigner(c.cfg)
	if err != nil {
		client.Close()
		return nil, c.denied(err)
	}

	opts := []ConnectionOption{
		WithGasLimit(c.cfg.GasLimit),
		WithCloser(client.Close),
		WithLogger(c.logger),
	}
	if c.cfg.MaxGasPrice != "" {
		maxGasPrice, ok := new(big.Int).SetString(c.cfg.MaxGasPrice, 10)
		if !ok {
			client.Close()
			return nil, c.denied(fmt.Errorf("invalid max gas price %q", c.cfg.MaxGasPrice))
		}
		opts = append(opts, WithMaxGasPrice(maxGasPrice))
	}

	conn := NewConnection(network, client, signer, opts...)

	metrics.ConnectionAttempts.WithLabelValues("connected").Inc()
	c.logger.Debug("Connected to wallet provider",
		zap.Int64("chain_id", network.ChainID),
		zap.Bool("can_sign", conn.CanSign()),
		zap.String("account", conn.Account().Hex()))

	return conn, nil
}

func (c *RPCConnector) denied(err error) error {
	metrics.ConnectionAttempts.WithLabelValues("denied").Inc()
	return &ConnectError{Err: err}
}
