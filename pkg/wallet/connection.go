// Package wallet provides the connection factory used by every contract action.
//
// A Connector hands out a fresh Connection per action. The Connection bundles
// the network it is bound to, a contract backend and, when an account could be
// unlocked, a signer for state-changing calls.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	// ErrNoProvider is returned when no wallet provider is configured at all
	ErrNoProvider = errors.New("no wallet provider configured")
	// ErrConnectionDenied is returned when the provider is present but refused the connection
	ErrConnectionDenied = errors.New("wallet connection denied")
	// ErrReadOnly is returned when a state-changing call is attempted without a signer
	ErrReadOnly = errors.New("connection has no signing account")
)

// ConnectError carries the provider's own message for a denied connection.
// It matches ErrConnectionDenied with errors.Is.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	if e.Err == nil {
		return ErrConnectionDenied.Error()
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConnectionDenied
func (e *ConnectError) Is(target error) bool {
	return target == ErrConnectionDenied
}

// Connector acquires a connection to the wallet provider.
type Connector interface {
	Connect(ctx context.Context) (*Connection, error)
}

// Network identifies the chain a connection is scoped to
type Network struct {
	ChainID int64  `json:"chainId"`
	Name    string `json:"name"`
}

// Connection is a per-action session handle. It is never cached; callers Close it when done.
type Connection struct {
	network     Network
	backend     bind.ContractBackend
	signer      *Signer
	gasLimit    uint64
	maxGasPrice *big.Int
	closer      func()
	logger      *zap.Logger
}

// ConnectionOption customizes a Connection
type ConnectionOption func(*Connection)

// WithGasLimit fixes the gas limit of every transaction; zero lets the node estimate
func WithGasLimit(limit uint64) ConnectionOption {
	return func(c *Connection) { c.gasLimit = limit }
}

// WithMaxGasPrice caps the suggested gas price
func WithMaxGasPrice(price *big.Int) ConnectionOption {
	return func(c *Connection) { c.maxGasPrice = price }
}

// WithCloser registers the function releasing the underlying transport
func WithCloser(fn func()) ConnectionOption {
	return func(c *Connection) { c.closer = fn }
}

// WithLogger sets the connection logger
func WithLogger(logger *zap.Logger) ConnectionOption {
	return func(c *Connection) { c.logger = logger }
}

// NewConnection builds a connection over an existing backend. A nil signer yields a read-only connection.
func NewConnection(network Network, backend bind.ContractBackend, signer *Signer, opts ...ConnectionOption) *Connection {
	c := &Connection{
		network: network,
		backend: backend,
		signer:  signer,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Network returns the chain the connection is bound to
func (c *Connection) Network() Network {
	return c.network
}

// Backend returns the contract backend used for calls and transactions
func (c *Connection) Backend() bind.ContractBackend {
	return c.backend
}

// Account returns the signing account, or the zero address for read-only connections
func (c *Connection) Account() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.Address()
}

// CanSign reports whether state-changing calls are possible
func (c *Connection) CanSign() bool {
	return c.signer != nil
}

// CallOpts returns options for read-only calls
func (c *Connection) CallOpts(ctx context.Context) *bind.CallOpts {
	opts := &bind.CallOpts{Context: ctx}
	if c.signer != nil {
		opts.From = c.signer.Address()
	}
	return opts
}

// TransactOpts returns a transaction signer for state-changing calls
func (c *Connection) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.signer == nil {
		return nil, ErrReadOnly
	}

	auth, err := bind.NewKeyedTransactorWithChainID(c.signer.key, big.NewInt(c.network.ChainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	auth.Context = ctx
	auth.GasLimit = c.gasLimit

	if c.maxGasPrice != nil {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(c.maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", c.maxGasPrice.String()))
			auth.GasPrice = new(big.Int).Set(c.maxGasPrice)
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// Close releases the underlying transport. Safe to call more than once.
func (c *Connection) Close() {
	if c.closer != nil {
		c.closer()
		c.closer = nil
	}
}
