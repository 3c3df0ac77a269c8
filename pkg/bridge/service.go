package bridge

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/docsign-bridge/internal/metrics"
	"github.com/chainsafe/docsign-bridge/pkg/ethereum/contracts"
	"github.com/chainsafe/docsign-bridge/pkg/wallet"
)

// Contract is the remote method proxy of the document registry
//
//go:generate mockery --name Contract --output mocks --outpkg mocks --with-expecter
type Contract interface {
	AddToWhitelist(opts *bind.TransactOpts, addr common.Address) (*types.Transaction, error)
	RemoveFromWhitelist(opts *bind.TransactOpts, addr common.Address) (*types.Transaction, error)
	SetDocumentHash(opts *bind.TransactOpts, documentHash [32]byte) (*types.Transaction, error)
	SignDocument(opts *bind.TransactOpts, documentHash [32]byte) (*types.Transaction, error)
	AllAddressesSignedDocument(opts *bind.CallOpts, documentHash [32]byte) (bool, error)
	GetVoteCount(opts *bind.CallOpts, documentHash [32]byte) (*big.Int, error)
	GetWhitelist(opts *bind.CallOpts) ([]common.Address, error)
}

// ContractFactory binds a proxy to the contract address over a connection's backend
type ContractFactory func(address common.Address, backend bind.ContractBackend) (Contract, error)

// NewDocumentRegistry is the default ContractFactory backed by the generated binding
func NewDocumentRegistry(address common.Address, backend bind.ContractBackend) (Contract, error) {
	registry, err := contracts.NewDocumentRegistry(address, backend)
	if err != nil {
		return nil, err
	}
	return registry, nil
}

// Service performs exactly one contract call per invocation
//
//go:generate mockery --name Service --output mocks --outpkg mocks --with-expecter
type Service interface {
	Invoke(ctx context.Context, op Operation) (*Result, error)
}

// CallError is a rejected contract call. Its message is the provider's own text.
type CallError struct {
	Method string
	Err    error
}

func (e *CallError) Error() string {
	return e.Err.Error()
}

func (e *CallError) Unwrap() error {
	return e.Err
}

type service struct {
	connector wallet.Connector
	address   common.Address
	factory   ContractFactory
}

// Option customizes the bridge service
type Option func(*service)

// WithContractFactory replaces the generated binding, mainly for tests
func WithContractFactory(factory ContractFactory) Option {
	return func(s *service) { s.factory = factory }
}

// NewService creates a service that connects through connector and calls the contract at address
func NewService(connector wallet.Connector, address common.Address, opts ...Option) Service {
	s := &service{
		connector: connector,
		address:   address,
		factory:   NewDocumentRegistry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invoke acquires a fresh connection, binds the proxy and performs the operation.
// Connection failures are returned as-is (wallet.ErrNoProvider, wallet.ErrConnectionDenied);
// everything after a successful connection is a *CallError.
func (s *service) Invoke(ctx context.Context, op Operation) (*Result, error) {
	if op == nil {
		return nil, errors.New("nil operation")
	}

	conn, err := s.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	contract, err := s.factory(s.address, conn.Backend())
	if err != nil {
		metrics.ContractCallsTotal.WithLabelValues(op.Method(), "error").Inc()
		return nil, &CallError{Method: op.Method(), Err: fmt.Errorf("failed to bind contract: %w", err)}
	}

	start := time.Now()
	res, err := op.invoke(ctx, contract, conn)
	metrics.ContractCallDuration.WithLabelValues(op.Method()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ContractCallsTotal.WithLabelValues(op.Method(), "error").Inc()
		return nil, &CallError{Method: op.Method(), Err: err}
	}

	metrics.ContractCallsTotal.WithLabelValues(op.Method(), "success").Inc()
	return res, nil
}
