package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/docsign-bridge/internal/metrics"
	"github.com/chainsafe/docsign-bridge/pkg/config"
	"github.com/chainsafe/docsign-bridge/pkg/wallet"
)

const (
	// AlertNoProvider is shown when no wallet provider is configured
	AlertNoProvider = "Please install MetaMask or another web3 wallet"
	// AlertConnectFailedPrefix precedes the provider's message for a denied connection
	AlertConnectFailedPrefix = "Failed to connect to MetaMask: "
	// ErrorPrefix precedes the message of any failed call
	ErrorPrefix = "Error: "
)

// Controller is the action boundary shared by the HTTP and CLI surfaces.
// Every action failure ends here and becomes a Status.
type Controller struct {
	svc    Service
	board  *Board
	logger *zap.Logger
}

// NewController wires a controller around an existing service and board
func NewController(svc Service, board *Board, logger *zap.Logger) *Controller {
	return &Controller{
		svc:    svc,
		board:  board,
		logger: logger,
	}
}

// New builds the production controller: RPC connector, generated binding, logging decorator
func New(cfg *config.EthereumConfig, logger *zap.Logger) *Controller {
	connector := wallet.NewRPCConnector(cfg, logger)
	svc := NewService(connector, common.HexToAddress(cfg.ContractAddress))
	return NewController(NewLog(svc, logger), NewBoard(), logger)
}

// Board returns the shared status board
func (c *Controller) Board() *Board {
	return c.board
}

// Do runs one action from raw field values. It returns an error only for unknown
// actions; every other outcome is reported through the returned Status.
func (c *Controller) Do(ctx context.Context, action string, fields Fields) (Status, error) {
	if !KnownAction(action) {
		return Status{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	ticket := c.board.Begin(Action(action))

	res, err := c.svc.Invoke(ctx, NewRequest(Action(action), fields))
	return c.finish(statusFor(ticket, res, err)), nil
}

func statusFor(ticket Ticket, res *Result, err error) Status {
	switch {
	case err == nil:
		return ticket.Status(KindSuccess, res.Message(), res.TxHash())
	case errors.Is(err, wallet.ErrNoProvider):
		return ticket.Status(KindAlert, AlertNoProvider, "")
	case errors.Is(err, wallet.ErrConnectionDenied):
		return ticket.Status(KindAlert, AlertConnectFailedPrefix+err.Error(), "")
	default:
		return ticket.Status(KindError, ErrorPrefix+err.Error(), "")
	}
}

func (c *Controller) finish(st Status) Status {
	metrics.ActionsTotal.WithLabelValues(string(st.Action), string(st.Kind)).Inc()

	if !c.board.Publish(st) {
		c.logger.Debug("Dropped stale status",
			zap.String("request_id", st.RequestID),
			zap.Uint64("seq", st.Seq),
			zap.String("action", string(st.Action)))
	}
	return st
}
