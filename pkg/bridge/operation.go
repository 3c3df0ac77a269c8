package bridge

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/docsign-bridge/pkg/ethereum"
	"github.com/chainsafe/docsign-bridge/pkg/wallet"
)

// Action names an operator trigger
type Action string

const (
	ActionSign                Action = "sign"
	ActionCheckAllSigned      Action = "check-all-signed"
	ActionGetVoteCount        Action = "get-vote-count"
	ActionSetDocumentHash     Action = "set-document-hash"
	ActionAddToWhitelist      Action = "add-to-whitelist"
	ActionRemoveFromWhitelist Action = "remove-from-whitelist"
	ActionListWhitelist       Action = "list-whitelist"
)

// ErrUnknownAction is returned for action names outside the fixed set
var ErrUnknownAction = errors.New("unknown action")

var actions = []Action{
	ActionSign,
	ActionCheckAllSigned,
	ActionGetVoteCount,
	ActionSetDocumentHash,
	ActionAddToWhitelist,
	ActionRemoveFromWhitelist,
	ActionListWhitelist,
}

// Actions returns every supported action in display order
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// KnownAction reports whether name is a supported action
func KnownAction(name string) bool {
	for _, a := range actions {
		if string(a) == name {
			return true
		}
	}
	return false
}

// Label returns the button caption of the action
func (a Action) Label() string {
	switch a {
	case ActionSign:
		return "Sign Document"
	case ActionCheckAllSigned:
		return "Check All Signed"
	case ActionGetVoteCount:
		return "Get Vote Count"
	case ActionSetDocumentHash:
		return "Set Document Hash"
	case ActionAddToWhitelist:
		return "Add to Whitelist"
	case ActionRemoveFromWhitelist:
		return "Remove from Whitelist"
	case ActionListWhitelist:
		return "Get Whitelist"
	default:
		return string(a)
	}
}

// Fields holds the raw operator input, keyed like the page's input ids
type Fields struct {
	DocumentHash    string `json:"documentHash"`
	NewDocumentHash string `json:"newDocumentHash"`
	Address         string `json:"address"`
}

// ParseAction turns an action name and its raw fields into a typed operation.
// Unknown names return ErrUnknownAction; malformed fields return the parse error.
func ParseAction(name string, fields Fields) (Operation, error) {
	switch Action(name) {
	case ActionSign:
		hash, err := ethereum.ParseDocumentHash(fields.DocumentHash)
		if err != nil {
			return nil, err
		}
		return SignDocument{Hash: hash}, nil
	case ActionCheckAllSigned:
		hash, err := ethereum.ParseDocumentHash(fields.DocumentHash)
		if err != nil {
			return nil, err
		}
		return CheckAllSigned{Hash: hash}, nil
	case ActionGetVoteCount:
		hash, err := ethereum.ParseDocumentHash(fields.DocumentHash)
		if err != nil {
			return nil, err
		}
		return GetVoteCount{Hash: hash}, nil
	case ActionSetDocumentHash:
		hash, err := ethereum.ParseDocumentHash(fields.NewDocumentHash)
		if err != nil {
			return nil, err
		}
		return SetDocumentHash{Hash: hash}, nil
	case ActionAddToWhitelist:
		addr, err := ethereum.ParseAddress(fields.Address)
		if err != nil {
			return nil, err
		}
		return AddToWhitelist{Address: addr}, nil
	case ActionRemoveFromWhitelist:
		addr, err := ethereum.ParseAddress(fields.Address)
		if err != nil {
			return nil, err
		}
		return RemoveFromWhitelist{Address: addr}, nil
	case ActionListWhitelist:
		return GetWhitelist{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
}

// Request defers parsing of raw operator fields until a connection is held,
// so a missing provider always wins over malformed input. Its parse error is
// reported like any other failed call.
type Request struct {
	Name   Action
	Fields Fields
}

// NewRequest wraps an action name and its raw fields
func NewRequest(name Action, fields Fields) Request {
	return Request{Name: name, Fields: fields}
}

func (r Request) Action() Action { return r.Name }

func (r Request) Method() string {
	if op := variantOf(r.Name); op != nil {
		return op.Method()
	}
	return string(r.Name)
}

func (r Request) Mutating() bool {
	if op := variantOf(r.Name); op != nil {
		return op.Mutating()
	}
	return false
}

func (r Request) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	op, err := ParseAction(string(r.Name), r.Fields)
	if err != nil {
		return nil, err
	}
	return op.invoke(ctx, c, conn)
}

// describe is never reached: a parsed Request reports the concrete operation in its Result
func (Request) describe(*Result) string {
	return ""
}

// variantOf returns the zero-valued operation for an action, nil for unknown names
func variantOf(a Action) Operation {
	switch a {
	case ActionSign:
		return SignDocument{}
	case ActionCheckAllSigned:
		return CheckAllSigned{}
	case ActionGetVoteCount:
		return GetVoteCount{}
	case ActionSetDocumentHash:
		return SetDocumentHash{}
	case ActionAddToWhitelist:
		return AddToWhitelist{}
	case ActionRemoveFromWhitelist:
		return RemoveFromWhitelist{}
	case ActionListWhitelist:
		return GetWhitelist{}
	default:
		return nil
	}
}

// Operation is one invocation of a contract method with typed arguments.
// The set of implementations is closed.
type Operation interface {
	// Action returns the operator action that produced the operation
	Action() Action
	// Method returns the contract method name
	Method() string
	// Mutating reports whether the call changes contract state
	Mutating() bool

	invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error)
	describe(res *Result) string
}

// Result is the outcome of a successful call. Only the field matching the operation is set.
type Result struct {
	Operation Operation
	Tx        *types.Transaction
	AllSigned bool
	VoteCount *big.Int
	Whitelist []common.Address
}

// TxHash returns the hex transaction hash for state-changing calls, empty otherwise
func (r *Result) TxHash() string {
	if r == nil || r.Tx == nil {
		return ""
	}
	return r.Tx.Hash().Hex()
}

// Message renders the operator-facing success text
func (r *Result) Message() string {
	if r == nil || r.Operation == nil {
		return ""
	}
	return r.Operation.describe(r)
}

func transact(
	ctx context.Context,
	conn *wallet.Connection,
	op Operation,
	send func(opts *bind.TransactOpts) (*types.Transaction, error),
) (*Result, error) {
	opts, err := conn.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := send(opts)
	if err != nil {
		return nil, err
	}
	return &Result{Operation: op, Tx: tx}, nil
}

// AddToWhitelist grants an address voting rights
type AddToWhitelist struct {
	Address common.Address
}

func (AddToWhitelist) Action() Action { return ActionAddToWhitelist }
func (AddToWhitelist) Method() string { return "addToWhitelist" }
func (AddToWhitelist) Mutating() bool { return true }

func (op AddToWhitelist) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	return transact(ctx, conn, op, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.AddToWhitelist(opts, op.Address)
	})
}

func (AddToWhitelist) describe(res *Result) string {
	return "Address added to whitelist. Transaction hash: " + res.TxHash()
}

// RemoveFromWhitelist revokes an address
type RemoveFromWhitelist struct {
	Address common.Address
}

func (RemoveFromWhitelist) Action() Action { return ActionRemoveFromWhitelist }
func (RemoveFromWhitelist) Method() string { return "removeFromWhitelist" }
func (RemoveFromWhitelist) Mutating() bool { return true }

func (op RemoveFromWhitelist) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	return transact(ctx, conn, op, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.RemoveFromWhitelist(opts, op.Address)
	})
}

func (RemoveFromWhitelist) describe(res *Result) string {
	return "Address removed from whitelist. Transaction hash: " + res.TxHash()
}

// SetDocumentHash registers a document
type SetDocumentHash struct {
	Hash [32]byte
}

func (SetDocumentHash) Action() Action { return ActionSetDocumentHash }
func (SetDocumentHash) Method() string { return "setDocumentHash" }
func (SetDocumentHash) Mutating() bool { return true }

func (op SetDocumentHash) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	return transact(ctx, conn, op, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.SetDocumentHash(opts, op.Hash)
	})
}

func (SetDocumentHash) describe(res *Result) string {
	return "Document hash added. Transaction hash: " + res.TxHash()
}

// SignDocument records the caller's signature on a document
type SignDocument struct {
	Hash [32]byte
}

func (SignDocument) Action() Action { return ActionSign }
func (SignDocument) Method() string { return "signDocument" }
func (SignDocument) Mutating() bool { return true }

func (op SignDocument) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	return transact(ctx, conn, op, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.SignDocument(opts, op.Hash)
	})
}

func (SignDocument) describe(res *Result) string {
	return "Document signed. Transaction hash: " + res.TxHash()
}

// CheckAllSigned asks whether every whitelisted address signed a document
type CheckAllSigned struct {
	Hash [32]byte
}

func (CheckAllSigned) Action() Action { return ActionCheckAllSigned }
func (CheckAllSigned) Method() string { return "allAddressesSignedDocument" }
func (CheckAllSigned) Mutating() bool { return false }

func (op CheckAllSigned) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	signed, err := c.AllAddressesSignedDocument(conn.CallOpts(ctx), op.Hash)
	if err != nil {
		return nil, err
	}
	return &Result{Operation: op, AllSigned: signed}, nil
}

func (CheckAllSigned) describe(res *Result) string {
	if res.AllSigned {
		return "All addresses have signed the document."
	}
	return "Not all addresses have signed the document."
}

// GetVoteCount reads the number of signatures on a document
type GetVoteCount struct {
	Hash [32]byte
}

func (GetVoteCount) Action() Action { return ActionGetVoteCount }
func (GetVoteCount) Method() string { return "getVoteCount" }
func (GetVoteCount) Mutating() bool { return false }

func (op GetVoteCount) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	count, err := c.GetVoteCount(conn.CallOpts(ctx), op.Hash)
	if err != nil {
		return nil, err
	}
	if count == nil {
		count = new(big.Int)
	}
	return &Result{Operation: op, VoteCount: count}, nil
}

func (GetVoteCount) describe(res *Result) string {
	return "Vote count: " + res.VoteCount.String()
}

// GetWhitelist lists the whitelisted addresses
type GetWhitelist struct{}

func (GetWhitelist) Action() Action { return ActionListWhitelist }
func (GetWhitelist) Method() string { return "getWhitelist" }
func (GetWhitelist) Mutating() bool { return false }

func (op GetWhitelist) invoke(ctx context.Context, c Contract, conn *wallet.Connection) (*Result, error) {
	addrs, err := c.GetWhitelist(conn.CallOpts(ctx))
	if err != nil {
		return nil, err
	}
	return &Result{Operation: op, Whitelist: addrs}, nil
}

func (GetWhitelist) describe(res *Result) string {
	hexes := make([]string, len(res.Whitelist))
	for i, addr := range res.Whitelist {
		hexes[i] = addr.Hex()
	}
	return "Whitelist addresses: " + strings.Join(hexes, ", ")
}
