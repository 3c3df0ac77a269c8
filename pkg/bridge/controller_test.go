package bridge_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/docsign-bridge/pkg/bridge"
	"github.com/chainsafe/docsign-bridge/pkg/bridge/mocks"
	"github.com/chainsafe/docsign-bridge/pkg/wallet"
)

const testHashHex = "0x6c6f72656d697073756d646f6c6f72736974616d6574636f6e73656374657475"

func newController(svc bridge.Service) *bridge.Controller {
	return bridge.NewController(svc, bridge.NewBoard(), zap.NewNop())
}

func TestController_Do_NoProviderRaisesAlert(t *testing.T) {
	ctx := context.Background()

	svc := mocks.NewService(t)
	svc.EXPECT().Invoke(ctx, bridge.NewRequest(bridge.ActionGetVoteCount, bridge.Fields{DocumentHash: testHashHex})).
		Return(nil, wallet.ErrNoProvider).Once()

	ctrl := newController(svc)

	st, err := ctrl.Do(ctx, "get-vote-count", bridge.Fields{DocumentHash: testHashHex})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if st.Kind != bridge.KindAlert {
		t.Fatalf("expected alert, got %s", st.Kind)
	}
	if st.Text != "Please install MetaMask or another web3 wallet" {
		t.Fatalf("unexpected alert text %q", st.Text)
	}
	if _, ok := ctrl.Board().Current(); ok {
		t.Fatal("alert must not be written into the status text")
	}
	if alert, ok := ctrl.Board().LastAlert(); !ok || alert.RequestID != st.RequestID {
		t.Fatalf("expected alert on the board, got %+v", alert)
	}
}

func TestController_Do_NoProviderWithRealService(t *testing.T) {
	ctx := context.Background()

	connector := mocks.NewConnector(t)
	connector.EXPECT().Connect(mock.Anything).Return(nil, wallet.ErrNoProvider).Once()

	svc := bridge.NewService(connector, contractAddress, bridge.WithContractFactory(failingFactory(t)))
	ctrl := newController(bridge.NewLog(svc, zap.NewNop()))

	st, err := ctrl.Do(ctx, "sign", bridge.Fields{DocumentHash: testHashHex})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if st.Kind != bridge.KindAlert || st.Text != bridge.AlertNoProvider {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestController_Do_DeniedConnectionRaisesAlert(t *testing.T) {
	ctx := context.Background()

	svc := mocks.NewService(t)
	svc.EXPECT().Invoke(ctx, mock.Anything).
		Return(nil, &wallet.ConnectError{Err: errors.New("User rejected the request.")}).Once()

	st, err := newController(svc).Do(ctx, "sign", bridge.Fields{DocumentHash: testHashHex})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if st.Kind != bridge.KindAlert {
		t.Fatalf("expected alert, got %s", st.Kind)
	}
	if st.Text != "Failed to connect to MetaMask: User rejected the request." {
		t.Fatalf("unexpected alert text %q", st.Text)
	}
}

func TestController_Do_CallRejected(t *testing.T) {
	ctx := context.Background()

	svc := mocks.NewService(t)
	svc.EXPECT().Invoke(ctx, bridge.NewRequest(bridge.ActionSign, bridge.Fields{DocumentHash: testHashHex})).
		Return(nil, &bridge.CallError{Method: "signDocument", Err: errors.New("execution reverted: not whitelisted")}).Once()

	ctrl := newController(svc)

	st, err := ctrl.Do(ctx, "sign", bridge.Fields{DocumentHash: testHashHex})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if st.Kind != bridge.KindError {
		t.Fatalf("expected error kind, got %s", st.Kind)
	}
	if st.Text != "Error: execution reverted: not whitelisted" {
		t.Fatalf("unexpected status text %q", st.Text)
	}

	current, ok := ctrl.Board().Current()
	if !ok || current.Text != st.Text {
		t.Fatalf("expected failure on the board, got %+v", current)
	}
}

func TestController_Do_WriteSuccessCarriesTxHash(t *testing.T) {
	ctx := context.Background()
	tx := newTx(9)

	svc := mocks.NewService(t)
	svc.EXPECT().Invoke(ctx, bridge.NewRequest(bridge.ActionAddToWhitelist, bridge.Fields{Address: testAddress.Hex()})).
		Return(&bridge.Result{Operation: bridge.AddToWhitelist{Address: testAddress}, Tx: tx}, nil).Once()

	st, err := newController(svc).Do(ctx, "add-to-whitelist", bridge.Fields{Address: testAddress.Hex()})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if st.Kind != bridge.KindSuccess {
		t.Fatalf("expected success, got %s", st.Kind)
	}
	if !strings.Contains(st.Text, tx.Hash().Hex()) {
		t.Fatalf("expected status text to contain %s, got %q", tx.Hash().Hex(), st.Text)
	}
	if st.TxHash != tx.Hash().Hex() {
		t.Fatalf("expected tx hash %s, got %s", tx.Hash().Hex(), st.TxHash)
	}
}

func TestController_Do_VoteCount(t *testing.T) {
	ctx := context.Background()

	svc := mocks.NewService(t)
	svc.EXPECT().Invoke(ctx, bridge.NewRequest(bridge.ActionGetVoteCount, bridge.Fields{DocumentHash: testHashHex})).
		Return(&bridge.Result{Operation: bridge.GetVoteCount{Hash: testHash}, VoteCount: big.NewInt(3)}, nil).Once()

	st, err := newController(svc).Do(ctx, "get-vote-count", bridge.Fields{DocumentHash: testHashHex})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if st.Text != "Vote count: 3" {
		t.Fatalf("expected %q, got %q", "Vote count: 3", st.Text)
	}
}

func TestController_Do_Whitelist(t *testing.T) {
	ctx := context.Background()
	a := common.HexToAddress("0xAaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	b := common.HexToAddress("0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB")

	svc := mocks.NewService(t)
	svc.EXPECT().Invoke(ctx, bridge.NewRequest(bridge.ActionListWhitelist, bridge.Fields{})).
		Return(&bridge.Result{Operation: bridge.GetWhitelist{}, Whitelist: []common.Address{a, b}}, nil).Once()

	st, err := newController(svc).Do(ctx, "list-whitelist", bridge.Fields{})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	want := "Whitelist addresses: " + a.Hex() + ", " + b.Hex()
	if st.Text != want {
		t.Fatalf("expected %q, got %q", want, st.Text)
	}
}

func TestController_Do_MalformedInputFailsAfterConnecting(t *testing.T) {
	ctx := context.Background()

	connector := mocks.NewConnector(t)
	connector.EXPECT().Connect(mock.Anything).Return(wallet.NewConnection(testNetwork, nil, nil), nil).Once()

	contract := mocks.NewContract(t)
	svc := bridge.NewService(connector, contractAddress, bridge.WithContractFactory(staticFactory(t, contract)))

	st, err := newController(svc).Do(ctx, "remove-from-whitelist", bridge.Fields{Address: "bob"})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if st.Kind != bridge.KindError || !strings.HasPrefix(st.Text, "Error: invalid address") {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestController_Do_NoProviderWinsOverMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		action string
		fields bridge.Fields
	}{
		{name: "empty hash", action: "sign", fields: bridge.Fields{}},
		{name: "short hash", action: "get-vote-count", fields: bridge.Fields{DocumentHash: "0x1234"}},
		{name: "bad new hash", action: "set-document-hash", fields: bridge.Fields{NewDocumentHash: "hello"}},
		{name: "bad address", action: "add-to-whitelist", fields: bridge.Fields{Address: "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector := mocks.NewConnector(t)
			connector.EXPECT().Connect(mock.Anything).Return(nil, wallet.ErrNoProvider).Once()

			svc := bridge.NewService(connector, contractAddress, bridge.WithContractFactory(failingFactory(t)))

			st, err := newController(svc).Do(context.Background(), tt.action, tt.fields)
			if err != nil {
				t.Fatalf("Do() failed: %v", err)
			}
			if st.Kind != bridge.KindAlert || st.Text != bridge.AlertNoProvider {
				t.Fatalf("expected no-provider alert, got %+v", st)
			}
		})
	}
}

func TestController_Do_UnknownAction(t *testing.T) {
	svc := mocks.NewService(t)

	_, err := newController(svc).Do(context.Background(), "removeAddressFromWhitelist", bridge.Fields{})
	if !errors.Is(err, bridge.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestController_Do_OverlappingRequestsKeepLaterStarted(t *testing.T) {
	ctx := context.Background()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	svc := mocks.NewService(t)
	svc.EXPECT().Invoke(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, op bridge.Operation) (*bridge.Result, error) {
			switch op.Action() {
			case bridge.ActionGetVoteCount:
				close(firstStarted)
				<-releaseFirst
				return &bridge.Result{Operation: bridge.GetVoteCount{Hash: testHash}, VoteCount: big.NewInt(1)}, nil
			default:
				return &bridge.Result{Operation: bridge.CheckAllSigned{Hash: testHash}, AllSigned: true}, nil
			}
		}).Times(2)

	ctrl := newController(svc)

	firstDone := make(chan bridge.Status, 1)
	go func() {
		st, err := ctrl.Do(ctx, "get-vote-count", bridge.Fields{DocumentHash: testHashHex})
		if err != nil {
			t.Errorf("first Do() failed: %v", err)
		}
		firstDone <- st
	}()

	<-firstStarted

	second, err := ctrl.Do(ctx, "check-all-signed", bridge.Fields{DocumentHash: testHashHex})
	if err != nil {
		t.Fatalf("second Do() failed: %v", err)
	}

	close(releaseFirst)
	first := <-firstDone

	if first.Text != "Vote count: 1" {
		t.Fatalf("first caller must receive its own status, got %q", first.Text)
	}
	if second.Text != "All addresses have signed the document." {
		t.Fatalf("second caller must receive its own status, got %q", second.Text)
	}
	if first.Seq >= second.Seq {
		t.Fatalf("expected first request to start earlier, got seq %d and %d", first.Seq, second.Seq)
	}

	current, ok := ctrl.Board().Current()
	if !ok {
		t.Fatal("expected a status on the board")
	}
	if current.RequestID != second.RequestID {
		t.Fatalf("expected board to keep later-started request %s, got %s (%q)", second.RequestID, current.RequestID, current.Text)
	}
}
