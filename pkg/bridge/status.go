package bridge

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/docsign-bridge/internal/metrics"
)

// Kind classifies a status
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	// KindAlert is a connection problem shown to the operator outside the status text
	KindAlert Kind = "alert"
)

// Status is the operator-facing outcome of one action
type Status struct {
	RequestID   string    `json:"request_id"`
	Seq         uint64    `json:"seq"`
	Action      Action    `json:"action"`
	Kind        Kind      `json:"kind"`
	Text        string    `json:"text"`
	TxHash      string    `json:"tx_hash,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// Ticket tags an action with its start order
type Ticket struct {
	Seq       uint64
	RequestID string
	Action    Action
}

// Status builds a completed status for the ticket
func (t Ticket) Status(kind Kind, text, txHash string) Status {
	return Status{
		RequestID:   t.RequestID,
		Seq:         t.Seq,
		Action:      t.Action,
		Kind:        kind,
		Text:        text,
		TxHash:      txHash,
		CompletedAt: time.Now().UTC(),
	}
}

// Board is the shared status region. It always shows the most recently started
// request among those completed; alerts are kept apart from the status text.
type Board struct {
	mu      sync.Mutex
	nextSeq uint64
	current *Status
	alert   *Status
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Begin issues a ticket for a new action
func (b *Board) Begin(action Action) Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	return Ticket{
		Seq:       b.nextSeq,
		RequestID: uuid.NewString(),
		Action:    action,
	}
}

// Publish records a completed status. It returns false when a later-started
// request has already been shown, in which case the status is dropped.
func (b *Board) Publish(st Status) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	slot := &b.current
	if st.Kind == KindAlert {
		slot = &b.alert
	}

	if *slot != nil && (*slot).Seq > st.Seq {
		metrics.StaleStatusDropped.Inc()
		return false
	}

	*slot = &st
	return true
}

// Current returns the status text region, if any action completed yet
func (b *Board) Current() (Status, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return Status{}, false
	}
	return *b.current, true
}

// LastAlert returns the most recent alert, if any
func (b *Board) LastAlert() (Status, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.alert == nil {
		return Status{}, false
	}
	return *b.alert, true
}
