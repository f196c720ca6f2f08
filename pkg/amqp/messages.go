package amqp

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	ActionTransactionCreated = "transaction.created"
	ActionTransactionDeleted = "transaction.deleted"
)

// TransactionEvent is intentionally lightweight: consumers that need the
// full record fetch the owner's collection themselves.
type TransactionEvent struct {
	Action        string    `json:"action"`
	OwnerID       string    `json:"owner_id"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewTransactionEvent(action, ownerID, transactionID string) TransactionEvent {
	return TransactionEvent{
		Action:        action,
		OwnerID:       ownerID,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (e TransactionEvent) ToJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (TransactionEvent, error) {
	var event TransactionEvent
	if err := jsoniter.Unmarshal(data, &event); err != nil {
		return TransactionEvent{}, err
	}
	return event, nil
}
