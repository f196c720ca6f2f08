package ledgerRepository

import (
	"GoFinance/internal/api/ledger"
	"GoFinance/internal/entity"
	redisPkg "GoFinance/pkg/redis"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

// GetCollection returns every stored transaction for the user in
// registration order. A missing key is an empty collection, not an error.
// Records that cannot be decoded or are structurally incomplete are skipped
// so one corrupt entry never takes the whole dashboard down.
func (r *transactionRepository) GetCollection(ctx context.Context, ownerID string) ([]entity.Transaction, error) {
	raw, err := r.loadRaw(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(raw))
	for _, record := range raw {
		var transaction entity.Transaction
		if err := jsoniter.Unmarshal(record, &transaction); err != nil {
			r.log.Warnf("skipping undecodable transaction record for user %s: %v", ownerID, err)
			continue
		}
		if !transaction.WellFormed() {
			r.log.Warnf("skipping incomplete transaction record %s for user %s", transaction.ID, ownerID)
			continue
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

// Append adds one transaction to the end of the user's collection. The
// collection is kept as raw records during the rewrite so entries the reader
// would skip are still preserved in storage.
func (r *transactionRepository) Append(ctx context.Context, ownerID string, transaction entity.Transaction) error {
	raw, err := r.loadRaw(ctx, ownerID)
	if err != nil {
		return err
	}

	record, err := jsoniter.Marshal(transaction)
	if err != nil {
		r.log.Errorf("failed to encode transaction %s: %v", transaction.ID, err)
		return ledger.ErrCreateTransaction
	}

	raw = append(raw, record)
	return r.saveRaw(ctx, ownerID, raw)
}

// Remove deletes the transaction with the given id, keeping the relative
// order of everything else.
func (r *transactionRepository) Remove(ctx context.Context, ownerID string, transactionID string) error {
	raw, err := r.loadRaw(ctx, ownerID)
	if err != nil {
		return err
	}

	kept := make([]jsoniter.RawMessage, 0, len(raw))
	found := false
	for _, record := range raw {
		var probe struct {
			ID string `json:"id"`
		}
		if err := jsoniter.Unmarshal(record, &probe); err == nil && probe.ID == transactionID {
			found = true
			continue
		}
		kept = append(kept, record)
	}

	if !found {
		return ledger.ErrTransactionNotFound
	}

	return r.saveRaw(ctx, ownerID, kept)
}

func (r *transactionRepository) loadRaw(ctx context.Context, ownerID string) ([]jsoniter.RawMessage, error) {
	payload, err := r.kv.Get(ctx, r.collectionKey(ownerID))
	if err != nil {
		if errors.Is(err, redisPkg.Nil) {
			return []jsoniter.RawMessage{}, nil
		}
		r.log.Errorf("failed to read transaction collection for user %s: %v", ownerID, err)
		return nil, ledger.ErrLoadTransactions
	}

	if payload == "" {
		return []jsoniter.RawMessage{}, nil
	}

	var raw []jsoniter.RawMessage
	if err := jsoniter.UnmarshalFromString(payload, &raw); err != nil {
		r.log.Errorf("transaction collection for user %s is not a valid array: %v", ownerID, err)
		return nil, ledger.ErrLoadTransactions
	}

	return raw, nil
}

func (r *transactionRepository) saveRaw(ctx context.Context, ownerID string, raw []jsoniter.RawMessage) error {
	payload, err := jsoniter.MarshalToString(raw)
	if err != nil {
		r.log.Errorf("failed to encode transaction collection for user %s: %v", ownerID, err)
		return ledger.ErrCreateTransaction
	}

	if err := r.kv.Set(ctx, r.collectionKey(ownerID), payload); err != nil {
		r.log.Errorf("failed to write transaction collection for user %s: %v", ownerID, err)
		return ledger.ErrCreateTransaction
	}

	return nil
}
