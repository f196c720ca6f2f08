package entity

import (
	"GoFinance/internal/api/ledger"
	"strconv"
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "up"
	TransactionTypeExpense TransactionType = "down"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Transaction is one persisted ledger record. Amount is kept as the numeric
// string the client submitted; the semantic sign lives in Type, never in the
// stored value.
type Transaction struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Amount   string    `json:"amount"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// ParseAmount converts the stored amount string to its numeric value.
func (t *Transaction) ParseAmount() (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(t.Amount), 64)
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Validate enforces the creation preconditions. Checks run in form order so
// the first broken field wins, giving the caller one distinct message.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ledger.ErrNameRequired
	}

	amount, err := t.ParseAmount()
	if err != nil || amount <= 0 {
		return ledger.ErrInvalidAmount
	}

	if t.Type == "" {
		return ledger.ErrTypeNotSelected
	}
	if !IsValidTransactionType(t.Type) {
		return ledger.ErrInvalidTransactionType
	}

	if t.Category == "" || t.Category == CategoryUnsetKey {
		return ledger.ErrCategoryNotSelected
	}
	if !IsValidCategoryKey(t.Category) {
		return ledger.ErrInvalidCategory
	}

	return nil
}

// WellFormed reports whether a record loaded from storage is safe to feed
// into the aggregation engine. Load skips records that fail this check.
func (t *Transaction) WellFormed() bool {
	amount, err := t.ParseAmount()
	if err != nil || amount < 0 {
		return false
	}
	return IsValidTransactionType(t.Type) && !t.Date.IsZero()
}
