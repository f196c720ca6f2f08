package entity

import (
	"testing"
	"time"

	"GoFinance/internal/api/ledger"

	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		ID:       "01",
		Name:     "Almoço",
		Amount:   "50",
		Type:     string(TransactionTypeExpense),
		Category: "food",
		Date:     time.Now(),
	}
}

func TestTransactionValidate(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*Transaction)
		expected error
	}{
		{"valid", func(*Transaction) {}, nil},
		{"empty name", func(tx *Transaction) { tx.Name = "  " }, ledger.ErrNameRequired},
		{"negative amount", func(tx *Transaction) { tx.Amount = "-5" }, ledger.ErrInvalidAmount},
		{"zero amount", func(tx *Transaction) { tx.Amount = "0" }, ledger.ErrInvalidAmount},
		{"non numeric amount", func(tx *Transaction) { tx.Amount = "abc" }, ledger.ErrInvalidAmount},
		{"type not selected", func(tx *Transaction) { tx.Type = "" }, ledger.ErrTypeNotSelected},
		{"unknown type", func(tx *Transaction) { tx.Type = "sideways" }, ledger.ErrInvalidTransactionType},
		{"category not selected", func(tx *Transaction) { tx.Category = "" }, ledger.ErrCategoryNotSelected},
		{"category sentinel", func(tx *Transaction) { tx.Category = CategoryUnsetKey }, ledger.ErrCategoryNotSelected},
		{"unknown category", func(tx *Transaction) { tx.Category = "crypto" }, ledger.ErrInvalidCategory},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transaction := validTransaction()
			tc.mutate(&transaction)

			err := transaction.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestTransactionWellFormed(t *testing.T) {
	good := validTransaction()
	assert.True(t, good.WellFormed())

	malformedAmount := validTransaction()
	malformedAmount.Amount = "R$ 10,00"
	assert.False(t, malformedAmount.WellFormed())

	unknownType := validTransaction()
	unknownType.Type = "credit"
	assert.False(t, unknownType.WellFormed())

	zeroDate := validTransaction()
	zeroDate.Date = time.Time{}
	assert.False(t, zeroDate.WellFormed())
}

func TestCategoryCatalog(t *testing.T) {
	keys := make([]string, 0, len(Categories))
	for _, category := range Categories {
		keys = append(keys, category.Key)
	}
	assert.Equal(t, []string{"purchases", "food", "salary", "car", "leisure", "studies"}, keys)

	food, ok := CategoryByKey("food")
	assert.True(t, ok)
	assert.Equal(t, "Alimentação", food.Name)

	_, ok = CategoryByKey(CategoryUnsetKey)
	assert.False(t, ok)
}
