package aggregate

import (
	"GoFinance/internal/entity"
	"GoFinance/pkg/format"
	"fmt"
	"time"
)

// Summarize walks a user's transaction collection once and produces the
// display list plus the three highlight cards. It is a pure function: same
// input, same output, no hidden state.
//
// A transaction whose amount does not parse fails the whole call; callers
// that load from storage are expected to have applied the skip policy first.
func Summarize(transactions []entity.Transaction) ([]DisplayTransaction, Highlight, error) {
	var (
		entriesTotal  float64
		expensesTotal float64
		lastEntry     time.Time
		lastExpense   time.Time
	)

	displayList := make([]DisplayTransaction, 0, len(transactions))

	for _, transaction := range transactions {
		amount, err := transaction.ParseAmount()
		if err != nil {
			return nil, Highlight{}, fmt.Errorf("parse amount of transaction %q: %w", transaction.ID, err)
		}

		switch entity.TransactionType(transaction.Type) {
		case entity.TransactionTypeIncome:
			entriesTotal += amount
			if transaction.Date.After(lastEntry) {
				lastEntry = transaction.Date
			}
		case entity.TransactionTypeExpense:
			expensesTotal += amount
			if transaction.Date.After(lastExpense) {
				lastExpense = transaction.Date
			}
		default:
			return nil, Highlight{}, fmt.Errorf("transaction %q has unknown type %q", transaction.ID, transaction.Type)
		}

		// Display amounts stay unsigned; the client derives the sign
		// from Type.
		displayList = append(displayList, DisplayTransaction{
			ID:       transaction.ID,
			Name:     transaction.Name,
			Amount:   format.Currency(amount),
			Type:     transaction.Type,
			Category: transaction.Category,
			Date:     format.ShortDate(transaction.Date),
		})
	}

	balanceTotal := entriesTotal - expensesTotal

	highlight := Highlight{
		Entries: HighlightCard{
			Total:           entriesTotal,
			Amount:          format.Currency(entriesTotal),
			LastTransaction: lastTransactionLabel("Última entrada dia %s", lastEntry),
		},
		Expensives: HighlightCard{
			Total:           expensesTotal,
			Amount:          format.Currency(expensesTotal),
			LastTransaction: lastTransactionLabel("Última saída dia %s", lastExpense),
		},
		Total: HighlightCard{
			Total:           balanceTotal,
			Amount:          format.Currency(balanceTotal),
			LastTransaction: lastTransactionLabel("01 a %s", lastExpense),
		},
	}

	return displayList, highlight, nil
}

func lastTransactionLabel(layout string, last time.Time) string {
	if last.IsZero() {
		return NoTransactionsLabel
	}
	return fmt.Sprintf(layout, format.DayLongMonth(last))
}
