package aggregate

import (
	"testing"
	"time"

	"GoFinance/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id, name, amount, txType, category string, date time.Time) entity.Transaction {
	return entity.Transaction{
		ID:       id,
		Name:     name,
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     date,
	}
}

func TestSummarize_Totals(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "Desenvolvimento de site", "12000", "up", "salary", time.Date(2022, time.April, 10, 0, 0, 0, 0, time.UTC)),
		tx("2", "Almoço fora", "50", "down", "food", time.Date(2022, time.April, 11, 0, 0, 0, 0, time.UTC)),
		tx("3", "Gasolina", "150.5", "down", "car", time.Date(2022, time.April, 13, 0, 0, 0, 0, time.UTC)),
	}

	list, highlight, err := Summarize(transactions)
	require.NoError(t, err)

	assert.Equal(t, 12000.0, highlight.Entries.Total)
	assert.Equal(t, 200.5, highlight.Expensives.Total)
	assert.Equal(t, 11799.5, highlight.Total.Total)

	// Balance is computed over the same parsed values, no rounding drift.
	assert.Equal(t, highlight.Entries.Total-highlight.Expensives.Total, highlight.Total.Total)

	assert.Equal(t, "R$ 12.000,00", highlight.Entries.Amount)
	assert.Equal(t, "R$ 200,50", highlight.Expensives.Amount)
	assert.Equal(t, "R$ 11.799,50", highlight.Total.Amount)

	require.Len(t, list, 3)
	assert.Equal(t, "R$ 12.000,00", list[0].Amount)
	assert.Equal(t, "10/04/22", list[0].Date)

	// Expense rows keep the unsigned currency string; the sign is carried
	// by Type, never baked into the display amount.
	assert.Equal(t, "R$ 50,00", list[1].Amount)
	assert.Equal(t, "down", list[1].Type)
}

func TestSummarize_PreservesInsertionOrder(t *testing.T) {
	transactions := []entity.Transaction{
		tx("b", "segundo", "2", "down", "food", time.Date(2022, time.April, 2, 0, 0, 0, 0, time.UTC)),
		tx("a", "primeiro", "1", "up", "salary", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx("c", "terceiro", "3", "up", "salary", time.Date(2022, time.April, 3, 0, 0, 0, 0, time.UTC)),
	}

	list, _, err := Summarize(transactions)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "c", list[2].ID)
}

func TestSummarize_LastTransactionLabels(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "salário", "1000", "up", "salary", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx("2", "bonus", "500", "up", "salary", time.Date(2022, time.April, 13, 0, 0, 0, 0, time.UTC)),
		tx("3", "mercado", "80", "down", "purchases", time.Date(2022, time.April, 5, 0, 0, 0, 0, time.UTC)),
	}

	_, highlight, err := Summarize(transactions)
	require.NoError(t, err)

	assert.Equal(t, "Última entrada dia 13 de abril", highlight.Entries.LastTransaction)
	assert.Equal(t, "Última saída dia 5 de abril", highlight.Expensives.LastTransaction)
	assert.Equal(t, "01 a 5 de abril", highlight.Total.LastTransaction)
}

func TestSummarize_EmptyCollection(t *testing.T) {
	list, highlight, err := Summarize(nil)
	require.NoError(t, err)

	assert.Empty(t, list)
	assert.Zero(t, highlight.Entries.Total)
	assert.Zero(t, highlight.Expensives.Total)
	assert.Zero(t, highlight.Total.Total)
	assert.Equal(t, "R$ 0,00", highlight.Total.Amount)
	assert.Equal(t, NoTransactionsLabel, highlight.Entries.LastTransaction)
	assert.Equal(t, NoTransactionsLabel, highlight.Expensives.LastTransaction)
	assert.Equal(t, NoTransactionsLabel, highlight.Total.LastTransaction)
}

func TestSummarize_NoExpenses(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "salário", "1000", "up", "salary", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	_, highlight, err := Summarize(transactions)
	require.NoError(t, err)

	assert.Equal(t, NoTransactionsLabel, highlight.Expensives.LastTransaction)
	// The balance interval depends on the last expense, so it shares the sentinel.
	assert.Equal(t, NoTransactionsLabel, highlight.Total.LastTransaction)
}

func TestSummarize_NegativeBalance(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "salário", "100", "up", "salary", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx("2", "aluguel", "150", "down", "purchases", time.Date(2022, time.April, 2, 0, 0, 0, 0, time.UTC)),
	}

	_, highlight, err := Summarize(transactions)
	require.NoError(t, err)

	assert.Equal(t, -50.0, highlight.Total.Total)
	assert.Equal(t, "-R$ 50,00", highlight.Total.Amount)
}

func TestSummarize_MalformedAmount(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "ok", "100", "up", "salary", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx("2", "quebrado", "abc", "down", "food", time.Date(2022, time.April, 2, 0, 0, 0, 0, time.UTC)),
	}

	_, _, err := Summarize(transactions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"2"`)
}

func TestSummarize_UnknownType(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "estranho", "100", "sideways", "salary", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	_, _, err := Summarize(transactions)
	require.Error(t, err)
}

func TestSummarize_Idempotent(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "salário", "1000", "up", "salary", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx("2", "mercado", "80", "down", "purchases", time.Date(2022, time.April, 5, 0, 0, 0, 0, time.UTC)),
	}

	listA, highlightA, errA := Summarize(transactions)
	listB, highlightB, errB := Summarize(transactions)

	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, listA, listB)
	assert.Equal(t, highlightA, highlightB)
}
