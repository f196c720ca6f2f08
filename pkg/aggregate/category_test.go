package aggregate

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"GoFinance/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeByCategory_SingleCategory(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "salário", "100", "up", "salary", time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx("2", "almoço", "40", "down", "food", time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC)),
	}

	shares, err := SummarizeByCategory(transactions, MonthWindow{Month: time.April, Year: 2023})
	require.NoError(t, err)

	require.Len(t, shares, 1)
	assert.Equal(t, "food", shares[0].Key)
	assert.Equal(t, "Alimentação", shares[0].Name)
	assert.Equal(t, 40.0, shares[0].Total)
	assert.Equal(t, "R$ 40,00", shares[0].TotalFormatted)
	assert.Equal(t, "#FF872C", shares[0].Color)
	assert.Equal(t, "100%", shares[0].Percent)
}

func TestSummarizeByCategory_CatalogOrderAndOmission(t *testing.T) {
	april := time.Date(2023, time.April, 15, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		tx("1", "cinema", "30", "down", "leisure", april),
		tx("2", "mercado", "70", "down", "purchases", april),
		tx("3", "curso", "0", "down", "studies", april),
		tx("4", "salário", "900", "up", "salary", april),
	}

	shares, err := SummarizeByCategory(transactions, WindowOf(april))
	require.NoError(t, err)

	// purchases precedes leisure in the catalog regardless of data order,
	// and the zero-sum studies entry is omitted.
	require.Len(t, shares, 2)
	assert.Equal(t, "purchases", shares[0].Key)
	assert.Equal(t, "leisure", shares[1].Key)
	assert.Equal(t, "70%", shares[0].Percent)
	assert.Equal(t, "30%", shares[1].Percent)
}

func TestSummarizeByCategory_ExactMonthMatch(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "março", "10", "down", "food", time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC)),
		tx("2", "abril", "20", "down", "food", time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx("3", "abril de outro ano", "40", "down", "food", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	shares, err := SummarizeByCategory(transactions, MonthWindow{Month: time.April, Year: 2023})
	require.NoError(t, err)

	require.Len(t, shares, 1)
	assert.Equal(t, 20.0, shares[0].Total)
}

func TestSummarizeByCategory_EmptyWindow(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "salário", "900", "up", "salary", time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	shares, err := SummarizeByCategory(transactions, MonthWindow{Month: time.April, Year: 2023})
	require.NoError(t, err)
	assert.Empty(t, shares)

	// No percent string may carry NaN or Inf when the month has no expenses.
	for _, share := range shares {
		assert.NotContains(t, share.Percent, "NaN")
		assert.NotContains(t, share.Percent, "Inf")
	}
}

func TestSummarizeByCategory_PercentsSumToRoughly100(t *testing.T) {
	april := time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		tx("1", "a", "33.33", "down", "food", april),
		tx("2", "b", "33.33", "down", "car", april),
		tx("3", "c", "33.34", "down", "leisure", april),
	}

	shares, err := SummarizeByCategory(transactions, WindowOf(april))
	require.NoError(t, err)
	require.Len(t, shares, 3)

	var totalPercent int
	for _, share := range shares {
		value, convErr := strconv.Atoi(strings.TrimSuffix(share.Percent, "%"))
		require.NoError(t, convErr)
		totalPercent += value
	}

	// Integer rounding may shift the sum by one point per emitted entry.
	assert.InDelta(t, 100, totalPercent, float64(len(shares)))
}

func TestSummarizeByCategory_MalformedAmount(t *testing.T) {
	april := time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		tx("1", "quebrado", "not-a-number", "down", "food", april),
	}

	_, err := SummarizeByCategory(transactions, WindowOf(april))
	require.Error(t, err)
}

func TestMonthWindow_Navigation(t *testing.T) {
	window := MonthWindow{Month: time.December, Year: 2022}

	assert.Equal(t, MonthWindow{Month: time.January, Year: 2023}, window.Next())
	assert.Equal(t, MonthWindow{Month: time.November, Year: 2022}, window.Prev())
	assert.Equal(t, window, window.Next().Prev())
	assert.Equal(t, window, window.Prev().Next())
}

func TestMonthWindow_NextPrevRoundTripBreakdown(t *testing.T) {
	april := time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		tx("1", "mercado", "55", "down", "purchases", april),
		tx("2", "cinema", "45", "down", "leisure", april),
	}

	window := WindowOf(april)
	original, err := SummarizeByCategory(transactions, window)
	require.NoError(t, err)

	roundTrip, err := SummarizeByCategory(transactions, window.Next().Prev())
	require.NoError(t, err)

	assert.Equal(t, original, roundTrip)
}

func TestMonthWindow_Label(t *testing.T) {
	assert.Equal(t, "abril, 2023", MonthWindow{Month: time.April, Year: 2023}.Label())
}

func TestMonthWindow_Valid(t *testing.T) {
	assert.True(t, MonthWindow{Month: time.April, Year: 2023}.Valid())
	assert.False(t, MonthWindow{Month: 0, Year: 2023}.Valid())
	assert.False(t, MonthWindow{Month: 13, Year: 2023}.Valid())
	assert.False(t, MonthWindow{Month: time.April, Year: 0}.Valid())
}
