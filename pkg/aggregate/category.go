package aggregate

import (
	"GoFinance/internal/entity"
	"GoFinance/pkg/format"
	"fmt"
	"math"
)

// SummarizeByCategory computes the expense breakdown of one calendar month.
// Categories are visited in catalog order and a category with no expenses in
// the window is omitted entirely. A month without expenses yields an empty
// breakdown, so no percent is ever computed against a zero total.
func SummarizeByCategory(transactions []entity.Transaction, window MonthWindow) ([]CategoryShare, error) {
	var expensives []entity.Transaction
	for _, transaction := range transactions {
		if entity.TransactionType(transaction.Type) != entity.TransactionTypeExpense {
			continue
		}
		if !window.Contains(transaction.Date) {
			continue
		}
		expensives = append(expensives, transaction)
	}

	var monthExpenseTotal float64
	amounts := make(map[string]float64, len(entity.Categories))
	for _, expensive := range expensives {
		amount, err := expensive.ParseAmount()
		if err != nil {
			return nil, fmt.Errorf("parse amount of transaction %q: %w", expensive.ID, err)
		}
		monthExpenseTotal += amount
		amounts[expensive.Category] += amount
	}

	shares := make([]CategoryShare, 0, len(entity.Categories))
	for _, category := range entity.Categories {
		categorySum := amounts[category.Key]
		if categorySum <= 0 {
			continue
		}

		percent := int(math.Round(categorySum / monthExpenseTotal * 100))

		shares = append(shares, CategoryShare{
			Key:            category.Key,
			Name:           category.Name,
			Total:          categorySum,
			TotalFormatted: format.Currency(categorySum),
			Color:          category.Color,
			Percent:        fmt.Sprintf("%d%%", percent),
		})
	}

	return shares, nil
}
