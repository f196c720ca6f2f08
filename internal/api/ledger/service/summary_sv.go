package ledgerService

import (
	"GoFinance/internal/api/ledger"
	"GoFinance/pkg/aggregate"

	"golang.org/x/net/context"
)

// CategorySummary computes the expense-by-category breakdown for one calendar
// month. A month with no expenses yields an empty category list, never an
// error.
func (s *ledgerService) CategorySummary(ctx context.Context, ownerID string, window aggregate.MonthWindow) (ledger.CategorySummaryResponse, error) {
	if !window.Valid() {
		return ledger.CategorySummaryResponse{}, ledger.ErrInvalidMonthWindow
	}

	transactions, err := s.repository.GetCollection(ctx, ownerID)
	if err != nil {
		return ledger.CategorySummaryResponse{}, err
	}

	shares, err := aggregate.SummarizeByCategory(transactions, window)
	if err != nil {
		s.log.Errorf("failed to summarize categories for user %s: %v", ownerID, err)
		return ledger.CategorySummaryResponse{}, ledger.ErrLoadTransactions
	}

	response := ledger.CategorySummaryResponse{
		Month:      window.Label(),
		Categories: make([]ledger.CategoryShareResponse, 0, len(shares)),
	}

	for _, share := range shares {
		response.Categories = append(response.Categories, ledger.CategoryShareResponse{
			Key:            share.Key,
			Name:           share.Name,
			Total:          share.Total,
			TotalFormatted: share.TotalFormatted,
			Color:          share.Color,
			Percent:        share.Percent,
		})
	}

	return response, nil
}
