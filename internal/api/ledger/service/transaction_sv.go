package ledgerService

import (
	"GoFinance/internal/api/ledger"
	"GoFinance/internal/entity"
	"GoFinance/pkg/aggregate"
	"GoFinance/pkg/amqp"
	"time"

	"golang.org/x/net/context"
)

// CreateTransaction validates the submitted fields, stamps the record with a
// fresh id and the registration instant, and appends it to the user's
// collection. Validation failures never touch storage.
func (s *ledgerService) CreateTransaction(ctx context.Context, ownerID string, request ledger.CreateTransactionRequest) (entity.Transaction, error) {
	transaction := entity.Transaction{
		ID:       s.utils.NewTransactionID(),
		Name:     request.Name,
		Amount:   request.Amount,
		Type:     request.Type,
		Category: request.Category,
		Date:     time.Now(),
	}

	if err := transaction.Validate(); err != nil {
		return entity.Transaction{}, err
	}

	if err := s.repository.Append(ctx, ownerID, transaction); err != nil {
		return entity.Transaction{}, err
	}

	s.publishEvent(ctx, amqp.ActionTransactionCreated, ownerID, transaction.ID)

	return transaction, nil
}

// Dashboard returns the user's full statement in registration order plus the
// three highlight cards.
func (s *ledgerService) Dashboard(ctx context.Context, ownerID string) (ledger.DashboardResponse, error) {
	transactions, err := s.repository.GetCollection(ctx, ownerID)
	if err != nil {
		return ledger.DashboardResponse{}, err
	}

	display, highlight, err := aggregate.Summarize(transactions)
	if err != nil {
		s.log.Errorf("failed to summarize transactions for user %s: %v", ownerID, err)
		return ledger.DashboardResponse{}, ledger.ErrLoadTransactions
	}

	response := ledger.DashboardResponse{
		Transactions: make([]ledger.TransactionResponse, 0, len(display)),
		Highlight: ledger.HighlightResponse{
			Entries:    highlightCardResponse(highlight.Entries),
			Expensives: highlightCardResponse(highlight.Expensives),
			Total:      highlightCardResponse(highlight.Total),
		},
	}

	for _, transaction := range display {
		response.Transactions = append(response.Transactions, ledger.TransactionResponse{
			ID:       transaction.ID,
			Name:     transaction.Name,
			Amount:   transaction.Amount,
			Type:     transaction.Type,
			Category: transaction.Category,
			Date:     transaction.Date,
		})
	}

	return response, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if err := s.repository.Remove(ctx, ownerID, transactionID); err != nil {
		return err
	}

	s.publishEvent(ctx, amqp.ActionTransactionDeleted, ownerID, transactionID)

	return nil
}

func (s *ledgerService) ListCategories() []ledger.CategoryResponse {
	categories := make([]ledger.CategoryResponse, 0, len(entity.Categories))
	for _, category := range entity.Categories {
		categories = append(categories, ledger.CategoryResponse{
			Key:   category.Key,
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
		})
	}
	return categories
}

// publishEvent notifies downstream consumers. Delivery is best effort: a
// broker failure is logged and never fails the request that triggered it.
func (s *ledgerService) publishEvent(ctx context.Context, action string, ownerID string, transactionID string) {
	event := amqp.NewTransactionEvent(action, ownerID, transactionID)

	if err := s.publisher.PublishTransactionEvent(ctx, event); err != nil {
		s.log.Warnf("failed to publish %s event for transaction %s: %v", action, transactionID, err)
	}
}

func highlightCardResponse(card aggregate.HighlightCard) ledger.HighlightCardResponse {
	return ledger.HighlightCardResponse{
		Total:           card.Total,
		Amount:          card.Amount,
		LastTransaction: card.LastTransaction,
	}
}
