package ledger

import "GoFinance/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrNameRequired           = response.NewError(400, "transaction name is required")
	ErrInvalidAmount          = response.NewError(400, "transaction amount must be a positive number")
	ErrTypeNotSelected        = response.NewError(400, "transaction type must be selected")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrCategoryNotSelected    = response.NewError(400, "transaction category must be selected")
	ErrInvalidCategory        = response.NewError(400, "unknown transaction category")
	ErrInvalidMonthWindow     = response.NewError(400, "invalid month or year")
	ErrCreateTransaction      = response.NewError(500, "failed to register transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
	ErrLoadTransactions       = response.NewError(500, "failed to load transactions")
	ErrExportStatement        = response.NewError(500, "failed to export statement")
)
