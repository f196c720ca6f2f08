package ledger

type CreateTransactionRequest struct {
	Name     string `json:"name" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

type TransactionResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

type HighlightCardResponse struct {
	Total           float64 `json:"total"`
	Amount          string  `json:"amount"`
	LastTransaction string  `json:"last_transaction"`
}

type HighlightResponse struct {
	Entries    HighlightCardResponse `json:"entries"`
	Expensives HighlightCardResponse `json:"expensives"`
	Total      HighlightCardResponse `json:"total"`
}

type DashboardResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Highlight    HighlightResponse     `json:"highlight"`
}

type CategoryShareResponse struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"total_formatted"`
	Color          string  `json:"color"`
	Percent        string  `json:"percent"`
}

type CategorySummaryResponse struct {
	Month      string                  `json:"month"`
	Categories []CategoryShareResponse `json:"categories"`
}

type CategoryResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type ExportStatementResponse struct {
	Month       string `json:"month"`
	DownloadURL string `json:"download_url"`
}
