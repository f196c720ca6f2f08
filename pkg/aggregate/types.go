package aggregate

// NoTransactionsLabel is the sentinel shown on a highlight card whose flow
// direction has no transactions yet.
const NoTransactionsLabel = "Não há transações"

// DisplayTransaction is a ledger record with amount and date already
// rewritten into their pt-BR display strings.
type DisplayTransaction struct {
	ID       string
	Name     string
	Amount   string
	Type     string
	Category string
	Date     string
}

type HighlightCard struct {
	Total           float64
	Amount          string
	LastTransaction string
}

// Highlight carries the three aggregate rows of the main screen.
type Highlight struct {
	Entries    HighlightCard
	Expensives HighlightCard
	Total      HighlightCard
}

// CategoryShare is one slice of a month's expense breakdown.
type CategoryShare struct {
	Key            string
	Name           string
	Total          float64
	TotalFormatted string
	Color          string
	Percent        string
}
