package domain

import "time"

// Member takes part in a shared tab. Name is what expenses refer to.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Expense is money one member paid for the group.
type Expense struct {
	ID        string    `json:"id"`
	PayerName string    `json:"payerName"`
	Amount    float64   `json:"amount"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transfer settles part of a debt: From pays To.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// TabSummary is the state of a tab before settling.
type TabSummary struct {
	Total    float64            `json:"total"`
	Share    float64            `json:"share"`
	Balances map[string]float64 `json:"balances"`
	Orphans  []Expense          `json:"orphans,omitempty"`
}
