package types

import "time"

// Lead is a synthetic CRM lead shown on the dashboard stream. Leads are
// generated locally; they never round-trip through the backend.
type Lead struct {
	ID          string
	Name        string
	Channel     string
	Interest    string
	BudgetCents int
	CreatedAt   time.Time
}
