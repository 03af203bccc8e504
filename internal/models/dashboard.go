package models

// DashboardView is the read-only projection of an account shown on the dashboard.
// swagger:model DashboardView
type DashboardView struct {
	Balance       float64       `json:"balance"`
	Profit        float64       `json:"profit"`
	ActiveCount   int           `json:"active_count"`
	TotalDeposit  float64       `json:"total_deposit"`
	TotalWithdraw float64       `json:"total_withdraw"`
	Recent        []LedgerEntry `json:"recent"`
}
