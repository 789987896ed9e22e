package model

import "time"

// CostBasisEntry is one row of the per-(ticker, account) ledger. Rows are a
// projection of the trade set: they are rebuilt from trades whenever the
// underlying set changes and are never edited in place.
type CostBasisEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AccountID       uint      `gorm:"not null" json:"account_id"`
	TickerID        uint      `gorm:"not null" json:"ticker_id"`
	TradeID         *uint     `json:"trade_id"`
	CashFlowID      *uint     `json:"cash_flow_id"`
	TransactionDate time.Time `gorm:"type:date;not null" json:"transaction_date"`
	Description     string    `gorm:"not null" json:"description"`
	Shares          int       `gorm:"not null" json:"shares"`
	CostPerShare    float64   `gorm:"not null" json:"cost_per_share"`
	TotalAmount     float64   `gorm:"not null" json:"total_amount"`
	RunningBasis    float64   `gorm:"not null" json:"running_basis"`
	RunningShares   int       `gorm:"not null" json:"running_shares"`
	BasisPerShare   float64   `gorm:"not null" json:"basis_per_share"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CostBasisEntry) TableName() string {
	return "cost_basis"
}
