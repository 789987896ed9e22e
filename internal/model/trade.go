package model

import "time"

type Trade struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	AccountID           uint      `gorm:"not null" json:"account_id"`
	TickerID            uint      `gorm:"not null" json:"ticker_id"`
	TradeDate           time.Time `gorm:"type:date;not null" json:"trade_date"`
	ExpirationDate      time.Time `gorm:"type:date;not null" json:"expiration_date"`
	NumOfContracts      int       `gorm:"not null" json:"num_of_contracts"`
	CreditDebit         float64   `gorm:"not null" json:"credit_debit"`
	TotalPremium        float64   `gorm:"not null" json:"total_premium"`
	DaysToExpiration    int       `gorm:"not null" json:"days_to_expiration"`
	CurrentPrice        float64   `gorm:"not null" json:"current_price"`
	StrikePrice         float64   `gorm:"not null" json:"strike_price"`
	Status              string    `gorm:"not null;default:open" json:"status"`
	TradeType           string    `gorm:"not null" json:"trade_type"`
	TradeTypeID         *uint     `json:"trade_type_id"`
	CommissionPerShare  float64   `gorm:"not null;default:0" json:"commission_per_share"`
	NetCreditPerShare   float64   `gorm:"not null;default:0" json:"net_credit_per_share"`
	RiskCapitalPerShare *float64  `json:"risk_capital_per_share"`
	MarginCapital       *float64  `json:"margin_capital"`
	MarginPercent       float64   `gorm:"not null;default:100" json:"margin_percent"`
	ARORC               *float64  `gorm:"column:arorc" json:"arorc"`
	PricePerShare       float64   `gorm:"not null;default:0" json:"price_per_share"`
	TotalAmount         float64   `gorm:"not null;default:0" json:"total_amount"`
	TradeParentID       *uint     `json:"trade_parent_id"`
	Ticker              Ticker    `gorm:"foreignKey:TickerID;references:ID" json:"-"`
	Account             Account   `gorm:"foreignKey:AccountID;references:ID" json:"-"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

type TradeStatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TradeID   uint      `gorm:"not null" json:"trade_id"`
	OldStatus *string   `json:"old_status"`
	NewStatus string    `gorm:"not null" json:"new_status"`
	ChangedAt time.Time `gorm:"autoCreateTime" json:"changed_at"`
}

func (TradeStatusHistory) TableName() string {
	return "trade_status_history"
}
