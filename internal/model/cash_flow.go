package model

import "time"

type CashFlow struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AccountID       uint      `gorm:"not null" json:"account_id"`
	TransactionDate time.Time `gorm:"type:date;not null" json:"transaction_date"`
	TransactionType string    `gorm:"not null" json:"transaction_type"`
	Amount          float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description     string    `json:"description"`
	TradeID         *uint     `json:"trade_id"`
	TickerID        *uint     `json:"ticker_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CashFlow) TableName() string {
	return "cash_flows"
}
