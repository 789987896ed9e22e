package model

import "time"

// Commission is an account-scoped, time-effective per-share rate. The rate in
// effect for a trade is the row with the latest effective_date on or before
// the trade date.
type Commission struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AccountID      uint      `gorm:"not null" json:"account_id"`
	CommissionRate float64   `gorm:"not null" json:"commission_rate"`
	EffectiveDate  time.Time `gorm:"type:date;not null" json:"effective_date"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Commission) TableName() string {
	return "commissions"
}
