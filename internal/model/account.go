package model

import "time"

type Account struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	AccountName     string     `gorm:"not null;uniqueIndex" json:"account_name"`
	AccountType     string     `gorm:"not null;default:PRIMARY" json:"account_type"`
	StartDate       *time.Time `gorm:"type:date" json:"start_date"`
	StartingBalance float64    `gorm:"not null;default:0" json:"starting_balance"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}
