package model

import "time"

type Ticker struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Ticker      string    `gorm:"not null;uniqueIndex" json:"ticker"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	Sector      *string   `json:"sector"`
	MarketCap   *float64  `json:"market_cap"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Ticker) TableName() string {
	return "tickers"
}
