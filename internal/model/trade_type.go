package model

import "time"

type TradeType struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	TypeCode           string    `gorm:"not null;uniqueIndex" json:"type_code"`
	TypeName           string    `gorm:"not null" json:"type_name"`
	Description        string    `json:"description"`
	Category           string    `gorm:"not null" json:"category"`
	IsCredit           bool      `gorm:"not null;default:false" json:"is_credit"`
	RequiresExpiration bool      `gorm:"not null;default:true" json:"requires_expiration"`
	RequiresStrike     bool      `gorm:"not null;default:true" json:"requires_strike"`
	RequiresContracts  bool      `gorm:"not null;default:true" json:"requires_contracts"`
	RequiresShares     bool      `gorm:"not null;default:false" json:"requires_shares"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TradeType) TableName() string {
	return "trade_types"
}
