package dto

import "options-tracker/internal/model"

type CreateTradeRequest struct {
	Ticker         string  `json:"ticker" validate:"required,alphanum,max=10"`
	TradeDate      string  `json:"trade_date" validate:"required,datetime=2006-01-02"`
	ExpirationDate string  `json:"expiration_date" validate:"required,datetime=2006-01-02"`
	NumOfContracts int     `json:"num_of_contracts" validate:"required,gt=0"`
	CreditDebit    float64 `json:"credit_debit" validate:"required"`
	CurrentPrice   float64 `json:"current_price" validate:"gte=0"`
	StrikePrice    float64 `json:"strike_price" validate:"gte=0"`
	TradeType      string  `json:"trade_type"`
	AccountID      uint    `json:"account_id" validate:"required"`
	MarginPercent  float64 `json:"margin_percent" validate:"gte=0,lte=100"`
}

type UpdateTradeRequest struct {
	Ticker         *string  `json:"ticker"`
	TradeDate      *string  `json:"trade_date" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate *string  `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	NumOfContracts *int     `json:"num_of_contracts" validate:"omitempty,gt=0"`
	CreditDebit    *float64 `json:"credit_debit"`
	CurrentPrice   *float64 `json:"current_price" validate:"omitempty,gte=0"`
	StrikePrice    *float64 `json:"strike_price" validate:"omitempty,gte=0"`
	TradeType      *string  `json:"trade_type"`
}

type UpdateTradeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed assigned expired roll"`
}

// UpdateTradeFieldRequest is the inline-edit payload: one whitelisted column
// and its new value.
type UpdateTradeFieldRequest struct {
	Field string      `json:"field" validate:"required,oneof=num_of_contracts credit_debit strike_price status"`
	Value interface{} `json:"value" validate:"required"`
}

type GetTradesParam struct {
	IDs             []uint
	AccountID       *uint
	TickerID        *uint
	Statuses        []string
	ExcludeStatuses []string
	TradeTypes      []string
	ExcludeTypes    []string
	StartDate       *string
	EndDate         *string
	OrderBy         string
}

// TradeResponse is a trade row joined with its ticker and type catalogue
// entry, plus the share count the dashboard renders (contracts x 100 for
// options, contracts as-is for stock).
type TradeResponse struct {
	model.Trade
	Ticker      string  `json:"ticker"`
	CompanyName string  `json:"company_name"`
	TypeName    *string `json:"type_name"`
	TypeCode    *string `json:"type_code"`
	Shares      int     `json:"shares"`
}

// TradeFigures are the derived fields computed from a raw trade payload,
// returned to the presentation layer and persisted on the trade row.
type TradeFigures struct {
	DaysToExpiration    int      `json:"days_to_expiration"`
	TotalPremium        float64  `json:"total_premium"`
	CommissionPerShare  float64  `json:"commission_per_share"`
	NetCreditPerShare   float64  `json:"net_credit_per_share"`
	RiskCapitalPerShare *float64 `json:"risk_capital_per_share"`
	MarginCapital       *float64 `json:"margin_capital"`
	ARORC               *float64 `json:"arorc"`
	PricePerShare       float64  `json:"price_per_share"`
	TotalAmount         float64  `json:"total_amount"`
}
