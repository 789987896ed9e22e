package dto

type CreateCashFlowRequest struct {
	AccountID       uint    `json:"account_id" validate:"required"`
	TransactionDate string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	TransactionType string  `json:"transaction_type" validate:"required,oneof=DEPOSIT WITHDRAWAL PREMIUM_CREDIT PREMIUM_DEBIT BUY SELL"`
	Amount          float64 `json:"amount" validate:"required"`
	Description     string  `json:"description"`
	TradeID         *uint   `json:"trade_id"`
	TickerID        *uint   `json:"ticker_id"`
}

type GetCashFlowsParam struct {
	AccountID uint
	StartDate *string
	EndDate   *string
}

// CashFlowResponse joins the flow with account and ticker names for display.
type CashFlowResponse struct {
	ID                 uint    `json:"id"`
	AccountID          uint    `json:"account_id"`
	AccountName        string  `json:"account_name"`
	TransactionDate    string  `json:"transaction_date"`
	TransactionType    string  `json:"transaction_type"`
	Amount             float64 `json:"amount"`
	Ticker             string  `json:"ticker"`
	DisplayDescription string  `json:"display_description"`
	TradeID            *uint   `json:"trade_id"`
	TickerID           *uint   `json:"ticker_id"`
}

// BankrollSummary is the capital-at-a-glance panel: starting balance plus
// collected premiums, less margin capital tied up in open/assigned trades.
type BankrollSummary struct {
	TotalDeposits float64                   `json:"total_deposits"`
	TotalPremiums float64                   `json:"total_premiums"`
	TotalBankroll float64                   `json:"total_bankroll"`
	UsedInTrades  float64                   `json:"used_in_trades"`
	Available     float64                   `json:"available"`
	Breakdown     map[string]BankrollBucket `json:"breakdown"`
}

type BankrollBucket struct {
	Count         int     `json:"count"`
	MarginCapital float64 `json:"margin_capital"`
}

type GetBankrollSummaryParam struct {
	AccountID    uint
	StartDate    *string
	EndDate      *string
	StatusFilter *string
}
