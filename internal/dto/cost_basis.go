package dto

// CostBasisRow is one ledger line as rendered by the dashboard.
type CostBasisRow struct {
	ID                   uint    `json:"id"`
	TradeDate            string  `json:"trade_date"`
	TradeDescription     string  `json:"trade_description"`
	Shares               int     `json:"shares"`
	CostPerShare         float64 `json:"cost_per_share"`
	Amount               float64 `json:"amount"`
	RunningBasis         float64 `json:"running_basis"`
	RunningBasisPerShare float64 `json:"running_basis_per_share"`
	RunningShares        int     `json:"running_shares"`
	Status               *string `json:"status"`
}

// TickerCostBasis groups a ticker's ledger with the totals carried by its
// last row.
type TickerCostBasis struct {
	Ticker                 string         `json:"ticker"`
	CompanyName            string         `json:"company_name"`
	TotalShares            int            `json:"total_shares"`
	TotalCostBasis         float64        `json:"total_cost_basis"`
	TotalCostBasisPerShare float64        `json:"total_cost_basis_per_share"`
	Trades                 []CostBasisRow `json:"trades"`
}

type GetCostBasisParam struct {
	Ticker    *string
	AccountID *uint
}

// CostBasisJoined is a ledger row joined with its ticker and, when the row
// came from a trade, that trade's current status.
type CostBasisJoined struct {
	ID              uint    `json:"id"`
	AccountID       uint    `json:"account_id"`
	TickerID        uint    `json:"ticker_id"`
	TradeID         *uint   `json:"trade_id"`
	TransactionDate string  `json:"transaction_date"`
	Description     string  `json:"description"`
	Shares          int     `json:"shares"`
	CostPerShare    float64 `json:"cost_per_share"`
	TotalAmount     float64 `json:"total_amount"`
	RunningBasis    float64 `json:"running_basis"`
	RunningShares   int     `json:"running_shares"`
	BasisPerShare   float64 `json:"basis_per_share"`
	Ticker          string  `json:"ticker"`
	CompanyName     string  `json:"company_name"`
	Status          *string `json:"status"`
}
