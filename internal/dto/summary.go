package dto

type SummaryResponse struct {
	TotalTrades       int     `json:"total_trades"`
	OpenTrades        int     `json:"open_trades"`
	ClosedTrades      int     `json:"closed_trades"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinningPercentage float64 `json:"winning_percentage"`
	TotalNetCredit    float64 `json:"total_net_credit"`
	DaysRemaining     int     `json:"days_remaining"`
	DaysDone          int     `json:"days_done"`
}

// ChartPoint is a single day of collected premium for the dashboard chart.
type ChartPoint struct {
	Date    string  `json:"date"`
	Premium float64 `json:"premium"`
}

type TopSymbol struct {
	Ticker               string `json:"ticker"`
	TradeCount           int    `json:"trade_count"`
	HasOpenTrades        bool   `json:"has_open_trades"`
	IsOldAssignedExpired bool   `json:"is_old_assigned_expired"`
}

type GetSummaryParam struct {
	StartDate *string
	EndDate   *string
}
