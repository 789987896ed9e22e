package dto

import "strings"

// Trade statuses.
const (
	StatusOpen     = "open"
	StatusClosed   = "closed"
	StatusAssigned = "assigned"
	StatusExpired  = "expired"
	StatusRoll     = "roll"
)

// Trade type codes. Options trades may carry a ticker prefix in the stored
// trade_type column ("AAPL ROCT PUT"), so classification matches on
// substrings rather than equality.
const (
	TradeTypeBTO      = "BTO"
	TradeTypeSTC      = "STC"
	TradeTypeROCTPut  = "ROCT PUT"
	TradeTypeROCTCall = "ROCT CALL"
	TradeTypeROP      = "ROP"
	TradeTypeROC      = "ROC"
)

// Cash flow transaction types.
const (
	CashFlowDeposit       = "DEPOSIT"
	CashFlowWithdrawal    = "WITHDRAWAL"
	CashFlowPremiumCredit = "PREMIUM_CREDIT"
	CashFlowPremiumDebit  = "PREMIUM_DEBIT"
	CashFlowBuy           = "BUY"
	CashFlowSell          = "SELL"
)

// SharesPerContract is the standard US option contract multiplier.
const SharesPerContract = 100

func ValidStatuses() []string {
	return []string{StatusOpen, StatusClosed, StatusAssigned, StatusExpired, StatusRoll}
}

func ValidCashFlowTypes() []string {
	return []string{CashFlowDeposit, CashFlowWithdrawal, CashFlowPremiumCredit,
		CashFlowPremiumDebit, CashFlowBuy, CashFlowSell}
}

// IsStockType reports whether the trade type is a plain share purchase/sale
// rather than an option contract.
func IsStockType(tradeType string) bool {
	return tradeType == TradeTypeBTO || tradeType == TradeTypeSTC
}

func IsOptionType(tradeType string) bool {
	return !IsStockType(tradeType)
}

// IsPutStyle reports whether the trade is a put-flavored option sell
// (ROCT PUT, ROP, or anything carrying PUT). Risk capital is only defined
// for these.
func IsPutStyle(tradeType string) bool {
	if IsStockType(tradeType) {
		return false
	}
	upper := strings.ToUpper(tradeType)
	return strings.Contains(upper, "PUT") || strings.Contains(upper, "ROP")
}

// IsCallStyle is the complement for call-flavored sells. "ROC" must match
// exactly: as a substring it would also hit every ROCT type.
func IsCallStyle(tradeType string) bool {
	if IsStockType(tradeType) {
		return false
	}
	upper := strings.ToUpper(tradeType)
	return strings.Contains(upper, "CALL") || upper == TradeTypeROC
}

// TradeShares is the share count a trade represents: contracts x 100 for
// options, the raw count for stock trades.
func TradeShares(tradeType string, contracts int) int {
	if IsStockType(tradeType) {
		return contracts
	}
	return contracts * SharesPerContract
}

// IsCreditType reports whether opening the trade collects premium and should
// produce a PREMIUM_CREDIT cash flow.
func IsCreditType(tradeType string) bool {
	upper := strings.ToUpper(tradeType)
	return strings.Contains(upper, "ROCT") ||
		strings.Contains(upper, "ROP") ||
		strings.Contains(upper, "ROC")
}
