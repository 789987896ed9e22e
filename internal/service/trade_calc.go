package service

import (
	"fmt"
	"options-tracker/internal/dto"
	"options-tracker/pkg/utils"
	"time"
)

const daysPerYear = 365.0

// DeriveTradeFigures computes every derived column of a trade from its raw
// payload and the commission rate in effect on the trade date.
//
// net_credit_per_share is exact arithmetic (credit minus commission, no
// rounding) because it feeds risk capital and margin capital; only the values
// that land in the database or on the dashboard are rounded. Risk capital and
// ARORC exist only for put-style option sells, where assignment risk is the
// strike paid for the shares.
func DeriveTradeFigures(tradeType string, tradeDate, expirationDate time.Time,
	contracts int, creditDebit, strikePrice, marginPercent, commissionRate float64) (dto.TradeFigures, error) {

	if contracts <= 0 {
		return dto.TradeFigures{}, fmt.Errorf("num_of_contracts must be positive, got %d", contracts)
	}

	figures := dto.TradeFigures{
		DaysToExpiration:   utils.CalendarDaysBetween(tradeDate, expirationDate),
		CommissionPerShare: commissionRate,
	}

	if dto.IsStockType(tradeType) {
		// Stock rows reuse the premium columns for price and notional.
		figures.TotalPremium = utils.RoundCurrency(creditDebit * float64(contracts))
		figures.PricePerShare = creditDebit
		figures.TotalAmount = figures.TotalPremium
		figures.NetCreditPerShare = creditDebit - commissionRate
		return figures, nil
	}

	// Option rows leave the stock-only price/amount columns at zero.
	netCredit := creditDebit - commissionRate
	figures.NetCreditPerShare = netCredit
	figures.TotalPremium = utils.RoundCurrency(creditDebit * float64(contracts) * dto.SharesPerContract)

	if !dto.IsPutStyle(tradeType) || strikePrice <= 0 {
		return figures, nil
	}

	riskCapital := strikePrice - netCredit
	figures.RiskCapitalPerShare = utils.ToPointer(utils.RoundCurrency(riskCapital))

	// Margin capital uses the unrounded risk capital so contract-level
	// amounts don't accumulate per-share rounding error.
	marginCapital := utils.RoundCurrency(riskCapital * float64(contracts) * dto.SharesPerContract)
	figures.MarginCapital = utils.ToPointer(marginCapital)

	if figures.DaysToExpiration > 0 && riskCapital > 0 && netCredit > 0 && marginPercent > 0 {
		marginAdjusted := riskCapital * marginPercent / 100
		arorc := (daysPerYear / float64(figures.DaysToExpiration)) * (netCredit / marginAdjusted) * 100
		figures.ARORC = utils.ToPointer(utils.RoundRate(arorc))
	}

	return figures, nil
}
