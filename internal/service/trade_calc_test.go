package service

import (
	"options-tracker/internal/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTradeFigures_PutCredit(t *testing.T) {
	figures, err := DeriveTradeFigures(dto.TradeTypeROCTPut,
		day("2025-01-02"), day("2025-02-01"),
		1, 2.50, 100.00, 100, 0.05)
	require.NoError(t, err)

	assert.Equal(t, 30, figures.DaysToExpiration)
	assert.Equal(t, 250.00, figures.TotalPremium)
	assert.Equal(t, 0.05, figures.CommissionPerShare)
	assert.InDelta(t, 2.45, figures.NetCreditPerShare, 1e-9)

	require.NotNil(t, figures.RiskCapitalPerShare)
	assert.InDelta(t, 97.55, *figures.RiskCapitalPerShare, 1e-9)

	require.NotNil(t, figures.MarginCapital)
	assert.Equal(t, 9755.00, *figures.MarginCapital)

	// (365/30) * (2.45/97.55) * 100, rounded to one decimal
	require.NotNil(t, figures.ARORC)
	assert.InDelta(t, 30.6, *figures.ARORC, 1e-9)
}

func TestDeriveTradeFigures_MarginPercentScalesARORC(t *testing.T) {
	full, err := DeriveTradeFigures(dto.TradeTypeROCTPut,
		day("2025-01-02"), day("2025-02-01"),
		1, 2.50, 100.00, 100, 0.05)
	require.NoError(t, err)

	half, err := DeriveTradeFigures(dto.TradeTypeROCTPut,
		day("2025-01-02"), day("2025-02-01"),
		1, 2.50, 100.00, 50, 0.05)
	require.NoError(t, err)

	require.NotNil(t, full.ARORC)
	require.NotNil(t, half.ARORC)
	// Halving the margin requirement doubles the return on capital,
	// give or take the one-decimal rounding on each side.
	assert.InDelta(t, *full.ARORC*2, *half.ARORC, 0.2)

	// Margin capital itself is unaffected by the margin percent.
	assert.Equal(t, *full.MarginCapital, *half.MarginCapital)
}

func TestDeriveTradeFigures_NetCreditIsExact(t *testing.T) {
	figures, err := DeriveTradeFigures(dto.TradeTypeROP,
		day("2025-01-02"), day("2025-01-17"),
		10, 0.66, 25.00, 100, 0.0066)
	require.NoError(t, err)

	// credit - commission with no intermediate rounding
	assert.InDelta(t, 0.6534, figures.NetCreditPerShare, 1e-9)

	require.NotNil(t, figures.MarginCapital)
	// (25 - 0.6534) * 10 * 100, rounded at the end
	assert.Equal(t, 24346.60, *figures.MarginCapital)
}

func TestDeriveTradeFigures_CallHasNoRiskCapital(t *testing.T) {
	figures, err := DeriveTradeFigures(dto.TradeTypeROCTCall,
		day("2025-01-02"), day("2025-02-01"),
		2, 1.25, 80.00, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, 250.00, figures.TotalPremium)
	assert.Nil(t, figures.RiskCapitalPerShare)
	assert.Nil(t, figures.MarginCapital)
	assert.Nil(t, figures.ARORC)
}

func TestDeriveTradeFigures_Stock(t *testing.T) {
	figures, err := DeriveTradeFigures(dto.TradeTypeBTO,
		day("2025-01-02"), day("2025-01-02"),
		100, 10.50, 0, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, figures.DaysToExpiration)
	assert.Equal(t, 1050.00, figures.TotalPremium)
	assert.Equal(t, 10.50, figures.PricePerShare)
	assert.Equal(t, 1050.00, figures.TotalAmount)
	assert.Nil(t, figures.RiskCapitalPerShare)
	assert.Nil(t, figures.MarginCapital)
	assert.Nil(t, figures.ARORC)
}

func TestDeriveTradeFigures_NoARORCWhenExpired(t *testing.T) {
	// Same-day expiration: DTE 0, no annualized return.
	figures, err := DeriveTradeFigures(dto.TradeTypeROCTPut,
		day("2025-01-02"), day("2025-01-02"),
		1, 1.00, 50.00, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, figures.DaysToExpiration)
	require.NotNil(t, figures.MarginCapital)
	assert.Nil(t, figures.ARORC)
}

func TestDeriveTradeFigures_RejectsNonPositiveContracts(t *testing.T) {
	_, err := DeriveTradeFigures(dto.TradeTypeROCTPut,
		day("2025-01-02"), day("2025-02-01"),
		0, 1.00, 50.00, 100, 0)
	assert.Error(t, err)
}
