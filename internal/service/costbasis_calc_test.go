package service

import (
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func stockTrade(id uint, tradeType string, date string, contracts int, price float64) model.Trade {
	return model.Trade{
		ID:             id,
		TradeDate:      day(date),
		NumOfContracts: contracts,
		CreditDebit:    price,
		Status:         dto.StatusOpen,
		TradeType:      tradeType,
		Ticker:         model.Ticker{Ticker: "AAPL"},
	}
}

func optionTrade(id uint, tradeType, status string, tradeDate, expiration string, contracts int, credit, strike float64) model.Trade {
	return model.Trade{
		ID:             id,
		TradeDate:      day(tradeDate),
		ExpirationDate: day(expiration),
		NumOfContracts: contracts,
		CreditDebit:    credit,
		StrikePrice:    strike,
		Status:         status,
		TradeType:      tradeType,
		Ticker:         model.Ticker{Ticker: "AAPL"},
	}
}

func TestBuildCostBasisLedger_StockBuyThenSell(t *testing.T) {
	trades := []model.Trade{
		stockTrade(1, dto.TradeTypeBTO, "2025-01-02", 100, 10.00),
		stockTrade(2, dto.TradeTypeSTC, "2025-02-10", 50, 12.00),
	}

	entries, err := BuildCostBasisLedger(trades)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	buy := entries[0]
	assert.Equal(t, 100, buy.Shares)
	assert.Equal(t, 1000.00, buy.TotalAmount)
	assert.Equal(t, 1000.00, buy.RunningBasis)
	assert.Equal(t, 100, buy.RunningShares)
	assert.Equal(t, 10.00, buy.BasisPerShare)

	sell := entries[1]
	assert.Equal(t, -50, sell.Shares)
	assert.Equal(t, -600.00, sell.TotalAmount)
	assert.Equal(t, 400.00, sell.RunningBasis)
	assert.Equal(t, 50, sell.RunningShares)
	assert.Equal(t, 8.00, sell.BasisPerShare)
}

func TestBuildCostBasisLedger_OptionPremiumReducesBasis(t *testing.T) {
	trades := []model.Trade{
		optionTrade(1, "AAPL ROCT PUT", dto.StatusOpen, "2025-01-02", "2025-01-17", 2, 1.50, 50),
	}

	entries, err := BuildCostBasisLedger(trades)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	premium := entries[0]
	assert.Equal(t, 0, premium.Shares)
	assert.Equal(t, -300.00, premium.TotalAmount)
	assert.Equal(t, -300.00, premium.RunningBasis)
	assert.Equal(t, 0, premium.RunningShares)
	// With no shares held the running basis itself is carried.
	assert.Equal(t, -300.00, premium.BasisPerShare)
	assert.Equal(t, "SELL -2 AAPL 100 17-JAN-25 50 PUT @1.5", premium.Description)
}

func TestBuildCostBasisLedger_PutAssignmentBuysShares(t *testing.T) {
	trades := []model.Trade{
		optionTrade(1, "AAPL ROCT PUT", dto.StatusAssigned, "2025-01-02", "2025-01-17", 2, 1.50, 45),
	}

	entries, err := BuildCostBasisLedger(trades)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assigned := entries[1]
	assert.Equal(t, "ASSIGNED 17-JAN-25 PUT", assigned.Description)
	assert.Equal(t, day("2025-01-17"), assigned.TransactionDate)
	assert.Equal(t, 200, assigned.Shares)
	assert.Equal(t, 45.00, assigned.CostPerShare)
	assert.Equal(t, 9000.00, assigned.TotalAmount)
	assert.Equal(t, 8700.00, assigned.RunningBasis)
	assert.Equal(t, 200, assigned.RunningShares)
	assert.Equal(t, 43.50, assigned.BasisPerShare)
}

func TestBuildCostBasisLedger_CallAssignmentDeliversShares(t *testing.T) {
	trades := []model.Trade{
		stockTrade(1, dto.TradeTypeBTO, "2025-01-02", 100, 40.00),
		optionTrade(2, "AAPL ROCT CALL", dto.StatusAssigned, "2025-01-10", "2025-01-31", 1, 2.00, 50),
	}

	entries, err := BuildCostBasisLedger(trades)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assigned := entries[2]
	assert.Equal(t, "ASSIGNED 31-JAN-25 CALL", assigned.Description)
	assert.Equal(t, -100, assigned.Shares)
	assert.Equal(t, -5000.00, assigned.TotalAmount)
	// 4000 buy - 200 premium - 5000 delivery
	assert.Equal(t, -1200.00, assigned.RunningBasis)
	assert.Equal(t, 0, assigned.RunningShares)
	assert.Equal(t, -1200.00, assigned.BasisPerShare)
}

func TestBuildCostBasisLedger_OrderIsDeterministic(t *testing.T) {
	first := stockTrade(1, dto.TradeTypeBTO, "2025-03-01", 10, 5.00)
	second := stockTrade(2, dto.TradeTypeBTO, "2025-03-01", 20, 6.00)

	forward, err := BuildCostBasisLedger([]model.Trade{first, second})
	require.NoError(t, err)
	reversed, err := BuildCostBasisLedger([]model.Trade{second, first})
	require.NoError(t, err)

	require.Len(t, forward, 2)
	require.Len(t, reversed, 2)
	// Same date ties break on trade id regardless of input order.
	for i := range forward {
		assert.Equal(t, forward[i].TradeID, reversed[i].TradeID)
		assert.Equal(t, forward[i].RunningBasis, reversed[i].RunningBasis)
		assert.Equal(t, forward[i].RunningShares, reversed[i].RunningShares)
	}
	assert.Equal(t, uint(1), *forward[0].TradeID)
	assert.Equal(t, uint(2), *forward[1].TradeID)
}

func TestBuildCostBasisLedger_RunningBasisIsSumOfAmounts(t *testing.T) {
	trades := []model.Trade{
		stockTrade(1, dto.TradeTypeBTO, "2025-01-02", 100, 10.00),
		optionTrade(2, "AAPL ROCT PUT", dto.StatusExpired, "2025-01-05", "2025-01-17", 1, 0.75, 9),
		stockTrade(3, dto.TradeTypeSTC, "2025-02-01", 40, 11.00),
	}

	entries, err := BuildCostBasisLedger(trades)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	sum := 0.0
	for _, entry := range entries {
		sum += entry.TotalAmount
	}
	assert.InDelta(t, sum, entries[len(entries)-1].RunningBasis, 0.001)
}

func TestBuildCostBasisLedger_MissingTradeDateFails(t *testing.T) {
	trade := stockTrade(1, dto.TradeTypeBTO, "2025-01-02", 10, 5.00)
	trade.TradeDate = time.Time{}

	_, err := BuildCostBasisLedger([]model.Trade{trade})
	assert.Error(t, err)
}

func TestBuildCostBasisLedger_OptionWithoutExpirationFails(t *testing.T) {
	trade := optionTrade(1, "AAPL ROCT PUT", dto.StatusOpen, "2025-01-02", "2025-01-17", 1, 1.00, 50)
	trade.ExpirationDate = time.Time{}

	_, err := BuildCostBasisLedger([]model.Trade{trade})
	assert.Error(t, err)
}

func TestBuildCostBasisLedger_Empty(t *testing.T) {
	entries, err := BuildCostBasisLedger(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
