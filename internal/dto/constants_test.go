package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradeTypeClassification(t *testing.T) {
	tests := []struct {
		tradeType string
		stock     bool
		putStyle  bool
		callStyle bool
		credit    bool
	}{
		{tradeType: "BTO", stock: true},
		{tradeType: "STC", stock: true},
		{tradeType: "ROCT PUT", putStyle: true, credit: true},
		{tradeType: "ROCT CALL", callStyle: true, credit: true},
		{tradeType: "ROP", putStyle: true, credit: true},
		{tradeType: "ROC", callStyle: true, credit: true},
		// Stored trade types carry the ticker prefix.
		{tradeType: "AAPL ROCT PUT", putStyle: true, credit: true},
		{tradeType: "MSFT ROCT CALL", callStyle: true, credit: true},
	}

	for _, tt := range tests {
		t.Run(tt.tradeType, func(t *testing.T) {
			assert.Equal(t, tt.stock, IsStockType(tt.tradeType))
			assert.Equal(t, !tt.stock, IsOptionType(tt.tradeType))
			assert.Equal(t, tt.putStyle, IsPutStyle(tt.tradeType))
			assert.Equal(t, tt.callStyle, IsCallStyle(tt.tradeType))
			assert.Equal(t, tt.credit, IsCreditType(tt.tradeType))
		})
	}
}

func TestTradeShares(t *testing.T) {
	assert.Equal(t, 100, TradeShares("BTO", 100))
	assert.Equal(t, 200, TradeShares("AAPL ROCT PUT", 2))
	assert.Equal(t, 100, TradeShares("ROP", 1))
}
