package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseTradeType(t *testing.T) {
	assert.Equal(t, "ROCT PUT", baseTradeType("AAPL ROCT PUT", "AAPL"))
	assert.Equal(t, "ROCT CALL", baseTradeType("MSFT ROCT CALL", "MSFT"))
	assert.Equal(t, "ROP", baseTradeType("ROP", "AAPL"))
	assert.Equal(t, "BTO", baseTradeType("BTO", "AAPL"))
}

func TestAsFloat(t *testing.T) {
	value, err := asFloat(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, value)

	value, err = asFloat(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, value)

	_, err = asFloat("not a number")
	assert.Error(t, err)
}
