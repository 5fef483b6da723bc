package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/marmitaware/marmitaware-bff/pkg/money"
)

func TestBRL(t *testing.T) {
	assert.Equal(t, "R$ 15,00", money.BRL(decimal.NewFromInt(15)))
	assert.Equal(t, "R$ 1.234,50", money.BRL(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 0,00", money.BRL(decimal.Zero))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "80,0%", money.Percent(decimal.NewFromInt(80)))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "3", money.Number(decimal.NewFromInt(3)))
	assert.Equal(t, "0,15", money.Number(decimal.RequireFromString("0.15")))
}
