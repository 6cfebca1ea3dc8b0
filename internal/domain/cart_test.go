package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile_EmptyCart(t *testing.T) {
	totals, shortfalls := Reconcile(nil)

	assert.Equal(t, CartTotals{}, totals)
	assert.Empty(t, shortfalls)
}

func TestReconcile_TotalsAreAdditive(t *testing.T) {
	lines := []CartLine{
		{ProductTitle: "pen", Amount: 2, Price: 500, Balance: 10},
		{ProductTitle: "notebook", Amount: 3, Price: 2500, Balance: 10},
	}

	totals, shortfalls := Reconcile(lines)

	assert.Equal(t, int64(5), totals.TotalCount)
	assert.Equal(t, int64(8500), totals.TotalCost) // 2*500 + 3*2500
	assert.Empty(t, shortfalls)
}

func TestReconcile_ShortfallReportsAvailableBalance(t *testing.T) {
	lines := []CartLine{
		{ProductTitle: "pen", Amount: 5, Price: 700, Balance: 1},
		{ProductTitle: "notebook", Amount: 1, Price: 2500, Balance: 3},
	}

	totals, shortfalls := Reconcile(lines)

	// Итоги считаются по запрошенным количествам даже при нехватке.
	assert.Equal(t, int64(6), totals.TotalCount)
	assert.Equal(t, int64(6000), totals.TotalCost)
	assert.Equal(t, map[string]int64{"pen": 1}, shortfalls)
}

func TestReconcile_ExactBalanceIsNotShortfall(t *testing.T) {
	lines := []CartLine{
		{ProductTitle: "pen", Amount: 3, Price: 100, Balance: 3},
	}

	_, shortfalls := Reconcile(lines)

	assert.Empty(t, shortfalls)
}

func TestReconcile_ZeroBalanceShortfall(t *testing.T) {
	lines := []CartLine{
		{ProductTitle: "pen", Amount: 1, Price: 100, Balance: 0},
	}

	_, shortfalls := Reconcile(lines)

	assert.Equal(t, map[string]int64{"pen": 0}, shortfalls)
}
