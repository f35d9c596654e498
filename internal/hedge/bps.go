package hedge

import (
	"math/big"
	"sync"
)

// BpsScale is the number of basis points in 100%.
const BpsScale = 10_000

// DaysPerYear is the day-count convention used for annualized spreads.
const DaysPerYear = 365

// Intermediate products (notional × bps × days) overflow int64 for large
// notionals, so the multiply runs through a pooled big.Int.
var intPool = &sync.Pool{
	New: func() interface{} {
		return new(big.Int)
	},
}

func getInt() *big.Int {
	return intPool.Get().(*big.Int)
}

func putInt(v *big.Int) {
	v.SetInt64(0)
	intPool.Put(v)
}

// AnnualPremium returns notional × rateBps / 10000, truncated.
func AnnualPremium(notional, rateBps int64) int64 {
	product := getInt()
	product.Mul(big.NewInt(notional), big.NewInt(rateBps))
	product.Quo(product, big.NewInt(BpsScale))
	result := product.Int64()
	putInt(product)
	return result
}

// ProratedPremium returns the premium for a tenor shorter than a year:
// notional × rateBps × tenorDays / (10000 × 365), truncated. This is the
// reference day-count formula; the live premium collaborator owns the
// authoritative model and may differ.
func ProratedPremium(notional, rateBps int64, tenorDays int32) int64 {
	product := getInt()
	product.Mul(big.NewInt(notional), big.NewInt(rateBps))
	product.Mul(product, big.NewInt(int64(tenorDays)))
	product.Quo(product, big.NewInt(BpsScale*DaysPerYear))
	result := product.Int64()
	putInt(product)
	return result
}
