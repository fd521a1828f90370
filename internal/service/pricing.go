package service

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// priceScale точность цены исполнения.
const priceScale int32 = 8

// Pricer вычисляет цену исполнения заявки по котировке.
type Pricer struct {
	rnd func() float64
}

// NewPricer создает Pricer с источником случайных чисел rnd, возвращающим значения из [0, 1).
// При rnd == nil используется math/rand/v2.
func NewPricer(rnd func() float64) *Pricer {
	if rnd == nil {
		rnd = rand.Float64 // nolint:gosec
	}
	return &Pricer{rnd: rnd}
}

// FillPrice возвращает bid + r*(ask-bid), где r случайное число из [0, 1).
// Результат округлен до priceScale знаков и всегда лежит в [min(bid, ask), max(bid, ask)].
func (p *Pricer) FillPrice(ask, bid decimal.Decimal) decimal.Decimal {
	low, high := bid, ask
	if low.GreaterThan(high) {
		low, high = high, low
	}
	r := decimal.NewFromFloat(p.rnd())
	price := low.Add(high.Sub(low).Mul(r)).Round(priceScale)

	switch {
	case price.LessThan(low):
		return low
	case price.GreaterThan(high):
		return high
	}
	return price
}
