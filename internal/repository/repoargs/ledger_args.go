package repoargs

import (
	"github.com/shopspring/decimal"
)

type BalanceDelta struct {
	Username string
	Amount   decimal.Decimal
}

type CreateBalance struct {
	Username string
	Amount   decimal.Decimal
}

type TransferCreate struct {
	Sender    string
	Recipient string
	Amount    decimal.Decimal
}
