package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetClassType string

const (
	AssetClassEquity AssetClassType = "equity"
	AssetClassCrypto AssetClassType = "crypto"
)

type TradeSideType string

const (
	TradeSideBuy  TradeSideType = "buy"
	TradeSideSell TradeSideType = "sell"
)

// OrderState состояние исполнения рыночной заявки.
type OrderState string

const (
	OrderStateValidated OrderState = "validated"
	OrderStatePriced    OrderState = "priced"
	OrderStateSettled   OrderState = "settled"
	OrderStateFailed    OrderState = "failed"
)

const (
	// MoneyScale количество знаков после запятой для денежных сумм.
	MoneyScale int32 = 2
	// QuantityScale количество знаков после запятой для количества актива, как у NUMERIC(28,9).
	QuantityScale int32 = 9
)

// FundingAmount сумма, которой пополняется счет при Fund.
var FundingAmount = decimal.RequireFromString("100000.00") //nolint:gochecknoglobals

// TradeResult результат исполненной заявки.
type TradeResult struct {
	TradeID   int64
	AssetID   int64
	Side      TradeSideType
	Symbol    string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
	Total     decimal.Decimal
}

type LedgerEventType string

const (
	LedgerEventTransfer LedgerEventType = "transfer"
	LedgerEventTrade    LedgerEventType = "trade"
	LedgerEventFund     LedgerEventType = "fund"
)

// LedgerEvent событие, публикуемое после успешного коммита операции.
type LedgerEvent struct {
	Type       LedgerEventType `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Username   string          `json:"username"`
	Recipient  string          `json:"recipient,omitempty"`
	Symbol     string          `json:"symbol,omitempty"`
	Side       TradeSideType   `json:"side,omitempty"`
	RecordID   int64           `json:"recordId"`
	Amount     decimal.Decimal `json:"amount"`
	Quantity   decimal.Decimal `json:"quantity,omitzero"`
	UnitPrice  decimal.Decimal `json:"unitPrice,omitzero"`
}
