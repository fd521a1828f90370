package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	CreatedAt time.Time
	Username  string
}

// Balance денежный счет пользователя. Отсутствие записи означает, что счет не пополнялся.
type Balance struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Amount    decimal.Decimal
}

type Asset struct {
	ID        int64
	CreatedAt time.Time
	Symbol    string
	Name      string
	Class     AssetClassType
}

// Holding количество актива у пользователя. Записи с нулевым количеством не хранятся.
type Holding struct {
	ID       int64
	Username string
	AssetID  int64
	Symbol   string
	Name     string
	Class    AssetClassType
	Quantity decimal.Decimal
}

// Transfer неизменяемая запись о переводе средств между пользователями.
type Transfer struct {
	ID        int64
	CreatedAt time.Time
	Amount    decimal.Decimal
	Sender    string
	Recipient string
}

// Trade неизменяемая запись о рыночной сделке.
type Trade struct {
	ID        int64
	CreatedAt time.Time
	Side      TradeSideType
	Username  string
	AssetID   int64
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// Quote котировка поставщика рыночных данных.
type Quote struct {
	Symbol string
	Class  AssetClassType
	Name   string
	Ask    decimal.Decimal
	Bid    decimal.Decimal
}

// Portfolio сводка по пользователю: баланс (nil если счет не пополнялся) и активы.
type Portfolio struct {
	Username string
	Balance  *decimal.Decimal
	Holdings []Holding
}
