package repoargs

import (
	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/shopspring/decimal"
)

type InsertOrGetAsset struct {
	Symbol string
	Name   string
	Class  domain.AssetClassType
}

type HoldingDelta struct {
	Username string
	AssetID  int64
	Quantity decimal.Decimal
}

type TradeCreate struct {
	Side      domain.TradeSideType
	Username  string
	AssetID   int64
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}
