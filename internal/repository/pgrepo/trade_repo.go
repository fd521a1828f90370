package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
)

type TradeRepository struct {
	db uow.DBTX
}

func NewTradeRepository(db uow.DBTX) *TradeRepository {
	return &TradeRepository{db: db}
}

func (t *TradeRepository) Create(ctx context.Context, args repoargs.TradeCreate) (*domain.Trade, error) {
	var trade domain.Trade
	var side, unitPrice, quantity string
	err := t.db.QueryRow(ctx, `
		INSERT INTO trades (side, username, asset_id, unit_price, quantity)
		VALUES ($1::text::trade_side_type, $2, $3, $4::numeric, $5::numeric)
		RETURNING id, side::text, username, asset_id, unit_price::text, quantity::text, created_at`,
		string(args.Side), args.Username, args.AssetID, args.UnitPrice.String(), args.Quantity.String(),
	).Scan(&trade.ID, &side, &trade.Username, &trade.AssetID, &unitPrice, &quantity, &trade.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating %s trade of `%s`", args.Side, args.Username)
	}
	trade.Side = domain.TradeSideType(side)

	var parseErr error
	if trade.UnitPrice, parseErr = parseNumeric(unitPrice, "unit_price"); parseErr != nil {
		return nil, convertErr(parseErr, "creating %s trade of `%s`", args.Side, args.Username)
	}
	if trade.Quantity, parseErr = parseNumeric(quantity, "quantity"); parseErr != nil {
		return nil, convertErr(parseErr, "creating %s trade of `%s`", args.Side, args.Username)
	}
	return &trade, nil
}
