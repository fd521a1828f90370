package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const assetColumns = `id, symbol, name, class::text, created_at`

type AssetRepository struct {
	db uow.DBTX
}

func NewAssetRepository(db uow.DBTX) *AssetRepository {
	return &AssetRepository{db: db}
}

// InsertOrGet создает актив или возвращает существующий с тем же символом одним запросом.
// DO UPDATE (а не DO NOTHING) нужен, чтобы RETURNING вернул строку и при конфликте, в том числе
// когда конкурентная транзакция вставила символ после начала запроса.
func (a *AssetRepository) InsertOrGet(ctx context.Context, args repoargs.InsertOrGetAsset) (*domain.Asset, error) {
	asset, err := scanAsset(a.db.QueryRow(ctx, `
		INSERT INTO assets (symbol, name, class)
		VALUES ($1, $2, $3::text::asset_class_type)
		ON CONFLICT (symbol) DO UPDATE SET symbol = EXCLUDED.symbol
		RETURNING `+assetColumns,
		args.Symbol, args.Name, string(args.Class),
	))
	if err != nil {
		return nil, convertErr(err, "inserting or getting asset `%s`", args.Symbol)
	}
	return asset, nil
}

func (a *AssetRepository) FindBySymbol(ctx context.Context, symbol string) (*domain.Asset, error) {
	asset, err := scanAsset(a.db.QueryRow(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE symbol = $1`,
		symbol,
	))
	if err != nil {
		return nil, convertErr(err, "finding asset `%s`", symbol)
	}
	return asset, nil
}

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var asset domain.Asset
	var class string
	if err := row.Scan(&asset.ID, &asset.Symbol, &asset.Name, &class, &asset.CreatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	asset.Class = domain.AssetClassType(class)
	return &asset, nil
}
