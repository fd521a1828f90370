package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const holdingJoinedSelect = `
SELECT h.id, h.username, h.asset_id, a.symbol, a.name, a.class::text, h.quantity::text
FROM holdings h
JOIN assets a ON a.id = h.asset_id`

type HoldingRepository struct {
	db uow.DBTX
}

func NewHoldingRepository(db uow.DBTX) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// FindByUsernameAndSymbol возвращает позицию юзера по символу актива или domain.ErrRecordNotFound.
func (h *HoldingRepository) FindByUsernameAndSymbol(
	ctx context.Context,
	username, symbol string,
) (*domain.Holding, error) {
	holding, err := scanHolding(h.db.QueryRow(ctx,
		holdingJoinedSelect+"\nWHERE h.username = $1 AND a.symbol = $2",
		username, symbol,
	))
	if err != nil {
		return nil, convertErr(err, "finding holding `%s` of `%s`", symbol, username)
	}
	return holding, nil
}

// GetByUsername возвращает все позиции юзера, отсортированные по символу.
func (h *HoldingRepository) GetByUsername(ctx context.Context, username string) ([]domain.Holding, error) {
	rows, err := h.db.Query(ctx, holdingJoinedSelect+"\nWHERE h.username = $1\nORDER BY a.symbol", username)
	if err != nil {
		return nil, convertErr(err, "getting holdings of `%s`", username)
	}
	holdings, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Holding, error) {
		holding, scanErr := scanHolding(row)
		if scanErr != nil {
			return domain.Holding{}, scanErr
		}
		return *holding, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting holdings of `%s`", username)
	}
	return holdings, nil
}

// Add увеличивает позицию на delta.Quantity, создавая ее при отсутствии.
func (h *HoldingRepository) Add(ctx context.Context, delta repoargs.HoldingDelta) error {
	_, err := h.db.Exec(ctx, `
		INSERT INTO holdings (username, asset_id, quantity)
		VALUES ($1, $2, $3::numeric)
		ON CONFLICT (username, asset_id) DO UPDATE SET quantity = holdings.quantity + EXCLUDED.quantity`,
		delta.Username, delta.AssetID, delta.Quantity.String(),
	)
	if err != nil {
		return convertErr(err, "adding %s of asset #%d to `%s`", delta.Quantity, delta.AssetID, delta.Username)
	}
	return nil
}

// Subtract уменьшает позицию на delta.Quantity. Если остаток становится нулевым, строка удаляется.
// Если позиции нет или ее меньше delta.Quantity, возвращает domain.ErrRecordNotFound.
// Строка позиции блокируется до конца транзакции, вызывать внутри uow.UnitOfWork.Do.
func (h *HoldingRepository) Subtract(ctx context.Context, delta repoargs.HoldingDelta) error {
	errContext := func() string {
		return fmt.Sprintf("subtracting %s of asset #%d from `%s`", delta.Quantity, delta.AssetID, delta.Username)
	}

	var id int64
	var current string
	if err := h.db.QueryRow(ctx, `
		SELECT id, quantity::text FROM holdings
		WHERE username = $1 AND asset_id = $2
		FOR UPDATE`,
		delta.Username, delta.AssetID,
	).Scan(&id, &current); err != nil {
		return convertErr(err, "%s", errContext())
	}

	quantity, parseErr := parseNumeric(current, "quantity")
	if parseErr != nil {
		return convertErr(parseErr, "%s", errContext())
	}

	var cmdErr error
	switch quantity.Cmp(delta.Quantity) {
	case -1:
		return convertErr(pgx.ErrNoRows, "%s: holding is %s", errContext(), quantity)
	case 0:
		cmdErr = h.exactlyOne(ctx, `DELETE FROM holdings WHERE id = $1 AND quantity = $2::numeric`,
			id, delta.Quantity.String())
	default:
		cmdErr = h.exactlyOne(ctx, `
			UPDATE holdings SET quantity = quantity - $2::numeric
			WHERE id = $1 AND quantity > $2::numeric`,
			id, delta.Quantity.String())
	}
	return convertErr(cmdErr, "%s", errContext())
}

// exactlyOne выполняет условную команду. Ни одной затронутой строки означает pgx.ErrNoRows.
func (h *HoldingRepository) exactlyOne(ctx context.Context, sql string, args ...any) error {
	tag, err := h.db.Exec(ctx, sql, args...)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if tag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanHolding(row pgx.Row) (*domain.Holding, error) {
	var holding domain.Holding
	var class, quantity string
	if err := row.Scan(
		&holding.ID,
		&holding.Username,
		&holding.AssetID,
		&holding.Symbol,
		&holding.Name,
		&class,
		&quantity,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	holding.Class = domain.AssetClassType(class)
	var parseErr error
	if holding.Quantity, parseErr = parseNumeric(quantity, "quantity"); parseErr != nil {
		return nil, parseErr
	}
	return &holding, nil
}
