package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const balanceColumns = `id, username, balance::text, created_at, updated_at`

type BalanceRepository struct {
	db uow.DBTX
}

func NewBalanceRepository(db uow.DBTX) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// FindByUsername возвращает баланс юзера или domain.ErrRecordNotFound, если счет не пополнялся.
func (b *BalanceRepository) FindByUsername(ctx context.Context, username string) (*domain.Balance, error) {
	balance, err := scanBalance(b.db.QueryRow(ctx,
		`SELECT `+balanceColumns+` FROM balances WHERE username = $1`,
		username,
	))
	if err != nil {
		return nil, convertErr(err, "finding balance of `%s`", username)
	}
	return balance, nil
}

// Decrease атомарно уменьшает баланс на delta.Amount, только если текущий баланс не меньше этой суммы.
// Если условие не выполнилось (или счета нет), возвращает domain.ErrRecordNotFound.
func (b *BalanceRepository) Decrease(ctx context.Context, delta repoargs.BalanceDelta) (*domain.Balance, error) {
	balance, err := scanBalance(b.db.QueryRow(ctx, `
		UPDATE balances
		SET balance = balance - $1::numeric, updated_at = now()
		WHERE username = $2 AND balance >= $1::numeric
		RETURNING `+balanceColumns,
		delta.Amount.String(), delta.Username,
	))
	if err != nil {
		return nil, convertErr(err, "decreasing balance of `%s` by %s", delta.Username, delta.Amount)
	}
	return balance, nil
}

// Increase увеличивает баланс на delta.Amount. Если счета нет, возвращает domain.ErrRecordNotFound.
func (b *BalanceRepository) Increase(ctx context.Context, delta repoargs.BalanceDelta) (*domain.Balance, error) {
	balance, err := scanBalance(b.db.QueryRow(ctx, `
		UPDATE balances
		SET balance = balance + $1::numeric, updated_at = now()
		WHERE username = $2
		RETURNING `+balanceColumns,
		delta.Amount.String(), delta.Username,
	))
	if err != nil {
		return nil, convertErr(err, "increasing balance of `%s` by %s", delta.Username, delta.Amount)
	}
	return balance, nil
}

// DeleteByUsername удаляет счет юзера. Отсутствие счета ошибкой не считается.
func (b *BalanceRepository) DeleteByUsername(ctx context.Context, username string) error {
	if _, err := b.db.Exec(ctx, `DELETE FROM balances WHERE username = $1`, username); err != nil {
		return convertErr(err, "deleting balance of `%s`", username)
	}
	return nil
}

// Create открывает счет. При существующем счете вернется domain.ErrDuplicateKey.
func (b *BalanceRepository) Create(ctx context.Context, args repoargs.CreateBalance) (*domain.Balance, error) {
	balance, err := scanBalance(b.db.QueryRow(ctx, `
		INSERT INTO balances (username, balance)
		VALUES ($1, $2::numeric)
		RETURNING `+balanceColumns,
		args.Username, args.Amount.String(),
	))
	if err != nil {
		return nil, convertErr(err, "creating balance of `%s`", args.Username)
	}
	return balance, nil
}

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	var balance domain.Balance
	var amount string
	if err := row.Scan(&balance.ID, &balance.Username, &amount, &balance.CreatedAt, &balance.UpdatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	var parseErr error
	if balance.Amount, parseErr = parseNumeric(amount, "balance"); parseErr != nil {
		return nil, parseErr
	}
	return &balance, nil
}
