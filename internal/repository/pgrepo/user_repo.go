package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userFindByUsername = `
SELECT username, created_at
FROM users
WHERE username = $1`

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, userFindByUsername, username))
	if err != nil {
		return nil, convertErr(err, "finding user by username `%s`", username)
	}
	return user, nil
}

// LockUserByUsername как FindUserByUsername, но блокирует строку юзера до конца транзакции.
// Имеет смысл только внутри uow.UOW.Do.
func (u *UserRepository) LockUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, userFindByUsername+"\nFOR UPDATE", username))
	if err != nil {
		return nil, convertErr(err, "locking user `%s`", username)
	}
	return user, nil
}

// List возвращает всех юзеров, отсортированных по юзернейму.
func (u *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := u.db.Query(ctx, `SELECT username, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	users, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		user, scanErr := scanUser(row)
		if scanErr != nil {
			return domain.User{}, scanErr
		}
		return *user, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing users")
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.Username, &user.CreatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
