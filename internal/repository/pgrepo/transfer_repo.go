package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
)

type TransferRepository struct {
	db uow.DBTX
}

func NewTransferRepository(db uow.DBTX) *TransferRepository {
	return &TransferRepository{db: db}
}

func (t *TransferRepository) Create(ctx context.Context, args repoargs.TransferCreate) (*domain.Transfer, error) {
	var transfer domain.Transfer
	var amount string
	err := t.db.QueryRow(ctx, `
		INSERT INTO transfers (sender, recipient, amount)
		VALUES ($1, $2, $3::numeric)
		RETURNING id, sender, recipient, amount::text, created_at`,
		args.Sender, args.Recipient, args.Amount.String(),
	).Scan(&transfer.ID, &transfer.Sender, &transfer.Recipient, &amount, &transfer.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating transfer `%s` -> `%s`", args.Sender, args.Recipient)
	}
	var parseErr error
	if transfer.Amount, parseErr = parseNumeric(amount, "amount"); parseErr != nil {
		return nil, convertErr(parseErr, "creating transfer `%s` -> `%s`", args.Sender, args.Recipient)
	}
	return &transfer, nil
}
