package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransferService struct {
	uow         uow.UOW
	balanceRepo BalanceRepository
	publisher   EventPublisher
	l           *logrus.Entry
}

func NewTransferService(u uow.UOW, publisher EventPublisher, l *logrus.Logger) (*TransferService, error) {
	balanceRepo, err := uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &TransferService{
		uow:         u,
		balanceRepo: balanceRepo,
		publisher:   publisher,
		l:           l.WithField("service", "transfer"),
	}, nil
}

type TransferArgs struct {
	Sender    string
	Recipient string
	Amount    decimal.Decimal
}

// Transfer переводит средства между пользователями.
//
// Алгоритм работы:
//  1. Проверяет сумму и наличие счетов у обоих участников, достаточность средств отправителя.
//  2. В одной транзакции создает запись о переводе, условно списывает сумму у отправителя
//     и зачисляет ее получателю.
//
// Ошибки: domain.ErrInvalidAmount, domain.ErrRecordNotFound (нет счета), domain.ErrInsufficientFunds,
// domain.ErrTransactionFailed (любая ошибка внутри транзакции, включая проигранную гонку за баланс).
// Перевод самому себе не запрещен.
func (t *TransferService) Transfer(ctx context.Context, args TransferArgs) (*domain.Transfer, error) {
	l := t.l.WithFields(logrus.Fields{
		"sender":    args.Sender,
		"recipient": args.Recipient,
		"amount":    args.Amount.String(),
	})

	if err := validateMoneyAmount(args.Amount); err != nil {
		l.WithError(err).Warn("transfer rejected")
		return nil, fmt.Errorf("transfer: %w", err)
	}

	senderBalance, senderErr := t.balanceRepo.FindByUsername(ctx, args.Sender)
	if senderErr != nil {
		l.WithError(senderErr).Warn("transfer rejected: sender balance")
		return nil, fmt.Errorf("transfer: sender balance: %w", senderErr)
	}
	if senderBalance.Amount.LessThan(args.Amount) {
		l.WithField("balance", senderBalance.Amount.String()).Warn("transfer rejected: insufficient funds")
		return nil, fmt.Errorf("transfer: %w: balance %s is less than %s",
			domain.ErrInsufficientFunds, senderBalance.Amount, args.Amount)
	}
	if _, recipientErr := t.balanceRepo.FindByUsername(ctx, args.Recipient); recipientErr != nil {
		l.WithError(recipientErr).Warn("transfer rejected: recipient balance")
		return nil, fmt.Errorf("transfer: recipient balance: %w", recipientErr)
	}

	var transfer *domain.Transfer
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transferRepo, repoErr := uow.GetAs[TransferRepository](tx, uow.RepositoryName(repoargs.TransferRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		balanceRepo, repoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		transfer, createErr = transferRepo.Create(c, repoargs.TransferCreate{
			Sender:    args.Sender,
			Recipient: args.Recipient,
			Amount:    args.Amount,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		if _, err := balanceRepo.Decrease(c, repoargs.BalanceDelta{
			Username: args.Sender,
			Amount:   args.Amount,
		}); err != nil {
			return fmt.Errorf("debit sender: %w", err)
		}
		if _, err := balanceRepo.Increase(c, repoargs.BalanceDelta{
			Username: args.Recipient,
			Amount:   args.Amount,
		}); err != nil {
			return fmt.Errorf("credit recipient: %w", err)
		}
		return nil
	})
	if txErr != nil {
		l.WithError(txErr).Error("transfer failed")
		return nil, txFailed("transfer", txErr)
	}

	l.WithField("transferID", transfer.ID).Info("transfer settled")
	publish(ctx, t.publisher, l, domain.LedgerEvent{
		Type:       domain.LedgerEventTransfer,
		OccurredAt: transfer.CreatedAt,
		Username:   transfer.Sender,
		Recipient:  transfer.Recipient,
		RecordID:   transfer.ID,
		Amount:     transfer.Amount,
	})
	return transfer, nil
}
