package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/sirupsen/logrus"
)

type FundingService struct {
	uow       uow.UOW
	publisher EventPublisher
	l         *logrus.Entry
}

func NewFundingService(u uow.UOW, publisher EventPublisher, l *logrus.Logger) *FundingService {
	return &FundingService{
		uow:       u,
		publisher: publisher,
		l:         l.WithField("service", "funding"),
	}
}

// Fund заменяет счет пользователя новым с суммой domain.FundingAmount. Строка пользователя блокируется
// на время транзакции, поэтому конкурентные Fund одного пользователя выполняются последовательно.
// Возвращает domain.ErrRecordNotFound, если пользователя нет, и domain.ErrTransactionFailed при
// любой другой ошибке внутри транзакции.
func (f *FundingService) Fund(ctx context.Context, username string) (*domain.Balance, error) {
	l := f.l.WithField("username", username)

	var balance *domain.Balance
	txErr := f.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		balanceRepo, repoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if _, err := userRepo.LockUserByUsername(c, username); err != nil {
			return err //nolint:wrapcheck
		}
		if err := balanceRepo.DeleteByUsername(c, username); err != nil {
			return fmt.Errorf("delete balance: %s", err.Error())
		}
		var createErr error
		balance, createErr = balanceRepo.Create(c, repoargs.CreateBalance{
			Username: username,
			Amount:   domain.FundingAmount,
		})
		if createErr != nil {
			return fmt.Errorf("create balance: %s", createErr.Error())
		}
		return nil
	})
	if txErr != nil {
		l.WithError(txErr).Error("funding failed")
		// NotFound может прийти только от блокировки пользователя, остальные шаги его теряют.
		if errors.Is(txErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("fund: %w", txErr)
		}
		return nil, txFailed("fund", txErr)
	}

	l.WithField("balance", balance.Amount.String()).Info("account funded")
	publish(ctx, f.publisher, l, domain.LedgerEvent{
		Type:       domain.LedgerEventFund,
		OccurredAt: balance.UpdatedAt,
		Username:   username,
		RecordID:   balance.ID,
		Amount:     balance.Amount,
	})
	return balance, nil
}
