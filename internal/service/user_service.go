package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
)

type UserService struct {
	userRepo    UserRepository
	balanceRepo BalanceRepository
	holdingRepo HoldingRepository
}

func NewUserService(u uow.UOW) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	balanceRepo, balanceRepoErr := uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if balanceRepoErr != nil {
		return nil, balanceRepoErr //nolint:wrapcheck
	}
	holdingRepo, holdingRepoErr := uow.GetRepositoryAs[HoldingRepository](u, uow.RepositoryName(repoargs.HoldingRepoName))
	if holdingRepoErr != nil {
		return nil, holdingRepoErr //nolint:wrapcheck
	}
	return &UserService{
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
		holdingRepo: holdingRepo,
	}, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// GetPortfolio возвращает баланс и активы пользователя. Balance равен nil, если счет не пополнялся.
func (s *UserService) GetPortfolio(ctx context.Context, username string) (*domain.Portfolio, error) {
	user, userErr := s.userRepo.FindUserByUsername(ctx, username)
	if userErr != nil {
		return nil, fmt.Errorf("getting portfolio: %w", userErr)
	}

	portfolio := domain.Portfolio{Username: user.Username}

	balance, balanceErr := s.balanceRepo.FindByUsername(ctx, username)
	switch {
	case balanceErr == nil:
		portfolio.Balance = &balance.Amount
	case !errors.Is(balanceErr, domain.ErrRecordNotFound):
		return nil, fmt.Errorf("getting portfolio: %w", balanceErr)
	}

	holdings, holdingsErr := s.holdingRepo.GetByUsername(ctx, username)
	if holdingsErr != nil {
		return nil, fmt.Errorf("getting portfolio: %w", holdingsErr)
	}
	portfolio.Holdings = holdings
	return &portfolio, nil
}
