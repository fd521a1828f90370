package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	List(ctx context.Context) ([]domain.User, error)
	GetPortfolio(ctx context.Context, username string) (*domain.Portfolio, error)
}

type FundingServicer interface {
	Fund(ctx context.Context, username string) (*domain.Balance, error)
}

type TransferServicer interface {
	Transfer(ctx context.Context, args service.TransferArgs) (*domain.Transfer, error)
}

type MarketServicer interface {
	Execute(ctx context.Context, args service.MarketOrderArgs) (*domain.TradeResult, error)
}
