package service

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	LockUserByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type BalanceRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Balance, error)
	Decrease(ctx context.Context, delta repoargs.BalanceDelta) (*domain.Balance, error)
	Increase(ctx context.Context, delta repoargs.BalanceDelta) (*domain.Balance, error)
	DeleteByUsername(ctx context.Context, username string) error
	Create(ctx context.Context, args repoargs.CreateBalance) (*domain.Balance, error)
}

type AssetRepository interface {
	InsertOrGet(ctx context.Context, args repoargs.InsertOrGetAsset) (*domain.Asset, error)
	FindBySymbol(ctx context.Context, symbol string) (*domain.Asset, error)
}

type HoldingRepository interface {
	FindByUsernameAndSymbol(ctx context.Context, username, symbol string) (*domain.Holding, error)
	GetByUsername(ctx context.Context, username string) ([]domain.Holding, error)
	Add(ctx context.Context, delta repoargs.HoldingDelta) error
	Subtract(ctx context.Context, delta repoargs.HoldingDelta) error
}

type TransferRepository interface {
	Create(ctx context.Context, args repoargs.TransferCreate) (*domain.Transfer, error)
}

type TradeRepository interface {
	Create(ctx context.Context, args repoargs.TradeCreate) (*domain.Trade, error)
}

// QuoteClient поставщик котировок. Ошибки оборачивают domain.ErrQuoteUnavailable.
type QuoteClient interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	NormalizeSymbol(symbol string) string
}

// EventPublisher публикует события уже закоммиченных операций.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}
