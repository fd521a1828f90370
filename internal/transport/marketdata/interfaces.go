package marketdata

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-swap/internal/transport/marketdata/client"
)

type Client interface {
	GetAsset(ctx context.Context, symbol string) (*client.AssetResponse, error)
	GetStockQuote(ctx context.Context, symbol string) (*client.QuoteResponse, error)
	GetCryptoQuote(ctx context.Context, symbol string) (*client.QuoteResponse, error)
}
