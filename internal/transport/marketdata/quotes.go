package marketdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/transport/marketdata/client"
	"github.com/sirupsen/logrus"
)

// QuoteClient получает котировки у поставщика рыночных данных и приводит их к domain.Quote.
type QuoteClient struct {
	client Client
	l      *logrus.Entry
}

func New(c Client, l *logrus.Logger) *QuoteClient {
	return &QuoteClient{
		client: c,
		l: l.WithFields(logrus.Fields{
			"module": "marketdata",
		}),
	}
}

// GetQuote возвращает котировку актива symbol. Класс актива определяется по торговому API, после чего
// запрашивается котировка из соответствующего раздела API данных. Symbol котировки нормализован
// (см. NormalizeSymbol). Любая ошибка оборачивает domain.ErrQuoteUnavailable.
func (q *QuoteClient) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	l := q.l.WithField("symbol", symbol)

	asset, assetErr := q.client.GetAsset(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
	if assetErr != nil {
		l.WithError(assetErr).Warn("asset info unavailable")
		return nil, unavailable(symbol, assetErr)
	}
	if !asset.Tradable {
		return nil, fmt.Errorf("%w: `%s` is not tradable", domain.ErrQuoteUnavailable, asset.Symbol)
	}

	var class domain.AssetClassType
	var quote *client.QuoteResponse
	var quoteErr error

	switch asset.Class {
	case client.AssetClassUSEquity:
		class = domain.AssetClassEquity
		quote, quoteErr = q.client.GetStockQuote(ctx, asset.Symbol)
	case client.AssetClassCrypto:
		class = domain.AssetClassCrypto
		quote, quoteErr = q.client.GetCryptoQuote(ctx, asset.Symbol)
	default:
		return nil, fmt.Errorf("%w: unsupported asset class `%s`", domain.ErrQuoteUnavailable, asset.Class)
	}
	if quoteErr != nil {
		l.WithError(quoteErr).Warn("quote unavailable")
		return nil, unavailable(symbol, quoteErr)
	}

	l.WithFields(logrus.Fields{
		"ask": quote.AskPrice.String(),
		"bid": quote.BidPrice.String(),
	}).Debug("quote received")

	return &domain.Quote{
		Symbol: q.NormalizeSymbol(asset.Symbol),
		Class:  class,
		Name:   asset.Name,
		Ask:    quote.AskPrice,
		Bid:    quote.BidPrice,
	}, nil
}

// NormalizeSymbol приводит символ к виду, в котором он хранится: без разделителей пары, в верхнем регистре.
// Например "btc/usd" -> "BTCUSD".
func (q *QuoteClient) NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.NewReplacer("/", "", "-", "").Replace(strings.TrimSpace(symbol)))
}

func unavailable(symbol string, err error) error {
	return fmt.Errorf("%w: `%s`: %s", domain.ErrQuoteUnavailable, symbol, err.Error())
}
