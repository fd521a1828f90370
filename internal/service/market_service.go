package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type MarketService struct {
	uow         uow.UOW
	balanceRepo BalanceRepository
	holdingRepo HoldingRepository
	quotes      QuoteClient
	pricer      *Pricer
	publisher   EventPublisher
	l           *logrus.Entry
}

type MarketServiceArgs struct {
	UOW       uow.UOW
	Quotes    QuoteClient
	Pricer    *Pricer
	Publisher EventPublisher
	Logger    *logrus.Logger
}

func NewMarketService(args MarketServiceArgs) (*MarketService, error) {
	balanceRepo, err := uow.GetRepositoryAs[BalanceRepository](args.UOW, uow.RepositoryName(repoargs.BalanceRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	holdingRepo, err := uow.GetRepositoryAs[HoldingRepository](args.UOW, uow.RepositoryName(repoargs.HoldingRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	pricer := args.Pricer
	if pricer == nil {
		pricer = NewPricer(nil)
	}
	return &MarketService{
		uow:         args.UOW,
		balanceRepo: balanceRepo,
		holdingRepo: holdingRepo,
		quotes:      args.Quotes,
		pricer:      pricer,
		publisher:   args.Publisher,
		l:           args.Logger.WithField("service", "market"),
	}, nil
}

type MarketOrderArgs struct {
	Username string
	Symbol   string
	Side     domain.TradeSideType
	Quantity decimal.Decimal
}

// Execute исполняет рыночную заявку в зависимости от стороны сделки.
// Неизвестная сторона отклоняется с domain.ErrInvalidOrderSide.
func (m *MarketService) Execute(ctx context.Context, args MarketOrderArgs) (*domain.TradeResult, error) {
	switch args.Side {
	case domain.TradeSideBuy:
		return m.Buy(ctx, args.Username, args.Symbol, args.Quantity)
	case domain.TradeSideSell:
		return m.Sell(ctx, args.Username, args.Symbol, args.Quantity)
	default:
		err := fmt.Errorf("market order: %w: `%s`", domain.ErrInvalidOrderSide, args.Side)
		m.orderLogger(args.Username, args.Symbol, args.Side, args.Quantity).
			WithError(err).
			Warn("market order rejected")
		return nil, err
	}
}

// Buy покупает quantity актива symbol по цене исполнения текущей котировки.
//
// Алгоритм работы:
//  1. Получает котировку и цену исполнения, стоимость округляется до цента вверх.
//  2. Предварительно проверяет баланс (нет счета - domain.ErrRecordNotFound, не хватает - domain.ErrInsufficientFunds).
//  3. В одной транзакции условно списывает стоимость, создает или переиспользует актив, пишет сделку
//     и увеличивает позицию.
func (m *MarketService) Buy(
	ctx context.Context,
	username, symbol string,
	quantity decimal.Decimal,
) (*domain.TradeResult, error) {
	l := m.orderLogger(username, symbol, domain.TradeSideBuy, quantity)
	if err := validateQuantity(quantity); err != nil {
		return nil, m.fail(l, domain.OrderStateValidated, fmt.Errorf("buy: %w", err))
	}

	quote, unitPrice, quoteErr := m.price(ctx, symbol)
	if quoteErr != nil {
		return nil, m.fail(l, domain.OrderStateValidated, quoteFailed("buy", quoteErr))
	}
	cost := unitPrice.Mul(quantity).RoundCeil(domain.MoneyScale)
	l = l.WithFields(logrus.Fields{
		"unitPrice": unitPrice.String(),
		"cost":      cost.String(),
	})
	l.WithField("state", domain.OrderStatePriced).Debug("market order priced")

	balance, balanceErr := m.balanceRepo.FindByUsername(ctx, username)
	if balanceErr != nil {
		return nil, m.fail(l, domain.OrderStatePriced, fmt.Errorf("buy: balance: %w", balanceErr))
	}
	if balance.Amount.LessThan(cost) {
		return nil, m.fail(l, domain.OrderStatePriced, fmt.Errorf("buy: %w: balance %s is less than cost %s",
			domain.ErrInsufficientFunds, balance.Amount, cost))
	}

	var trade *domain.Trade
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, repoErr := marketReposFromTX(tx)
		if repoErr != nil {
			return repoErr
		}
		if _, err := repos.balance.Decrease(c, repoargs.BalanceDelta{Username: username, Amount: cost}); err != nil {
			return fmt.Errorf("debit balance: %w", err)
		}
		asset, assetErr := repos.asset.InsertOrGet(c, repoargs.InsertOrGetAsset{
			Symbol: quote.Symbol,
			Name:   quote.Name,
			Class:  quote.Class,
		})
		if assetErr != nil {
			return fmt.Errorf("asset: %w", assetErr)
		}
		var tradeErr error
		trade, tradeErr = repos.trade.Create(c, repoargs.TradeCreate{
			Side:      domain.TradeSideBuy,
			Username:  username,
			AssetID:   asset.ID,
			UnitPrice: unitPrice,
			Quantity:  quantity,
		})
		if tradeErr != nil {
			return fmt.Errorf("trade record: %w", tradeErr)
		}
		if err := repos.holding.Add(c, repoargs.HoldingDelta{
			Username: username,
			AssetID:  asset.ID,
			Quantity: quantity,
		}); err != nil {
			return fmt.Errorf("holding: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, m.fail(l, domain.OrderStatePriced, txFailed("buy", txErr))
	}

	return m.settle(ctx, l, trade, quote.Symbol, cost), nil
}

// Sell продает quantity актива symbol по цене исполнения текущей котировки.
//
// Алгоритм работы:
//  1. Проверяет позицию по нормализованному символу (нет или мало - domain.ErrInsufficientAssetQuantity).
//  2. Получает котировку и цену исполнения, выручка округляется до цента вниз.
//  3. В одной транзакции условно уменьшает позицию (удаляя ее при нуле), пишет сделку и зачисляет выручку.
func (m *MarketService) Sell(
	ctx context.Context,
	username, symbol string,
	quantity decimal.Decimal,
) (*domain.TradeResult, error) {
	l := m.orderLogger(username, symbol, domain.TradeSideSell, quantity)
	if err := validateQuantity(quantity); err != nil {
		return nil, m.fail(l, domain.OrderStateValidated, fmt.Errorf("sell: %w", err))
	}

	holding, holdingErr := m.holdingRepo.FindByUsernameAndSymbol(ctx, username, m.quotes.NormalizeSymbol(symbol))
	if holdingErr != nil {
		if errors.Is(holdingErr, domain.ErrRecordNotFound) {
			holdingErr = fmt.Errorf("%w: no holding of `%s`", domain.ErrInsufficientAssetQuantity, symbol)
		}
		return nil, m.fail(l, domain.OrderStateValidated, fmt.Errorf("sell: %w", holdingErr))
	}
	if holding.Quantity.LessThan(quantity) {
		return nil, m.fail(l, domain.OrderStateValidated, fmt.Errorf("sell: %w: holding %s is less than %s",
			domain.ErrInsufficientAssetQuantity, holding.Quantity, quantity))
	}

	_, unitPrice, quoteErr := m.price(ctx, symbol)
	if quoteErr != nil {
		return nil, m.fail(l, domain.OrderStateValidated, quoteFailed("sell", quoteErr))
	}
	proceeds := unitPrice.Mul(quantity).RoundFloor(domain.MoneyScale)
	l = l.WithFields(logrus.Fields{
		"unitPrice": unitPrice.String(),
		"proceeds":  proceeds.String(),
	})
	l.WithField("state", domain.OrderStatePriced).Debug("market order priced")

	var trade *domain.Trade
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, repoErr := marketReposFromTX(tx)
		if repoErr != nil {
			return repoErr
		}
		if err := repos.holding.Subtract(c, repoargs.HoldingDelta{
			Username: username,
			AssetID:  holding.AssetID,
			Quantity: quantity,
		}); err != nil {
			return fmt.Errorf("holding: %w", err)
		}
		var tradeErr error
		trade, tradeErr = repos.trade.Create(c, repoargs.TradeCreate{
			Side:      domain.TradeSideSell,
			Username:  username,
			AssetID:   holding.AssetID,
			UnitPrice: unitPrice,
			Quantity:  quantity,
		})
		if tradeErr != nil {
			return fmt.Errorf("trade record: %w", tradeErr)
		}
		if _, err := repos.balance.Increase(c, repoargs.BalanceDelta{Username: username, Amount: proceeds}); err != nil {
			return fmt.Errorf("credit balance: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, m.fail(l, domain.OrderStatePriced, txFailed("sell", txErr))
	}

	return m.settle(ctx, l, trade, holding.Symbol, proceeds), nil
}

// price запрашивает котировку и вычисляет по ней цену исполнения. Вызывается ровно один раз на заявку.
func (m *MarketService) price(ctx context.Context, symbol string) (*domain.Quote, decimal.Decimal, error) {
	quote, err := m.quotes.GetQuote(ctx, symbol)
	if err != nil {
		return nil, decimal.Zero, err //nolint:wrapcheck
	}
	unitPrice := m.pricer.FillPrice(quote.Ask, quote.Bid)
	if !unitPrice.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: non-positive price %s for `%s`",
			domain.ErrQuoteUnavailable, unitPrice, quote.Symbol)
	}
	return quote, unitPrice, nil
}

func (m *MarketService) settle(
	ctx context.Context,
	l *logrus.Entry,
	trade *domain.Trade,
	symbol string,
	total decimal.Decimal,
) *domain.TradeResult {
	l.WithFields(logrus.Fields{
		"state":   domain.OrderStateSettled,
		"tradeID": trade.ID,
		"assetID": trade.AssetID,
	}).Info("market order settled")

	publish(ctx, m.publisher, l, domain.LedgerEvent{
		Type:       domain.LedgerEventTrade,
		OccurredAt: trade.CreatedAt,
		Username:   trade.Username,
		Symbol:     symbol,
		Side:       trade.Side,
		RecordID:   trade.ID,
		Amount:     total,
		Quantity:   trade.Quantity,
		UnitPrice:  trade.UnitPrice,
	})

	return &domain.TradeResult{
		TradeID:   trade.ID,
		AssetID:   trade.AssetID,
		Side:      trade.Side,
		Symbol:    symbol,
		UnitPrice: trade.UnitPrice,
		Quantity:  trade.Quantity,
		Total:     total,
	}
}

// fail логирует состояние, в котором заявка перешла в domain.OrderStateFailed, и возвращает err.
func (m *MarketService) fail(l *logrus.Entry, from domain.OrderState, err error) error {
	l.WithError(err).WithFields(logrus.Fields{
		"state":    domain.OrderStateFailed,
		"failedAt": from,
	}).Warn("market order failed")
	return err
}

func (m *MarketService) orderLogger(
	username, symbol string,
	side domain.TradeSideType,
	quantity decimal.Decimal,
) *logrus.Entry {
	return m.l.WithFields(logrus.Fields{
		"username": username,
		"symbol":   symbol,
		"side":     side,
		"quantity": quantity.String(),
	})
}

type marketRepos struct {
	balance BalanceRepository
	asset   AssetRepository
	holding HoldingRepository
	trade   TradeRepository
}

func marketReposFromTX(tx uow.TX) (*marketRepos, error) {
	balance, err := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	asset, err := uow.GetAs[AssetRepository](tx, uow.RepositoryName(repoargs.AssetRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	holding, err := uow.GetAs[HoldingRepository](tx, uow.RepositoryName(repoargs.HoldingRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	trade, err := uow.GetAs[TradeRepository](tx, uow.RepositoryName(repoargs.TradeRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &marketRepos{balance: balance, asset: asset, holding: holding, trade: trade}, nil
}
