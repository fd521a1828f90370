package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/internal/service/mocks"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	_ "github.com/golang-migrate/migrate/v4/source/file"       //nolint:revive
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

const ledgerMigrationsDir = "../db/migrations"

var errTradeStorage = errors.New("trade storage is down")

// failingTradeRepository отказывает на записи сделки, когда списание и позиция уже выполнены.
type failingTradeRepository struct{}

func (failingTradeRepository) Create(context.Context, repoargs.TradeCreate) (*domain.Trade, error) {
	return nil, errTradeStorage
}

// LedgerIntegrationSuite гоняет сервисы поверх настоящего uow.UnitOfWork во внешней транзакции.
type LedgerIntegrationSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	tx   pgx.Tx
	ctx  context.Context

	mockCtrl  *gomock.Controller
	quotes    *mocks.MockQuoteClient
	publisher *mocks.MockEventPublisher
}

func TestLedgerIntegrationSuite(t *testing.T) {
	suite.Run(t, new(LedgerIntegrationSuite))
}

func (s *LedgerIntegrationSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URI is not set")
	}
	s.ctx = context.Background()

	pool, err := pgrepo.Connect(s.ctx, ledgerMigrationsDir, dsn, newTestLogger())
	s.Require().NoError(err)
	s.pool = pool
}

func (s *LedgerIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *LedgerIntegrationSuite) SetupTest() {
	tx, err := s.pool.Begin(s.ctx)
	s.Require().NoError(err)
	s.tx = tx

	s.mockCtrl = gomock.NewController(s.T())
	s.quotes = mocks.NewMockQuoteClient(s.mockCtrl)
	s.publisher = mocks.NewMockEventPublisher(s.mockCtrl)

	s.quotes.EXPECT().NormalizeSymbol(gomock.Any()).DoAndReturn(func(symbol string) string {
		return strings.ToUpper(strings.NewReplacer("/", "", "-", "").Replace(symbol))
	}).AnyTimes()
	s.quotes.EXPECT().GetQuote(gomock.Any(), gomock.Any()).Return(&domain.Quote{
		Symbol: "AAPL",
		Class:  domain.AssetClassEquity,
		Name:   "Apple Inc. Common Stock",
		Ask:    dec("235.37"),
		Bid:    dec("235.32"),
	}, nil).AnyTimes()
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *LedgerIntegrationSuite) TearDownTest() {
	if s.tx != nil {
		_ = s.tx.Rollback(s.ctx)
	}
	s.mockCtrl.Finish()
}

func (s *LedgerIntegrationSuite) newUOW(overrides map[repoargs.RepositoryName]uow.RepositoryFactory) *uow.UnitOfWork {
	unitOfWork := uow.NewUnitOfWork(s.tx)
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:     func(db uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(db) },
		repoargs.BalanceRepoName:  func(db uow.DBTX) uow.Repository { return pgrepo.NewBalanceRepository(db) },
		repoargs.AssetRepoName:    func(db uow.DBTX) uow.Repository { return pgrepo.NewAssetRepository(db) },
		repoargs.HoldingRepoName:  func(db uow.DBTX) uow.Repository { return pgrepo.NewHoldingRepository(db) },
		repoargs.TransferRepoName: func(db uow.DBTX) uow.Repository { return pgrepo.NewTransferRepository(db) },
		repoargs.TradeRepoName:    func(db uow.DBTX) uow.Repository { return pgrepo.NewTradeRepository(db) },
	}
	for name, factory := range overrides {
		factories[name] = factory
	}
	for name, factory := range factories {
		s.Require().NoError(unitOfWork.Register(uow.RepositoryName(name), factory))
	}
	return unitOfWork
}

func (s *LedgerIntegrationSuite) marketService(u uow.UOW) *MarketService {
	marketService, err := NewMarketService(MarketServiceArgs{
		UOW:       u,
		Quotes:    s.quotes,
		Pricer:    NewPricer(func() float64 { return 0.4 }),
		Publisher: s.publisher,
		Logger:    newTestLogger(),
	})
	s.Require().NoError(err)
	return marketService
}

func (s *LedgerIntegrationSuite) createUser() string {
	username := gofakeit.Username() + gofakeit.DigitN(6)
	_, err := s.tx.Exec(s.ctx, `INSERT INTO users (username) VALUES ($1)`, username)
	s.Require().NoError(err)
	return username
}

// fundedUser создает юзера и пополняет счет через FundingService, затем выставляет нужную сумму.
func (s *LedgerIntegrationSuite) fundedUser(u uow.UOW, amount string) string {
	username := s.createUser()
	_, err := NewFundingService(u, s.publisher, newTestLogger()).Fund(s.ctx, username)
	s.Require().NoError(err)
	_, err = s.tx.Exec(s.ctx, `UPDATE balances SET amount = $2::numeric WHERE username = $1`, username, amount)
	s.Require().NoError(err)
	return username
}

func (s *LedgerIntegrationSuite) balanceOf(username string) string {
	balance, err := pgrepo.NewBalanceRepository(s.tx).FindByUsername(s.ctx, username)
	s.Require().NoError(err)
	return balance.Amount.StringFixed(domain.MoneyScale)
}

func (s *LedgerIntegrationSuite) holdingOf(username, symbol string) (string, bool) {
	holding, err := pgrepo.NewHoldingRepository(s.tx).FindByUsernameAndSymbol(s.ctx, username, symbol)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return "", false
	}
	s.Require().NoError(err)
	return holding.Quantity.String(), true
}

func (s *LedgerIntegrationSuite) count(sql string, args ...any) int {
	var n int
	s.Require().NoError(s.tx.QueryRow(s.ctx, sql, args...).Scan(&n))
	return n
}

func (s *LedgerIntegrationSuite) TestTransfer() {
	u := s.newUOW(nil)
	transferService, err := NewTransferService(u, s.publisher, newTestLogger())
	s.Require().NoError(err)

	sender := s.fundedUser(u, "100000.00")
	recipient := s.fundedUser(u, "200000.00")
	total := dec("300000.00")

	s.Run("moves funds and conserves the total", func() {
		transfer, transferErr := transferService.Transfer(s.ctx, TransferArgs{
			Sender:    sender,
			Recipient: recipient,
			Amount:    dec("100"),
		})
		s.Require().NoError(transferErr)
		s.Equal("100", transfer.Amount.String())

		s.Equal("99900.00", s.balanceOf(sender))
		s.Equal("200100.00", s.balanceOf(recipient))
		s.True(dec(s.balanceOf(sender)).Add(dec(s.balanceOf(recipient))).Equal(total))
		s.Equal(1, s.count(`SELECT count(*) FROM transfers WHERE sender = $1`, sender))
	})

	s.Run("insufficient funds leaves balances untouched", func() {
		_, transferErr := transferService.Transfer(s.ctx, TransferArgs{
			Sender:    sender,
			Recipient: recipient,
			Amount:    dec("500000"),
		})
		s.Require().ErrorIs(transferErr, domain.ErrInsufficientFunds)

		s.Equal("99900.00", s.balanceOf(sender))
		s.Equal("200100.00", s.balanceOf(recipient))
		s.Equal(1, s.count(`SELECT count(*) FROM transfers WHERE sender = $1`, sender))
	})
}

func (s *LedgerIntegrationSuite) TestBuyThenSell() {
	u := s.newUOW(nil)
	marketService := s.marketService(u)
	username := s.fundedUser(u, "100000.00")

	s.Run("buy debits the ceiled cost", func() {
		result, err := marketService.Buy(s.ctx, username, "aapl", dec("5"))
		s.Require().NoError(err)
		s.Equal("235.34", result.UnitPrice.String())
		s.Equal("1176.7", result.Total.String())

		s.Equal("98823.30", s.balanceOf(username))
		quantity, ok := s.holdingOf(username, "AAPL")
		s.Require().True(ok)
		s.Equal("5", quantity)
		s.Equal(1, s.count(`SELECT count(*) FROM trades WHERE username = $1`, username))
	})

	s.Run("second buy reuses the asset", func() {
		_, err := marketService.Buy(s.ctx, username, "AAPL", dec("12"))
		s.Require().NoError(err)

		s.Equal("95999.22", s.balanceOf(username))
		quantity, ok := s.holdingOf(username, "AAPL")
		s.Require().True(ok)
		s.Equal("17", quantity)
		s.Equal(1, s.count(`SELECT count(*) FROM assets WHERE symbol = 'AAPL'`))
	})

	s.Run("selling everything removes the holding", func() {
		result, err := marketService.Sell(s.ctx, username, "AAPL", dec("17"))
		s.Require().NoError(err)
		s.Equal("4000.78", result.Total.String())

		s.Equal("100000.00", s.balanceOf(username))
		_, ok := s.holdingOf(username, "AAPL")
		s.False(ok)
		s.Equal(3, s.count(`SELECT count(*) FROM trades WHERE username = $1`, username))
	})
}

func (s *LedgerIntegrationSuite) TestSellMoreThanHeld() {
	u := s.newUOW(nil)
	marketService := s.marketService(u)
	username := s.fundedUser(u, "100000.00")

	_, err := marketService.Buy(s.ctx, username, "AAPL", dec("10"))
	s.Require().NoError(err)
	balance := s.balanceOf(username)

	_, err = marketService.Sell(s.ctx, username, "AAPL", dec("12"))
	s.Require().ErrorIs(err, domain.ErrInsufficientAssetQuantity)

	quantity, ok := s.holdingOf(username, "AAPL")
	s.Require().True(ok)
	s.Equal("10", quantity)
	s.Equal(balance, s.balanceOf(username))
	s.Equal(1, s.count(`SELECT count(*) FROM trades WHERE username = $1`, username))
}

func (s *LedgerIntegrationSuite) TestFailedStepRollsBack() {
	u := s.newUOW(map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.TradeRepoName: func(uow.DBTX) uow.Repository { return failingTradeRepository{} },
	})
	marketService := s.marketService(u)
	username := s.fundedUser(u, "100000.00")

	_, err := marketService.Buy(s.ctx, username, "AAPL", dec("5"))
	s.Require().ErrorIs(err, domain.ErrTransactionFailed)
	s.Require().ErrorContains(err, errTradeStorage.Error())

	s.Equal("100000.00", s.balanceOf(username))
	_, ok := s.holdingOf(username, "AAPL")
	s.False(ok)
	s.Equal(0, s.count(`SELECT count(*) FROM trades WHERE username = $1`, username))
}
