package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-swap/internal/config"
	"github.com/fsdevblog/groph-swap/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/internal/service"
	"github.com/fsdevblog/groph-swap/internal/transport/api"
	"github.com/fsdevblog/groph-swap/internal/transport/events"
	"github.com/fsdevblog/groph-swap/internal/transport/marketdata"
	"github.com/fsdevblog/groph-swap/internal/transport/marketdata/client"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// publisher интерфейс издателя событий с освобождением ресурсов.
type publisher interface {
	service.EventPublisher
	Close() error
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	quotes := marketdata.New(client.New(client.Config{
		TradingURL: a.Config.MarketTradingURL,
		DataURL:    a.Config.MarketDataURL,
		KeyID:      a.Config.AlpacaKeyID,
		SecretKey:  a.Config.AlpacaSecretKey,
	}), a.Logger)

	eventPublisher := a.initPublisher()
	defer func() {
		if closeErr := eventPublisher.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close event publisher")
		}
	}()

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:       unitOfWork,
		Quotes:    quotes,
		Publisher: eventPublisher,
		Logger:    a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:          a.Logger,
		UserService:     services.UserService,
		TransferService: services.TransferService,
		MarketService:   services.MarketService,
		FundingService:  services.FundingService,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		a.Logger.Infof("listening on %s", a.Config.RunAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait() //nolint:wrapcheck
}

func (a *App) initPublisher() publisher {
	if len(a.Config.KafkaBrokers) == 0 {
		a.Logger.Warn("kafka brokers are not set, ledger events will not be published")
		return events.NoopPublisher{}
	}
	return events.NewKafkaPublisher(a.Config.KafkaBrokers, a.Config.KafkaTopic, a.Logger)
}

func initUOW(conn uow.Conn) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.BalanceRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBalanceRepository(dbtx)
		},
		repoargs.AssetRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAssetRepository(dbtx)
		},
		repoargs.HoldingRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewHoldingRepository(dbtx)
		},
		repoargs.TransferRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransferRepository(dbtx)
		},
		repoargs.TradeRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTradeRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
