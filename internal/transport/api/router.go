package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-swap/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// MarketServiceTimeout включает запрос котировки у поставщика.
	MarketServiceTimeout = 15 * time.Second
)

const (
	RouteGroup             = "/api"
	UsersRoute             = "/users"
	UserRoute              = "/users/:username"
	SendFundsRoute         = "/users/:username/send-funds"
	MarketTransactionRoute = "/users/:username/market-transaction"
	FundRoute              = "/users/:username/fund"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	TransferService TransferServicer
	MarketService   MarketServicer
	FundingService  FundingServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %s", err.Error())
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	usersHandler := NewUsersHandler(args.UserService, args.FundingService)
	ledgerHandler := NewLedgerHandler(args.TransferService, args.MarketService)

	api := r.Group(RouteGroup)

	api.GET(UsersRoute, usersHandler.Index)
	api.GET(UserRoute, usersHandler.Show)
	api.POST(FundRoute, usersHandler.Fund)

	api.POST(SendFundsRoute, ledgerHandler.SendFunds)
	api.POST(MarketTransactionRoute, ledgerHandler.MarketTransaction)
	return r, nil
}
