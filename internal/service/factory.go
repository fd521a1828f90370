package service

import (
	"fmt"

	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService     *UserService
	TransferService *TransferService
	MarketService   *MarketService
	FundingService  *FundingService
}

type FactoryArgs struct {
	UOW       uow.UOW
	Quotes    QuoteClient
	Publisher EventPublisher
	Pricer    *Pricer
	Logger    *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	transferService, transferServiceErr := NewTransferService(args.UOW, args.Publisher, args.Logger)
	if transferServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transferServiceErr.Error())
	}

	marketService, marketServiceErr := NewMarketService(MarketServiceArgs{
		UOW:       args.UOW,
		Quotes:    args.Quotes,
		Pricer:    args.Pricer,
		Publisher: args.Publisher,
		Logger:    args.Logger,
	})
	if marketServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", marketServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		TransferService: transferService,
		MarketService:   marketService,
		FundingService:  NewFundingService(args.UOW, args.Publisher, args.Logger),
	}, nil
}
