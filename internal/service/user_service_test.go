package service

import (
	"testing"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/repository/repoargs"
	"github.com/fsdevblog/groph-swap/internal/service/mocks"
	"github.com/fsdevblog/groph-swap/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-swap/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockUserRepo    *mocks.MockUserRepository
	mockBalanceRepo *mocks.MockBalanceRepository
	mockHoldingRepo *mocks.MockHoldingRepository
	userService     *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockBalanceRepo = mocks.NewMockBalanceRepository(mockCtrl)
	s.mockHoldingRepo = mocks.NewMockHoldingRepository(mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.BalanceRepoName)).
		Return(s.mockBalanceRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.HoldingRepoName)).
		Return(s.mockHoldingRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestNewUserService_WrongRepositoryType() {
	mockCtrl := gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(mockCtrl)
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).Return("not a repo", nil)

	_, err := NewUserService(mockUOW)
	s.Require().ErrorIs(err, uow.ErrInvalidRepositoryType)
}

func (s *UserServiceTestSuite) TestList() {
	users := []domain.User{{Username: "alice"}, {Username: "bob"}}
	s.mockUserRepo.EXPECT().List(gomock.Any()).Return(users, nil)

	got, err := s.userService.List(s.T().Context())
	s.Require().NoError(err)
	s.Equal(users, got)
}

func (s *UserServiceTestSuite) TestGetPortfolio() {
	holdings := []domain.Holding{
		{Symbol: "AAPL", Name: "Apple", Class: domain.AssetClassEquity, Quantity: dec("17")},
		{Symbol: "BTCUSD", Name: "Bitcoin  / US Dollar", Class: domain.AssetClassCrypto, Quantity: dec("0.5")},
	}

	cases := []struct {
		name        string
		username    string
		setup       func()
		wantErr     error
		wantBalance string
		wantLen     int
	}{
		{
			name:     "funded user",
			username: "alice",
			setup: func() {
				s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
					Return(&domain.User{Username: "alice"}, nil)
				s.mockBalanceRepo.EXPECT().FindByUsername(gomock.Any(), "alice").
					Return(&domain.Balance{Amount: dec("98823.30")}, nil)
				s.mockHoldingRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(holdings, nil)
			},
			wantBalance: "98823.3",
			wantLen:     2,
		},
		{
			name:     "unfunded user",
			username: "bob",
			setup: func() {
				s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "bob").
					Return(&domain.User{Username: "bob"}, nil)
				s.mockBalanceRepo.EXPECT().FindByUsername(gomock.Any(), "bob").
					Return(nil, domain.ErrRecordNotFound)
				s.mockHoldingRepo.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)
			},
		},
		{
			name:     "unknown user",
			username: "ghost",
			setup: func() {
				s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:     "balance lookup failure",
			username: "carol",
			setup: func() {
				s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "carol").
					Return(&domain.User{Username: "carol"}, nil)
				s.mockBalanceRepo.EXPECT().FindByUsername(gomock.Any(), "carol").
					Return(nil, domain.ErrUnknown)
			},
			wantErr: domain.ErrUnknown,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.setup()
			portfolio, err := s.userService.GetPortfolio(s.T().Context(), tc.username)
			s.Require().ErrorIs(err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			s.Equal(tc.username, portfolio.Username)
			s.Len(portfolio.Holdings, tc.wantLen)
			if tc.wantBalance == "" {
				s.Nil(portfolio.Balance)
			} else {
				s.Require().NotNil(portfolio.Balance)
				s.Equal(tc.wantBalance, portfolio.Balance.String())
			}
		})
	}
}
