package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/logger"
	"github.com/fsdevblog/groph-swap/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-swap/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UsersHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockUserService    *mocks.MockUserServicer
	mockFundingService *mocks.MockFundingServicer
}

func TestUsersHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsersHandlerTestSuite))
}

func (s *UsersHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockFundingService = mocks.NewMockFundingServicer(mockCtrl)

	router, err := New(RouterArgs{
		Logger:         logger.New(io.Discard),
		UserService:    s.mockUserService,
		FundingService: s.mockFundingService,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *UsersHandlerTestSuite) request(method, target string) (int, []byte) {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    target,
	}, testutils.WithHeader("Accept", "application/json"))
	s.Require().NoError(err)
	return res.StatusCode, res.Body
}

func (s *UsersHandlerTestSuite) TestIndex() {
	s.mockUserService.EXPECT().List(gomock.Any()).
		Return([]domain.User{{Username: "alice"}, {Username: "bob"}}, nil)

	status, body := s.request(http.MethodGet, RouteGroup+UsersRoute)
	s.Require().Equal(http.StatusOK, status)

	var response UsersResponse
	s.Require().NoError(json.Unmarshal(body, &response))
	s.Equal([]UsersResponseItem{{Username: "alice"}, {Username: "bob"}}, response.Users)
}

func (s *UsersHandlerTestSuite) TestIndex_Empty() {
	s.mockUserService.EXPECT().List(gomock.Any()).Return(nil, nil)

	status, body := s.request(http.MethodGet, RouteGroup+UsersRoute)
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`{"users":[]}`, string(body))
}

func (s *UsersHandlerTestSuite) TestShow() {
	balance := decimal.RequireFromString("98823.3")
	s.mockUserService.EXPECT().GetPortfolio(gomock.Any(), "alice").Return(&domain.Portfolio{
		Username: "alice",
		Balance:  &balance,
		Holdings: []domain.Holding{
			{Symbol: "AAPL", Name: "Apple Inc. Common Stock", Class: domain.AssetClassEquity, Quantity: decimal.NewFromInt(5)},
		},
	}, nil)
	s.mockUserService.EXPECT().GetPortfolio(gomock.Any(), "bob").
		Return(&domain.Portfolio{Username: "bob"}, nil)
	s.mockUserService.EXPECT().GetPortfolio(gomock.Any(), "ghost").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		username   string
		wantStatus int
		wantBody   string
		wantError  string
	}{
		{
			name:       "funded user",
			username:   "alice",
			wantStatus: http.StatusOK,
			wantBody: `{"user":{"username":"alice","accountBalance":"98823.30","assets":[` +
				`{"assetQuantity":"5","assetSymbol":"AAPL","assetName":"Apple Inc. Common Stock","assetClass":"equity"}]}}`,
		},
		{
			name:       "unfunded user",
			username:   "bob",
			wantStatus: http.StatusOK,
			wantBody:   `{"user":{"username":"bob","accountBalance":null,"assets":[]}}`,
		},
		{
			name:       "unknown user",
			username:   "ghost",
			wantStatus: http.StatusNotFound,
			wantError:  "record not found",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.request(http.MethodGet, RouteGroup+"/users/"+t.username)
			s.Equal(t.wantStatus, status)
			if t.wantError != "" {
				s.Equal(t.wantError, testutils.ErrorText(body))
				return
			}
			s.JSONEq(t.wantBody, string(body))
		})
	}
}

func (s *UsersHandlerTestSuite) TestShow_UsernameTooLong() {
	s.mockUserService.EXPECT().GetPortfolio(gomock.Any(), gomock.Any()).Times(0)

	// 64 руны, но 256 байт.
	status, body := s.request(http.MethodGet, RouteGroup+"/users/"+url.PathEscape(testutils.GenerateOverBytesUnderRunes(64)))
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Contains(testutils.ErrorText(body), "max_bytes")
}

func (s *UsersHandlerTestSuite) TestFund() {
	s.mockFundingService.EXPECT().Fund(gomock.Any(), "alice").
		Return(&domain.Balance{Username: "alice", Amount: domain.FundingAmount}, nil)
	s.mockFundingService.EXPECT().Fund(gomock.Any(), "ghost").
		Return(nil, domain.ErrRecordNotFound)
	s.mockFundingService.EXPECT().Fund(gomock.Any(), "carol").
		Return(nil, domain.ErrTransactionFailed)

	cases := []struct {
		name       string
		username   string
		wantStatus int
	}{
		{name: "ok", username: "alice", wantStatus: http.StatusOK},
		{name: "unknown user", username: "ghost", wantStatus: http.StatusNotFound},
		{name: "transaction failed", username: "carol", wantStatus: http.StatusConflict},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.request(http.MethodPost, RouteGroup+"/users/"+t.username+"/fund")
			s.Require().Equal(t.wantStatus, status)
			if t.wantStatus == http.StatusOK {
				s.JSONEq(`{"message":"Account funded successfully.","accountBalance":"100000.00"}`, string(body))
			}
		})
	}
}
