package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type MiddlewaresTestSuite struct {
	suite.Suite
	hook   *test.Hook
	router *gin.Engine
}

func TestMiddlewaresSuite(t *testing.T) {
	suite.Run(t, new(MiddlewaresTestSuite))
}

func (s *MiddlewaresTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	l, hook := test.NewNullLogger()
	s.hook = hook

	s.router = gin.New()
	s.router.Use(Logger(l), Errors())
	s.router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestID": c.GetString(RequestIDKey)})
	})
	s.router.GET("/public", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusPaymentRequired, errors.New("insufficient funds")).
			SetType(gin.ErrorTypePublic)
	})
	s.router.GET("/private", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("db is down")).
			SetType(gin.ErrorTypePrivate)
	})
}

func (s *MiddlewaresTestSuite) serve(path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *MiddlewaresTestSuite) TestLogger_GeneratesRequestID() {
	rec := s.serve("/ok", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	requestID := rec.Header().Get(RequestIDHeader)
	s.Len(requestID, 36)

	entry := s.hook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.InfoLevel, entry.Level)
	s.Equal(requestID, entry.Data["requestID"])
	s.Equal("/ok", entry.Data["path"])
	s.Equal(http.StatusOK, entry.Data["status"])
}

func (s *MiddlewaresTestSuite) TestLogger_KeepsIncomingRequestID() {
	rec := s.serve("/ok", map[string]string{RequestIDHeader: "abc-1"})
	s.Equal("abc-1", rec.Header().Get(RequestIDHeader))
	s.JSONEq(`{"requestID":"abc-1"}`, rec.Body.String())
}

func (s *MiddlewaresTestSuite) TestErrors() {
	cases := []struct {
		name      string
		path      string
		wantCode  int
		wantError string
		wantLevel logrus.Level
	}{
		{
			name:      "public error text is exposed",
			path:      "/public",
			wantCode:  http.StatusPaymentRequired,
			wantError: "insufficient funds",
			wantLevel: logrus.WarnLevel,
		},
		{
			name:      "private error text is hidden",
			path:      "/private",
			wantCode:  http.StatusInternalServerError,
			wantError: "internal server error",
			wantLevel: logrus.ErrorLevel,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			rec := s.serve(t.path, map[string]string{"Accept": "application/json", RequestIDHeader: "req-1"})
			s.Equal(t.wantCode, rec.Code)

			var response ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(t.wantError, response.Error)
			s.Equal("req-1", response.RequestID)

			entry := s.hook.LastEntry()
			s.Require().NotNil(entry)
			s.Equal(t.wantLevel, entry.Level)
		})
	}

	// приватная ошибка попадает в лог.
	s.Contains(s.hook.LastEntry().Data["errors"], "db is down")
}

func (s *MiddlewaresTestSuite) TestErrors_PlainText() {
	rec := s.serve("/public", nil)
	s.Equal(http.StatusPaymentRequired, rec.Code)
	s.Equal("insufficient funds", rec.Body.String())
}
