package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RouteAsset       = "/v2/assets/%s"
	RouteStockQuote  = "/v2/stocks/%s/quotes/latest"
	RouteCryptoQuote = "/v1beta3/crypto/us/latest/quotes"
)

const (
	headerKeyID     = "APCA-API-KEY-ID"
	headerSecretKey = "APCA-API-SECRET-KEY"
)

const defaultTimeout = 10 * time.Second

type AssetClassType string

const (
	AssetClassUSEquity AssetClassType = "us_equity"
	AssetClassCrypto   AssetClassType = "crypto"
)

type AssetResponse struct {
	ID       string         `json:"id"`
	Class    AssetClassType `json:"class"`
	Symbol   string         `json:"symbol"`
	Name     string         `json:"name"`
	Status   string         `json:"status"`
	Tradable bool           `json:"tradable"`
}

type QuoteResponse struct {
	AskPrice decimal.Decimal `json:"ap"`
	BidPrice decimal.Decimal `json:"bp"`
	Time     time.Time       `json:"t"`
}

type stockQuoteResponse struct {
	Symbol string        `json:"symbol"`
	Quote  QuoteResponse `json:"quote"`
}

type cryptoQuotesResponse struct {
	Quotes map[string]QuoteResponse `json:"quotes"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type Config struct {
	TradingURL string
	DataURL    string
	KeyID      string
	SecretKey  string
	Timeout    time.Duration
}

// HTTPClient клиент торгового API и API рыночных данных Alpaca.
type HTTPClient struct {
	conf       Config
	httpClient *http.Client
}

func New(conf Config) HTTPClient {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return HTTPClient{
		conf:       conf,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetAsset возвращает описание актива из торгового API.
func (c HTTPClient) GetAsset(ctx context.Context, symbol string) (*AssetResponse, error) {
	var response AssetResponse
	if err := c.getJSON(ctx, c.conf.TradingURL+fmt.Sprintf(RouteAsset, url.PathEscape(symbol)), &response); err != nil {
		return nil, fmt.Errorf("get asset `%s`: %w", symbol, err)
	}
	return &response, nil
}

// GetStockQuote возвращает последнюю котировку акции.
func (c HTTPClient) GetStockQuote(ctx context.Context, symbol string) (*QuoteResponse, error) {
	var response stockQuoteResponse
	if err := c.getJSON(ctx, c.conf.DataURL+fmt.Sprintf(RouteStockQuote, url.PathEscape(symbol)), &response); err != nil {
		return nil, fmt.Errorf("get stock quote `%s`: %w", symbol, err)
	}
	return &response.Quote, nil
}

// GetCryptoQuote возвращает последнюю котировку криптовалютной пары (например BTC/USD).
// Если в ответе нет котировки пары, возвращает ErrSymbolNotQuoted.
func (c HTTPClient) GetCryptoQuote(ctx context.Context, symbol string) (*QuoteResponse, error) {
	query := url.Values{}
	query.Set("symbols", symbol)

	var response cryptoQuotesResponse
	if err := c.getJSON(ctx, c.conf.DataURL+RouteCryptoQuote+"?"+query.Encode(), &response); err != nil {
		return nil, fmt.Errorf("get crypto quote `%s`: %w", symbol, err)
	}
	quote, ok := response.Quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("get crypto quote `%s`: %w", symbol, ErrSymbolNotQuoted)
	}
	return &quote, nil
}

// getJSON выполняет GET запрос и разбирает JSON ответ в dst. При ответе со статусом отличным от
// http.StatusOK возвращает StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) getJSON(ctx context.Context, rawURL string, dst any) (err error) {
	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.conf.KeyID != "" {
		req.Header.Set(headerKeyID, c.conf.KeyID)
		req.Header.Set(headerSecretKey, c.conf.SecretKey)
	}

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		return NewStatusCodeError(resp.StatusCode, errResp.Message)
	}

	if jsonErr := json.Unmarshal(body, dst); jsonErr != nil {
		return fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return nil
}
