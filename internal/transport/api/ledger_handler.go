package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LedgerHandler struct {
	transferService TransferServicer
	marketService   MarketServicer
}

func NewLedgerHandler(transferService TransferServicer, marketService MarketServicer) *LedgerHandler {
	return &LedgerHandler{
		transferService: transferService,
		marketService:   marketService,
	}
}

type SendFundsParams struct {
	UsernameReceiving string          `binding:"required,max_bytes=255" json:"usernameReceiving"`
	Amount            decimal.Decimal `binding:"required"               json:"amount"`
}

type TransferResponse struct {
	ID        int64  `json:"id"`
	Sender    string `json:"usernameSending"`
	Recipient string `json:"usernameReceiving"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"createdAt"`
}

type SendFundsResponse struct {
	Message  string           `json:"message"`
	Transfer TransferResponse `json:"transfer"`
}

// SendFunds POST RouteGroup + SendFundsRoute. Перевод средств другому пользователю.
func (h *LedgerHandler) SendFunds(c *gin.Context) {
	var uriParams UserURIParams
	if bindErr := c.ShouldBindUri(&uriParams); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	var params SendFundsParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transfer, err := h.transferService.Transfer(ctx, service.TransferArgs{
		Sender:    uriParams.Username,
		Recipient: params.UsernameReceiving,
		Amount:    params.Amount,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &SendFundsResponse{
		Message: "Funds sent successfully.",
		Transfer: TransferResponse{
			ID:        transfer.ID,
			Sender:    transfer.Sender,
			Recipient: transfer.Recipient,
			Amount:    transfer.Amount.StringFixed(domain.MoneyScale),
			CreatedAt: transfer.CreatedAt.Format(time.RFC3339),
		},
	})
}

type MarketTransactionParams struct {
	Symbol    string          `binding:"required,max_bytes=32" json:"symbol"`
	OrderType string          `binding:"required"              json:"orderType"`
	Amount    decimal.Decimal `binding:"required"              json:"amount"`
}

type TradeResponse struct {
	ID        int64                `json:"id"`
	Side      domain.TradeSideType `json:"orderType"`
	Symbol    string               `json:"symbol"`
	UnitPrice string               `json:"unitPrice"`
	Quantity  string               `json:"amount"`
	Total     string               `json:"total"`
}

type MarketTransactionResponse struct {
	Message string        `json:"message"`
	Trade   TradeResponse `json:"trade"`
}

// MarketTransaction POST RouteGroup + MarketTransactionRoute. Рыночная заявка на покупку или продажу.
// orderType - buy или sell, amount - количество актива.
func (h *LedgerHandler) MarketTransaction(c *gin.Context) {
	var uriParams UserURIParams
	if bindErr := c.ShouldBindUri(&uriParams); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	var params MarketTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, MarketServiceTimeout)
	defer cancel()

	result, err := h.marketService.Execute(ctx, service.MarketOrderArgs{
		Username: uriParams.Username,
		Symbol:   params.Symbol,
		Side:     domain.TradeSideType(params.OrderType),
		Quantity: params.Amount,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &MarketTransactionResponse{
		Message: "Transaction was successful.",
		Trade: TradeResponse{
			ID:        result.TradeID,
			Side:      result.Side,
			Symbol:    result.Symbol,
			UnitPrice: result.UnitPrice.String(),
			Quantity:  result.Quantity.String(),
			Total:     result.Total.StringFixed(domain.MoneyScale),
		},
	})
}
