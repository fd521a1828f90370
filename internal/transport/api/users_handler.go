package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	userService    UserServicer
	fundingService FundingServicer
}

func NewUsersHandler(userService UserServicer, fundingService FundingServicer) *UsersHandler {
	return &UsersHandler{
		userService:    userService,
		fundingService: fundingService,
	}
}

// UserURIParams пользователь, от имени которого выполняется запрос.
type UserURIParams struct {
	Username string `binding:"required,max_bytes=255" uri:"username"`
}

type UsersResponseItem struct {
	Username string `json:"username"`
}

type UsersResponse struct {
	Users []UsersResponseItem `json:"users"`
}

// Index GET RouteGroup + UsersRoute. Список пользователей, отсортированный по имени.
func (h *UsersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userService.List(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := UsersResponse{Users: make([]UsersResponseItem, len(users))}
	for i, user := range users {
		response.Users[i] = UsersResponseItem{Username: user.Username}
	}
	c.JSON(http.StatusOK, response)
}

type UserAssetResponse struct {
	Quantity string                `json:"assetQuantity"`
	Symbol   string                `json:"assetSymbol"`
	Name     string                `json:"assetName"`
	Class    domain.AssetClassType `json:"assetClass"`
}

type UserResponse struct {
	Username       string              `json:"username"`
	AccountBalance *string             `json:"accountBalance"`
	Assets         []UserAssetResponse `json:"assets"`
}

// Show GET RouteGroup + UserRoute. Баланс и активы пользователя.
// Баланс null, если счет ни разу не пополнялся.
func (h *UsersHandler) Show(c *gin.Context) {
	var params UserURIParams
	if bindErr := c.ShouldBindUri(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	portfolio, err := h.userService.GetPortfolio(ctx, params.Username)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := UserResponse{
		Username: portfolio.Username,
		Assets:   make([]UserAssetResponse, len(portfolio.Holdings)),
	}
	if portfolio.Balance != nil {
		balance := portfolio.Balance.StringFixed(domain.MoneyScale)
		response.AccountBalance = &balance
	}
	for i, holding := range portfolio.Holdings {
		response.Assets[i] = UserAssetResponse{
			Quantity: holding.Quantity.String(),
			Symbol:   holding.Symbol,
			Name:     holding.Name,
			Class:    holding.Class,
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": response})
}

type FundResponse struct {
	Message        string `json:"message"`
	AccountBalance string `json:"accountBalance"`
}

// Fund POST RouteGroup + FundRoute. Заменяет баланс пользователя фиксированной суммой.
func (h *UsersHandler) Fund(c *gin.Context) {
	var params UserURIParams
	if bindErr := c.ShouldBindUri(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.fundingService.Fund(ctx, params.Username)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &FundResponse{
		Message:        "Account funded successfully.",
		AccountBalance: balance.Amount.StringFixed(domain.MoneyScale),
	})
}
