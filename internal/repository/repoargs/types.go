package repoargs

type RepositoryName string

const (
	UserRepoName     RepositoryName = "user"
	BalanceRepoName  RepositoryName = "balance"
	AssetRepoName    RepositoryName = "asset"
	HoldingRepoName  RepositoryName = "holding"
	TransferRepoName RepositoryName = "transfer"
	TradeRepoName    RepositoryName = "trade"
)
