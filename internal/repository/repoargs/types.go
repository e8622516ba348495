package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	CashboxRepoName     RepositoryName = "cashbox"
	MovementRepoName    RepositoryName = "cash_movement"
	ExplanationRepoName RepositoryName = "explanation_request"
)
