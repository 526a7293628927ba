package repoargs

type RepositoryName string

const (
	UserRepoName     RepositoryName = "user"
	InvoiceRepoName  RepositoryName = "invoice"
	CustomerRepoName RepositoryName = "customer"
)
