package repoargs

type CreateUser struct {
	Name     string
	Email    string
	Password string
}

type CreateCustomer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
