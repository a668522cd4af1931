package users

// User is an application login for the admin tool itself, unrelated to
// employee accounts.
type User struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type Input struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
}
