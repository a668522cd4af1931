package accounts

// Account is an employee's login account. The account ID is a natural
// key supplied by the caller, not generated.
type Account struct {
	AccountID     string `json:"account_id"`
	EmployeeID    string `json:"employee_id"`
	AccountEmail  string `json:"account_email"`
	PasswordHash  string `json:"-"`
	AccountType   string `json:"account_type"`
	AccountStatus string `json:"account_status"`
}

type Input struct {
	AccountID     string
	EmployeeID    string
	AccountEmail  string
	AccountPass   string
	AccountType   string
	AccountStatus string
}
