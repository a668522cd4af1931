package banking

// Detail holds one employee's banking details; keyed by the employee
// ID.
type Detail struct {
	EmployeeID        string `json:"employee_id"`
	PreferredBank     string `json:"preferred_bank"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
}

type Input struct {
	EmployeeID        string
	PreferredBank     string
	BankAccountNumber string
	BankAccountName   string
}
