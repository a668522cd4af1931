package payslips

import "time"

// Payslip numbers are 9-digit zero-padded sequences shared across all
// years; there is no scope prefix.
type Payslip struct {
	PayslipNo      string    `json:"payslip_no"`
	EmployeeID     string    `json:"employee_id"`
	BankAccount    string    `json:"bank_account"`
	TotalSalary    float64   `json:"total_salary"`
	PersonInCharge string    `json:"person_in_charge"`
	CutoffDate     time.Time `json:"cutoff_date"`
	DateOfPayment  time.Time `json:"date_of_payment"`
	PaymentStatus  string    `json:"payment_status"`
}

// Detail is the payslip joined with the employee's name and banking
// details at read time. Nothing is cached across resources; the join
// happens on every read.
type Detail struct {
	PayslipNo      string    `json:"payslip_no"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	BankAccount    string    `json:"bank_account"`
	PreferredBank  string    `json:"preferred_bank"`
	TotalSalary    float64   `json:"total_salary"`
	PersonInCharge string    `json:"person_in_charge"`
	CutoffDate     time.Time `json:"cutoff_date"`
	DateOfPayment  time.Time `json:"date_of_payment"`
	PaymentStatus  string    `json:"payment_status"`
}

// Input carries dates as strings so the service can report bad values
// alongside the other validation issues.
type Input struct {
	EmployeeID     string
	BankAccount    string
	TotalSalary    float64
	PersonInCharge string
	CutoffDate     string
	DateOfPayment  string
	PaymentStatus  string
}
