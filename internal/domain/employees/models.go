package employees

// Employee's identifier is assigned at creation time: the current
// 4-digit year followed by a 5-digit sequence that restarts each year.
type Employee struct {
	EmployeeID    string `json:"employee_id"`
	FirstName     string `json:"firstname"`
	LastName      string `json:"lastname"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

type Input struct {
	FirstName     string
	LastName      string
	ContactNumber string
	Email         string
}
