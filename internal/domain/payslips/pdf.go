package payslips

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"paydesk/internal/platform/apperr"
)

// GeneratePDF renders the joined payslip detail to a PDF under the
// configured storage directory and returns the file path.
func (s *Service) GeneratePDF(ctx context.Context, payslipNo string) (string, error) {
	d, err := s.store.GetDetail(ctx, payslipNo)
	if err != nil {
		return "", apperr.Storage(err)
	}
	if d == nil {
		return "", apperr.NotFound("Payslip")
	}

	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return "", apperr.Storage(err)
	}
	filePath := filepath.Join(s.storageDir, d.PayslipNo+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip "+d.PayslipNo)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", d.EmployeeName, d.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bank: %s, account %s", d.PreferredBank, d.BankAccount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Cutoff date: %s", d.CutoffDate.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Date of payment: %s", d.DateOfPayment.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Total salary: %.2f", d.TotalSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", d.PaymentStatus))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Person in charge: %s", d.PersonInCharge))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", apperr.Storage(err)
	}
	return filePath, nil
}
