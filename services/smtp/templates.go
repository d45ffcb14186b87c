package smtp

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/cellstrat/invoicestack/internal/models"
	"github.com/cellstrat/invoicestack/internal/utils"
)

const invoiceSubjectTemplate = "Bhavesh's Invoice #%d dated %s"

const invoiceBodyTemplate = `
Hi,

Please find the attached my invoice for the month of %s.

Invoice number: %d
Invoice date: %s
Invoice amount: %d


Thanks,
Bhavesh
`

// ComposeInvoiceEmail produces the reply subject and body for an invoice.
// The body names the previous calendar month, computed from the invoice
// date.
func ComposeInvoiceEmail(record models.InvoiceRecord) (string, string, error) {
	invoiceDate, err := time.Parse(utils.DisplayDateLayout, record.Date)
	if err != nil {
		return "", "", errors.Wrapf(err, "unparseable invoice date %q", record.Date)
	}

	previousMonth := utils.PreviousMonthName(invoiceDate)

	subject := fmt.Sprintf(invoiceSubjectTemplate, record.InvoiceNumber, record.Date)
	body := fmt.Sprintf(invoiceBodyTemplate, previousMonth, record.InvoiceNumber, record.Date, record.Amount)

	return subject, body, nil
}

func (s *SMTPClient) SendInvoice(ctx context.Context, record models.InvoiceRecord, pdfPath string) error {
	subject, body, err := ComposeInvoiceEmail(record)
	if err != nil {
		return err
	}

	return s.Send(ctx, record.Email.FromAddress, subject, body, pdfPath)
}
