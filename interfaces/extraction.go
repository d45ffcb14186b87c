package interfaces

import (
	"context"

	"github.com/cellstrat/invoicestack/dto"
)

// ExtractionService decides whether an email body is an invoice request and
// pulls out the amount and an explicit date when one is stated. Pluggable so
// the model backend can be swapped for a rule-based one in tests.
type ExtractionService interface {
	ExtractInvoiceParams(ctx context.Context, emailBody string) (*dto.InvoiceParams, error)
}
