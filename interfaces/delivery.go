package interfaces

import (
	"context"

	"github.com/cellstrat/invoicestack/internal/models"
)

type DeliveryService interface {
	// Send delivers a plain-text email, attaching the file at attachmentPath
	// when it is non-empty.
	Send(ctx context.Context, to, subject, body, attachmentPath string) error
	// SendInvoice composes the invoice reply from the record and sends it
	// back to the requester with the PDF attached.
	SendInvoice(ctx context.Context, record models.InvoiceRecord, pdfPath string) error
}
