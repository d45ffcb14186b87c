package errors

import "github.com/pkg/errors"

var (
	// numbering errors
	ErrNoArchivedInvoices = errors.New("no archived invoices found under key prefix")

	// extraction errors
	ErrMissingInvoiceAmount = errors.New("extraction marked email as invoice request but returned no amount")

	// mailbox errors
	ErrEmptyMessageBody = errors.New("message has no readable body")
)
