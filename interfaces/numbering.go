package interfaces

import "context"

type NumberingService interface {
	// NextInvoiceNumber derives the next sequence number from the archived
	// invoice filenames. Read once per run and not re-validated, so two
	// overlapping runs can be handed the same number.
	NextInvoiceNumber(ctx context.Context) (int, error)
}
