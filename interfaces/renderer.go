package interfaces

import "context"

type RendererService interface {
	// Render produces the invoice PDF and returns its path on local disk.
	Render(ctx context.Context, invoiceNumber int, date string, amount int) (string, error)
}
