package interfaces

import (
	"context"
	"time"

	"github.com/cellstrat/invoicestack/internal/models"
)

type MailboxService interface {
	// Scan returns unread messages from approved senders received on or
	// after since. Fetching leaves the messages marked as read on the server.
	Scan(ctx context.Context, since time.Time) ([]models.ScannedEmail, error)
}
