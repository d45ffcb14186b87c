package imap

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/interfaces"
	"github.com/cellstrat/invoicestack/internal/logger"
)

// displayTimezone is the fixed timezone invoice dates are rendered in.
const displayTimezone = "Asia/Kolkata"

type IMAPService struct {
	cfg             *config.MailboxConfig
	log             logger.Logger
	approvedSenders map[string]bool
	displayLocation *time.Location
}

func NewIMAPService(cfg *config.MailboxConfig, log logger.Logger) (interfaces.MailboxService, error) {
	loc, err := time.LoadLocation(displayTimezone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load display timezone")
	}

	approved := make(map[string]bool, len(cfg.ApprovedSenders))
	for _, sender := range cfg.ApprovedSenders {
		approved[strings.ToLower(strings.TrimSpace(sender))] = true
	}

	return &IMAPService{
		cfg:             cfg,
		log:             log,
		approvedSenders: approved,
		displayLocation: loc,
	}, nil
}
