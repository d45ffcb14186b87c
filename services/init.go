package services

import (
	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/interfaces"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/services/ai"
	"github.com/cellstrat/invoicestack/services/imap"
	"github.com/cellstrat/invoicestack/services/numbering"
	"github.com/cellstrat/invoicestack/services/orchestrator"
	"github.com/cellstrat/invoicestack/services/renderer"
	"github.com/cellstrat/invoicestack/services/smtp"
	"github.com/cellstrat/invoicestack/services/storage"
)

type Services struct {
	MailboxService      interfaces.MailboxService
	ExtractionService   interfaces.ExtractionService
	RendererService     interfaces.RendererService
	DeliveryService     interfaces.DeliveryService
	StorageService      interfaces.StorageService
	NumberingService    interfaces.NumberingService
	OrchestratorService interfaces.OrchestratorService
}

func InitServices(cfg *config.Config, log logger.Logger) (*Services, error) {
	mailboxService, err := imap.NewIMAPService(cfg.MailboxConfig, log)
	if err != nil {
		return nil, err
	}

	storageService := storage.NewS3StorageService(cfg.StorageConfig, log)
	numberingService := numbering.NewNumberingService(storageService, cfg.InvoiceConfig.KeyPrefix, log)
	extractionService := ai.NewExtractionService(cfg.ExtractionConfig)
	rendererService := renderer.NewRendererService(cfg.InvoiceConfig, log)
	deliveryService := smtp.NewSMTPClient(cfg.MailboxConfig, log)

	services := Services{
		MailboxService:    mailboxService,
		ExtractionService: extractionService,
		RendererService:   rendererService,
		DeliveryService:   deliveryService,
		StorageService:    storageService,
		NumberingService:  numberingService,
		OrchestratorService: orchestrator.NewOrchestratorService(
			mailboxService,
			numberingService,
			extractionService,
			rendererService,
			deliveryService,
			storageService,
			cfg.InvoiceConfig.KeyPrefix,
			log,
		),
	}

	return &services, nil
}
