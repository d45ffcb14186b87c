package orchestrator

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/cellstrat/invoicestack/dto"
	"github.com/cellstrat/invoicestack/interfaces"
	ierrors "github.com/cellstrat/invoicestack/internal/errors"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/internal/models"
	"github.com/cellstrat/invoicestack/internal/tracing"
	"github.com/cellstrat/invoicestack/internal/utils"
)

// orchestratorService sequences one batch run:
// scan -> number -> classify -> render -> deliver -> archive.
// Strictly sequential; invoice numbers are assigned in scan order, each one
// previous maximum + 1. A render or delivery failure aborts the remainder of
// the batch; only archival failures are non-fatal.
type orchestratorService struct {
	mailbox    interfaces.MailboxService
	numbering  interfaces.NumberingService
	extraction interfaces.ExtractionService
	renderer   interfaces.RendererService
	delivery   interfaces.DeliveryService
	storage    interfaces.StorageService
	keyPrefix  string
	log        logger.Logger
}

func NewOrchestratorService(
	mailbox interfaces.MailboxService,
	numbering interfaces.NumberingService,
	extraction interfaces.ExtractionService,
	renderer interfaces.RendererService,
	delivery interfaces.DeliveryService,
	storage interfaces.StorageService,
	keyPrefix string,
	log logger.Logger,
) interfaces.OrchestratorService {
	return &orchestratorService{
		mailbox:    mailbox,
		numbering:  numbering,
		extraction: extraction,
		renderer:   renderer,
		delivery:   delivery,
		storage:    storage,
		keyPrefix:  keyPrefix,
		log:        log,
	}
}

func (s *orchestratorService) Run(ctx context.Context) (*dto.RunResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "orchestratorService.Run")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	runID := utils.GenerateRunID()
	span.SetTag("run_id", runID)
	s.log.Infof("Starting invoice run %s", runID)

	// scan window starts at midnight UTC of the current day
	since := utils.StartOfDayUTC(time.Now())

	emails, err := s.mailbox.Scan(ctx, since)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	s.log.Infof("Scanned %d qualifying emails", len(emails))

	// the listing is read once here and not re-validated; overlapping runs
	// can be handed the same number
	nextNumber, err := s.numbering.NextInvoiceNumber(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	records, err := s.classify(ctx, emails, nextNumber)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	tracing.LogObjectAsJson(span, "invoice_records", records)

	pdfPaths := make([]string, len(records))
	for i, record := range records {
		path, err := s.renderer.Render(ctx, record.InvoiceNumber, record.Date, record.Amount)
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
		pdfPaths[i] = path
	}

	outcomes := make([]dto.InvoiceOutcome, 0, len(records))
	for i, record := range records {
		err = s.delivery.SendInvoice(ctx, record, pdfPaths[i])
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}

		filename := filepath.Base(pdfPaths[i])
		s.log.Infof("Sent invoice %s to %s", filename, record.Email.FromAddress)

		key := s.keyPrefix + filename
		archived := s.storage.Upload(ctx, pdfPaths[i], key)
		if archived {
			s.log.Infof("Uploaded invoice %s", key)
		}

		outcomes = append(outcomes, dto.InvoiceOutcome{
			InvoiceNumber: record.InvoiceNumber,
			Amount:        record.Amount,
			Recipient:     record.Email.FromAddress,
			PdfKey:        key,
			Sent:          true,
			Archived:      archived,
		})
	}

	s.log.Infof("Run %s processed %d invoices", runID, len(records))
	return &dto.RunResult{
		RunID:     runID,
		Processed: len(records),
		Invoices:  outcomes,
	}, nil
}

// classify asks the extraction service about each scanned email and assigns
// invoice numbers to the accepted ones in scan order. Emails that are not
// invoice requests consume no number.
func (s *orchestratorService) classify(ctx context.Context, emails []models.ScannedEmail, nextNumber int) ([]models.InvoiceRecord, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "orchestratorService.classify")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	var records []models.InvoiceRecord
	for _, email := range emails {
		payload, err := json.MarshalIndent(email, "", "  ")
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}

		params, err := s.extraction.ExtractInvoiceParams(ctx, string(payload))
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}

		if !params.IsInvoice {
			s.log.Infof("Email from %s is not an invoice request", email.FromAddress)
			continue
		}

		if params.InvoiceAmount == nil {
			tracing.TraceErr(span, ierrors.ErrMissingInvoiceAmount)
			return nil, errors.Wrapf(ierrors.ErrMissingInvoiceAmount, "email from %s", email.FromAddress)
		}

		records = append(records, models.InvoiceRecord{
			InvoiceNumber: nextNumber,
			Amount:        *params.InvoiceAmount,
			// when the model has no explicit date, the email's own date is
			// used
			Date:  utils.GetOrDefault(params.InvoiceDate, email.Date),
			Email: email,
		})
		nextNumber++
	}

	return records, nil
}
