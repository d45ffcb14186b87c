package numbering

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/opentracing/opentracing-go"

	"github.com/cellstrat/invoicestack/interfaces"
	ierrors "github.com/cellstrat/invoicestack/internal/errors"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/internal/tracing"
)

// numberingService derives invoice sequence numbers from the archived PDF
// filenames. The key namespace is the de-facto counter: it is read once per
// run and never re-validated, so two overlapping runs can be handed the same
// number.
type numberingService struct {
	storage   interfaces.StorageService
	keyPrefix string
	log       logger.Logger
}

func NewNumberingService(storage interfaces.StorageService, keyPrefix string, log logger.Logger) interfaces.NumberingService {
	return &numberingService{
		storage:   storage,
		keyPrefix: keyPrefix,
		log:       log,
	}
}

func (s *numberingService) NextInvoiceNumber(ctx context.Context) (int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "numberingService.NextInvoiceNumber")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	keys, err := s.storage.ListKeys(ctx, s.keyPrefix)
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}

	maxNumber := -1
	for _, key := range keys {
		number, ok := parseInvoiceNumber(key)
		if !ok {
			// gap-tolerant: skip, but loudly, so a naming-convention
			// violation cannot hide in the listing
			s.log.Warnf("Skipping key with unparseable invoice number: %s", key)
			continue
		}
		if number > maxNumber {
			maxNumber = number
		}
	}

	if maxNumber < 0 {
		// no base case: the first ever run needs a seeded placeholder object
		tracing.TraceErr(span, ierrors.ErrNoArchivedInvoices)
		return 0, ierrors.ErrNoArchivedInvoices
	}

	span.SetTag("next_invoice_number", maxNumber+1)
	return maxNumber + 1, nil
}

// parseInvoiceNumber extracts the trailing whitespace-delimited numeric
// token from a key, extension stripped, e.g.
// "cellstrat_invoices/Bhavesh Invoice 012.pdf" -> 12.
func parseInvoiceNumber(key string) (int, bool) {
	base := strings.TrimSuffix(key, filepath.Ext(key))
	fields := strings.Fields(base)
	if len(fields) == 0 {
		return 0, false
	}

	number, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return number, true
}
