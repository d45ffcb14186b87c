package numbering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierrors "github.com/cellstrat/invoicestack/internal/errors"
	"github.com/cellstrat/invoicestack/internal/logger"
)

type fakeStorage struct {
	keys    []string
	err     error
	uploads map[string]string
}

func (f *fakeStorage) Upload(ctx context.Context, localPath, key string) bool {
	if f.uploads == nil {
		f.uploads = make(map[string]string)
	}
	f.uploads[key] = localPath
	return true
}

func (f *fakeStorage) Download(ctx context.Context, key, localPath string) bool {
	return true
}

func (f *fakeStorage) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	return f.keys, f.err
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func TestNextInvoiceNumber_SkipsMalformedKeys(t *testing.T) {
	// Arrange
	storage := &fakeStorage{
		keys: []string{
			"cellstrat_invoices/Bhavesh Invoice 007.pdf",
			"cellstrat_invoices/Bhavesh Invoice 012.pdf",
			"cellstrat_invoices/Bhavesh Invoice abc.pdf",
		},
	}
	svc := NewNumberingService(storage, "cellstrat_invoices/", getLogger())

	// Act
	next, err := svc.NextInvoiceNumber(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 13, next)
}

func TestNextInvoiceNumber_NumericNotLexicographic(t *testing.T) {
	storage := &fakeStorage{
		keys: []string{
			"cellstrat_invoices/Bhavesh Invoice 9.pdf",
			"cellstrat_invoices/Bhavesh Invoice 100.pdf",
		},
	}
	svc := NewNumberingService(storage, "cellstrat_invoices/", getLogger())

	next, err := svc.NextInvoiceNumber(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 101, next)
}

func TestNextInvoiceNumber_EmptyStoreFails(t *testing.T) {
	storage := &fakeStorage{keys: nil}
	svc := NewNumberingService(storage, "cellstrat_invoices/", getLogger())

	_, err := svc.NextInvoiceNumber(context.Background())

	assert.ErrorIs(t, err, ierrors.ErrNoArchivedInvoices)
}

func TestNextInvoiceNumber_OnlyMalformedKeysFails(t *testing.T) {
	storage := &fakeStorage{
		keys: []string{"cellstrat_invoices/Bhavesh Invoice draft.pdf"},
	}
	svc := NewNumberingService(storage, "cellstrat_invoices/", getLogger())

	_, err := svc.NextInvoiceNumber(context.Background())

	assert.ErrorIs(t, err, ierrors.ErrNoArchivedInvoices)
}

func TestParseInvoiceNumber(t *testing.T) {
	number, ok := parseInvoiceNumber("cellstrat_invoices/Bhavesh Invoice 042.pdf")
	assert.True(t, ok)
	assert.Equal(t, 42, number)

	_, ok = parseInvoiceNumber("cellstrat_invoices/")
	assert.False(t, ok)

	_, ok = parseInvoiceNumber("cellstrat_invoices/notes.txt")
	assert.False(t, ok)
}
