package smtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellstrat/invoicestack/internal/models"
)

func TestComposeInvoiceEmail(t *testing.T) {
	// Arrange
	record := models.InvoiceRecord{
		InvoiceNumber: 13,
		Amount:        25000,
		Date:          "30 April 2025",
		Email: models.ScannedEmail{
			FromAddress: "client@example.com",
		},
	}

	// Act
	subject, body, err := ComposeInvoiceEmail(record)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Bhavesh's Invoice #13 dated 30 April 2025", subject)
	assert.Contains(t, body, "for the month of March")
	assert.Contains(t, body, "Invoice number: 13")
	assert.Contains(t, body, "Invoice date: 30 April 2025")
	assert.Contains(t, body, "Invoice amount: 25000")
}

func TestComposeInvoiceEmail_YearBoundary(t *testing.T) {
	record := models.InvoiceRecord{
		InvoiceNumber: 7,
		Amount:        50000,
		Date:          "2 January 2026",
	}

	_, body, err := ComposeInvoiceEmail(record)

	require.NoError(t, err)
	assert.Contains(t, body, "for the month of December")
}

func TestComposeInvoiceEmail_MonthEndDate(t *testing.T) {
	// 31-day months must not roll over during the subtraction
	record := models.InvoiceRecord{
		InvoiceNumber: 8,
		Amount:        10000,
		Date:          "31 July 2025",
	}

	_, body, err := ComposeInvoiceEmail(record)

	require.NoError(t, err)
	assert.Contains(t, body, "for the month of June")
}

func TestComposeInvoiceEmail_BadDate(t *testing.T) {
	record := models.InvoiceRecord{
		InvoiceNumber: 9,
		Amount:        10000,
		Date:          "April 30, 2025",
	}

	_, _, err := ComposeInvoiceEmail(record)

	assert.Error(t, err)
}
