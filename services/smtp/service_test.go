package smtp

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/internal/logger"
)

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func TestBuildMessage_WithAttachment(t *testing.T) {
	// Arrange: a small fake PDF on disk
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "Bhavesh Invoice 013.pdf")
	pdfContent := []byte("%PDF-1.4 fake invoice content")
	require.NoError(t, os.WriteFile(pdfPath, pdfContent, 0o644))

	client := &SMTPClient{
		cfg: &config.MailboxConfig{EmailAddress: "bhavesh@example.com"},
		log: getLogger(),
	}

	// Act
	buffer, err := client.buildMessage(context.Background(), "client@example.com", "Bhavesh's Invoice #13 dated 30 April 2025", "Please find attached", pdfPath)

	// Assert
	require.NoError(t, err)
	message := buffer.String()

	assert.Contains(t, message, "From: bhavesh@example.com")
	assert.Contains(t, message, "To: client@example.com")
	assert.Contains(t, message, "Subject: Bhavesh's Invoice #13 dated 30 April 2025")
	assert.Contains(t, message, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, message, "Message-ID: <")

	assert.Contains(t, message, "Content-Transfer-Encoding: quoted-printable")
	assert.Contains(t, message, "Please find attached")

	// attachment part carries the file's base name and base64 body
	assert.Contains(t, message, `Content-Disposition: attachment; filename="Bhavesh Invoice 013.pdf"`)
	assert.Contains(t, message, `Content-Type: application/pdf; name="Bhavesh Invoice 013.pdf"`)
	assert.Contains(t, message, base64.StdEncoding.EncodeToString(pdfContent))
}

func TestBuildMessage_HeaderOrderIsFixed(t *testing.T) {
	client := &SMTPClient{
		cfg: &config.MailboxConfig{EmailAddress: "bhavesh@example.com"},
		log: getLogger(),
	}

	buffer, err := client.buildMessage(context.Background(), "client@example.com", "subject", "body", "")
	require.NoError(t, err)
	message := buffer.String()

	// headers appear in a stable order, not whatever a map iteration yields
	order := []string{"From:", "To:", "Subject:", "Date:", "Message-ID:", "MIME-Version:", "Content-Type:"}
	last := -1
	for _, header := range order {
		idx := strings.Index(message, header)
		require.GreaterOrEqual(t, idx, 0, header)
		assert.Greater(t, idx, last, header)
		last = idx
	}
}

func TestBuildMessage_WithoutAttachment(t *testing.T) {
	client := &SMTPClient{
		cfg: &config.MailboxConfig{EmailAddress: "bhavesh@example.com"},
		log: getLogger(),
	}

	buffer, err := client.buildMessage(context.Background(), "client@example.com", "hello", "just text", "")

	require.NoError(t, err)
	message := buffer.String()
	assert.Contains(t, message, "just text")
	assert.NotContains(t, message, "Content-Disposition: attachment")
}

func TestSend_RejectsInvalidRecipient(t *testing.T) {
	client := &SMTPClient{
		cfg: &config.MailboxConfig{EmailAddress: "bhavesh@example.com"},
		log: getLogger(),
	}

	err := client.Send(context.Background(), "not-an-address", "subject", "body", "")

	assert.Error(t, err)
}
