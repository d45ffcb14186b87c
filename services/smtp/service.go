package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"github.com/customeros/mailsherpa/mailvalidate"
	"github.com/opentracing/opentracing-go"

	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/interfaces"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/internal/tracing"
	"github.com/cellstrat/invoicestack/internal/utils"
)

type SMTPClient struct {
	cfg *config.MailboxConfig
	log logger.Logger
}

func NewSMTPClient(cfg *config.MailboxConfig, log logger.Logger) interfaces.DeliveryService {
	return &SMTPClient{
		cfg: cfg,
		log: log,
	}
}

// Send builds a multipart MIME message and submits it over STARTTLS. There
// is no retry; a transport error is returned to the caller as-is.
func (s *SMTPClient) Send(ctx context.Context, to, subject, body, attachmentPath string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SMTPClient.Send")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag("to", to)

	validation := mailvalidate.ValidateEmailSyntax(to)
	if !validation.IsValid {
		err := fmt.Errorf("recipient address is not valid: %s", to)
		tracing.TraceErr(span, err)
		return err
	}

	buffer, err := s.buildMessage(ctx, to, subject, body, attachmentPath)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	err = s.sendWithSTARTTLS(ctx, s.cfg.EmailAddress, []string{to}, buffer)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	s.log.Infof("Sent email to %s: %s", to, subject)
	return nil
}

// buildMessage assembles the MIME multipart message: a quoted-printable
// text part plus an optional base64 attachment named after the file's base
// name
func (s *SMTPClient) buildMessage(ctx context.Context, to, subject, body, attachmentPath string) (*bytes.Buffer, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "SMTPClient.buildMessage")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	buffer := bytes.NewBuffer(nil)
	writer := multipart.NewWriter(buffer)

	headers := []headerField{
		{"From", s.cfg.EmailAddress},
		{"To", to},
		{"Subject", subject},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"Message-ID", utils.GenerateMessageID(utils.ExtractDomainFromEmail(s.cfg.EmailAddress))},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/mixed; boundary=" + writer.Boundary()},
	}
	writeHeaders(headers, buffer)

	if err := addTextPart(writer, body); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	if attachmentPath != "" {
		if err := addAttachment(writer, attachmentPath); err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return buffer, nil
}

type headerField struct {
	name  string
	value string
}

// writeHeaders writes email headers to the buffer in their given order
func writeHeaders(headers []headerField, buffer *bytes.Buffer) {
	for _, h := range headers {
		buffer.WriteString(fmt.Sprintf("%s: %s\r\n", h.name, h.value))
	}
	buffer.WriteString("\r\n")
}

func addTextPart(writer *multipart.Writer, content string) error {
	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/plain; charset=UTF-8"},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return fmt.Errorf("failed to create text part: %w", err)
	}

	qp := quotedprintable.NewWriter(textPart)
	if _, err = qp.Write([]byte(content)); err != nil {
		return fmt.Errorf("failed to write text content: %w", err)
	}
	return qp.Close()
}

func addAttachment(writer *multipart.Writer, attachmentPath string) error {
	content, err := os.ReadFile(attachmentPath)
	if err != nil {
		return fmt.Errorf("failed to read attachment: %w", err)
	}

	filename := filepath.Base(attachmentPath)
	attachmentPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {fmt.Sprintf("application/pdf; name=%q", filename)},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", filename)},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return fmt.Errorf("failed to create attachment part: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(content)
	// wrap base64 at 76 columns per RFC 2045
	for len(encoded) > 0 {
		lineLen := 76
		if len(encoded) < lineLen {
			lineLen = len(encoded)
		}
		if _, err = attachmentPart.Write([]byte(encoded[:lineLen] + "\r\n")); err != nil {
			return fmt.Errorf("failed to write attachment content: %w", err)
		}
		encoded = encoded[lineLen:]
	}

	return nil
}

func (s *SMTPClient) sendWithSTARTTLS(ctx context.Context, from string, recipients []string, buffer *bytes.Buffer) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "SMTPClient.sendWithSTARTTLS")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.LogKV("smtp_server", s.cfg.SmtpServer)
	span.LogKV("smtp_port", s.cfg.SmtpPort)

	addr := fmt.Sprintf("%s:%d", s.cfg.SmtpServer, s.cfg.SmtpPort)
	auth := smtp.PlainAuth("", s.cfg.EmailAddress, s.cfg.EmailPassword, s.cfg.SmtpServer)

	// Connect to the server without TLS first
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.SmtpServer)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: s.cfg.SmtpServer,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	// Authenticate after TLS is established
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("SMTP MAIL command failed: %w", err)
	}

	for _, recipient := range recipients {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("SMTP RCPT command failed for %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA command failed: %w", err)
	}

	if _, err = w.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("failed to write message data: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close message data: %w", err)
	}

	return client.Quit()
}
