package imap

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/emersion/go-imap"
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

func newTestService(t *testing.T, approvedSenders ...string) *IMAPService {
	svc, err := NewIMAPService(&config.MailboxConfig{
		ApprovedSenders: approvedSenders,
	}, getLogger())
	require.NoError(t, err)
	return svc.(*IMAPService)
}

func makeMessage(from string, date time.Time, subject, bodyText string, section *imap.BodySectionName) *imap.Message {
	raw := fmt.Sprintf(
		"From: %s\r\nTo: bhavesh@example.com\r\nSubject: %s\r\nDate: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		from, subject, date.Format(time.RFC1123Z), bodyText,
	)

	mailbox, host := splitAddress(from)
	return &imap.Message{
		Envelope: &imap.Envelope{
			From:    []*imap.Address{{MailboxName: mailbox, HostName: host}},
			Date:    date,
			Subject: subject,
		},
		Body: map[*imap.BodySectionName]imap.Literal{
			section: bytes.NewBufferString(raw),
		},
	}
}

func splitAddress(addr string) (string, string) {
	for i := 0; i < len(addr); i++ {
		if addr[i] == '@' {
			return addr[:i], addr[i+1:]
		}
	}
	return addr, ""
}

func TestProcessMessage_ApprovedSenderCaseInsensitive(t *testing.T) {
	// Arrange: approved list entry has mixed case and padding
	svc := newTestService(t, " Client@Example.COM ")
	section := &imap.BodySectionName{}
	received := time.Date(2025, 4, 30, 10, 30, 0, 0, time.UTC)
	msg := makeMessage("CLIENT@example.com", received, "Invoice please", "please send invoice for 25000", section)

	// Act
	email, keep, err := svc.processMessage(msg, section, received.Add(-time.Hour))

	// Assert
	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, "client@example.com", email.FromAddress)
	assert.Equal(t, "Invoice please", email.Subject)
	assert.Contains(t, email.BodyText, "please send invoice for 25000")
	// 10:30 UTC is 16:00 IST, same calendar day
	assert.Equal(t, "30 April 2025", email.Date)
}

func TestProcessMessage_NonApprovedSenderSkipped(t *testing.T) {
	svc := newTestService(t, "client@example.com")
	section := &imap.BodySectionName{}
	received := time.Now()
	msg := makeMessage("stranger@example.com", received, "hello", "hi", section)

	_, keep, err := svc.processMessage(msg, section, received.Add(-time.Hour))

	require.NoError(t, err)
	assert.False(t, keep)
}

func TestProcessMessage_PreWindowMessageSkipped(t *testing.T) {
	svc := newTestService(t, "client@example.com")
	section := &imap.BodySectionName{}
	since := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	// received one second before the window opens
	msg := makeMessage("client@example.com", since.Add(-time.Second), "late", "old mail", section)

	_, keep, err := svc.processMessage(msg, section, since)

	require.NoError(t, err)
	assert.False(t, keep)
}

func TestProcessMessage_DateCrossesIntoNextDayInIST(t *testing.T) {
	svc := newTestService(t, "client@example.com")
	section := &imap.BodySectionName{}
	// 20:00 UTC on the 30th is 01:30 IST on the 1st
	received := time.Date(2025, 4, 30, 20, 0, 0, 0, time.UTC)
	msg := makeMessage("client@example.com", received, "Invoice", "invoice for 1000", section)

	email, keep, err := svc.processMessage(msg, section, received.Add(-time.Hour))

	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, "1 May 2025", email.Date)
}

func TestCollectMessages_DrainsStreamAfterBadMessage(t *testing.T) {
	// Arrange: an unbuffered stream where the first message is malformed
	// (no envelope) and many valid ones follow. The producer blocks on
	// every send, so collectMessages must keep receiving past the failure
	// or the producer never finishes.
	svc := newTestService(t, "client@example.com")
	section := &imap.BodySectionName{}
	received := time.Now()

	messages := make(chan *imap.Message)
	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		messages <- &imap.Message{}
		for i := 0; i < 20; i++ {
			messages <- makeMessage("client@example.com", received, "Invoice", "invoice for 1000", section)
		}
		close(messages)
	}()

	// Act
	scanned, err := svc.collectMessages(messages, section, received.Add(-time.Hour))

	// Assert: the first error is reported and nothing is kept, but the
	// producer was still able to send its whole stream
	assert.Error(t, err)
	assert.Empty(t, scanned)

	select {
	case <-producerDone:
	case <-time.After(5 * time.Second):
		t.Fatal("producer still blocked, message stream was not drained")
	}
}

func TestProcessMessage_MissingBodyIsError(t *testing.T) {
	svc := newTestService(t, "client@example.com")
	section := &imap.BodySectionName{}
	received := time.Now()
	msg := makeMessage("client@example.com", received, "Invoice", "body", section)
	msg.Body = nil

	_, _, err := svc.processMessage(msg, section, received.Add(-time.Hour))

	assert.Error(t, err)
}
