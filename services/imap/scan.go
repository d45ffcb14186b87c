package imap

import (
	"context"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/jhillyerd/enmime"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	ierrors "github.com/cellstrat/invoicestack/internal/errors"
	"github.com/cellstrat/invoicestack/internal/models"
	"github.com/cellstrat/invoicestack/internal/tracing"
	"github.com/cellstrat/invoicestack/internal/utils"
)

// Scan searches INBOX for unread messages received on or after since and
// returns the ones from approved senders. The server-side SINCE filter has
// day granularity; the received timestamp is re-checked client-side at
// second precision. Fetching without PEEK marks the messages as read, so a
// re-run before new mail arrives selects nothing.
func (s *IMAPService) Scan(ctx context.Context, since time.Time) ([]models.ScannedEmail, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "IMAPService.Scan")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag("since", since.Format(time.RFC3339))

	c, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer s.disconnect(c)

	_, err = c.Select("INBOX", false)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to select INBOX")
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	criteria.Since = since

	ids, err := c.Search(criteria)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "search failed")
	}
	span.SetTag("matched", len(ids))

	if len(ids) == 0 {
		return nil, nil
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(ids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{
		imap.FetchEnvelope,
		section.FetchItem(),
	}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqSet, items, messages)
	}()

	scanned, procErr := s.collectMessages(messages, section, since)

	if err := <-done; err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "fetch failed")
	}
	if procErr != nil {
		tracing.TraceErr(span, procErr)
		return nil, procErr
	}

	span.SetTag("scanned", len(scanned))
	return scanned, nil
}

// collectMessages consumes the full fetch stream. It must drain the channel
// even after a bad message, otherwise the fetch goroutine blocks sending
// into the full buffer and the connection is never released; the first
// processing error is remembered and returned once the stream ends.
func (s *IMAPService) collectMessages(messages <-chan *imap.Message, section *imap.BodySectionName, since time.Time) ([]models.ScannedEmail, error) {
	var scanned []models.ScannedEmail
	var procErr error
	for msg := range messages {
		if procErr != nil {
			continue
		}
		email, keep, err := s.processMessage(msg, section, since)
		if err != nil {
			procErr = err
			continue
		}
		if keep {
			scanned = append(scanned, email)
		}
	}
	return scanned, procErr
}

// processMessage parses one fetched message and applies the sender and
// receive-time filters. Filter misses are skips, parse failures are errors.
func (s *IMAPService) processMessage(msg *imap.Message, section *imap.BodySectionName, since time.Time) (models.ScannedEmail, bool, error) {
	if msg.Envelope == nil || len(msg.Envelope.From) == 0 {
		return models.ScannedEmail{}, false, errors.New("message has no envelope sender")
	}

	fromAddress := strings.ToLower(msg.Envelope.From[0].Address())
	if !s.approvedSenders[fromAddress] {
		s.log.Infof("Skipping email from non-approved sender: %s", fromAddress)
		return models.ScannedEmail{}, false, nil
	}

	receivedAt := msg.Envelope.Date
	if receivedAt.Before(since) {
		return models.ScannedEmail{}, false, nil
	}

	body := msg.GetBody(section)
	if body == nil {
		return models.ScannedEmail{}, false, errors.Wrapf(ierrors.ErrEmptyMessageBody, "message from %s", fromAddress)
	}

	envelope, err := enmime.ReadEnvelope(body)
	if err != nil {
		return models.ScannedEmail{}, false, errors.Wrap(err, "failed to parse message body")
	}

	email := models.ScannedEmail{
		FromAddress: fromAddress,
		Date:        receivedAt.In(s.displayLocation).Format(utils.DisplayDateLayout),
		ReceivedAt:  receivedAt,
		Subject:     msg.Envelope.Subject,
		// enmime concatenates the text of every text/plain part
		BodyText: envelope.Text,
	}
	return email, true, nil
}
