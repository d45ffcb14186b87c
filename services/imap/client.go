package imap

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/emersion/go-imap/client"
	"github.com/opentracing/opentracing-go"

	"github.com/cellstrat/invoicestack/internal/tracing"
)

// connect establishes a TLS connection to the IMAP server and logs in with
// the configured account
func (s *IMAPService) connect(ctx context.Context) (*client.Client, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "IMAPService.connect")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag("server", s.cfg.ImapServer)
	span.SetTag("port", s.cfg.ImapPort)

	serverAddr := fmt.Sprintf("%s:%d", s.cfg.ImapServer, s.cfg.ImapPort)

	// Set up connection with timeout
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tlsConfig := &tls.Config{
		ServerName: s.cfg.ImapServer,
	}

	c, err := client.DialWithDialerTLS(dialer, serverAddr, tlsConfig)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, fmt.Errorf("failed to connect to %s: %w", serverAddr, err)
	}

	// Check server capabilities
	caps, err := c.Capability()
	if err != nil {
		// Close the connection before returning
		c.Logout()

		tracing.TraceErr(span, err)
		return nil, fmt.Errorf("failed to get capabilities: %w", err)
	}
	s.log.Debugf("Server capabilities: %v", caps)

	// Set client timeout for login
	c.Timeout = 30 * time.Second

	err = c.Login(s.cfg.EmailAddress, s.cfg.EmailPassword)
	if err != nil {
		c.Logout()

		tracing.TraceErr(span, err)
		return nil, fmt.Errorf("failed to login as %s: %w", s.cfg.EmailAddress, err)
	}

	// Reset client timeout to default
	c.Timeout = 0

	s.log.Infof("Connected and logged in to %s", serverAddr)
	return c, nil
}

// disconnect logs out, ignoring errors; scans hold the connection only for
// the duration of one run
func (s *IMAPService) disconnect(c *client.Client) {
	if c == nil {
		return
	}

	c.Timeout = 5 * time.Second
	if err := c.Logout(); err != nil {
		s.log.Warnf("Error during logout: %v", err)
	}
}
