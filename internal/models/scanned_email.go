package models

import "time"

// ScannedEmail is one qualifying unread message pulled from the inbox.
// It lives for the duration of a single run.
type ScannedEmail struct {
	// FromAddress is the sender address, lowercased
	FromAddress string `json:"from_email"`
	// Date is the received timestamp rendered in IST as "30 April 2025"
	Date string `json:"date"`
	// ReceivedAt is the timezone-aware timestamp from the Date header
	ReceivedAt time.Time `json:"-"`
	Subject    string    `json:"subject"`
	BodyText   string    `json:"body_text"`
}
