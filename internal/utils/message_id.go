package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateMessageID creates a unique RFC 5322 message ID for an outbound email
func GenerateMessageID(domain string) string {
	alphabet := "abcdefghijklmnopqrstuvwxyz0123456789"
	id, err := gonanoid.Generate(alphabet, 12)
	if err != nil {
		panic(err)
	}

	timestamp := time.Now().UnixMicro()

	return fmt.Sprintf("<%d.%s@%s>", timestamp, id, domain)
}

// GenerateRunID creates a short identifier for one batch run
func GenerateRunID() string {
	alphabet := "abcdefghijklmnopqrstuvwxyz0123456789"
	id, err := gonanoid.Generate(alphabet, 16)
	if err != nil {
		panic(err)
	}
	return "run_" + id
}
