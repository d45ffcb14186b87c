package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount int
		words  string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{15, "Fifteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{25000, "Twenty Five Thousand"},
		{50000, "Fifty Thousand"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{150000, "One Lakh Fifty Thousand"},
		{2500000, "Twenty Five Lakh"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{250000000, "Twenty Five Crore"},
		// the crore count itself recurses through the groupings
		{100000000000000, "One Crore Crore"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.words, AmountInWords(tc.amount), "amount %d", tc.amount)
	}
}

func TestInvoiceFileName(t *testing.T) {
	assert.Equal(t, "Bhavesh Invoice 007.pdf", InvoiceFileName(7))
	assert.Equal(t, "Bhavesh Invoice 013.pdf", InvoiceFileName(13))
	assert.Equal(t, "Bhavesh Invoice 120.pdf", InvoiceFileName(120))
	assert.Equal(t, "Bhavesh Invoice 1205.pdf", InvoiceFileName(1205))
}
