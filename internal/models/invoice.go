package models

// InvoiceRecord is an accepted invoice request with its assigned number.
// Numbers are handed out in scan order, strictly previous maximum + 1.
type InvoiceRecord struct {
	InvoiceNumber int
	Amount        int
	// Date is the invoice date as displayed on the document, "30 April 2025"
	Date  string
	Email ScannedEmail
}
