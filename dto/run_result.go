package dto

// RunResult aggregates what a single batch run produced.
type RunResult struct {
	RunID     string           `json:"runId"`
	Processed int              `json:"processed"`
	Invoices  []InvoiceOutcome `json:"invoices"`
}

type InvoiceOutcome struct {
	InvoiceNumber int    `json:"invoiceNumber"`
	Amount        int    `json:"amount"`
	Recipient     string `json:"recipient"`
	PdfKey        string `json:"pdfKey"`
	Sent          bool   `json:"sent"`
	Archived      bool   `json:"archived"`
}
