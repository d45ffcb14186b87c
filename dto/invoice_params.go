package dto

// InvoiceParams is the structured decision returned by the extraction model.
// InvoiceAmount and InvoiceDate are advisory: the model is instructed to set
// them only when IsInvoice is true, but nothing enforces that on its side.
type InvoiceParams struct {
	IsInvoice     bool    `json:"is_invoice"`
	InvoiceAmount *int    `json:"invoice_amount"`
	InvoiceDate   *string `json:"invoice_date"`
}
