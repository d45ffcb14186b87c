package renderer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/dustin/go-humanize"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/interfaces"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/internal/tracing"
)

type invoiceData struct {
	InvoiceNumber   int
	Date            string
	AmountFormatted string
	AmountWords     string
}

type rendererService struct {
	cfg *config.InvoiceConfig
	log logger.Logger
	tpl *template.Template
}

func NewRendererService(cfg *config.InvoiceConfig, log logger.Logger) interfaces.RendererService {
	return &rendererService{
		cfg: cfg,
		log: log,
		tpl: template.Must(template.New("invoice").Parse(invoiceHTMLTemplate)),
	}
}

// InvoiceFileName is the canonical PDF name for an invoice number,
// zero-padded to three digits: "Bhavesh Invoice 007.pdf".
func InvoiceFileName(invoiceNumber int) string {
	return fmt.Sprintf("Bhavesh Invoice %03d.pdf", invoiceNumber)
}

// Render fills the invoice layout, converts it to PDF with wkhtmltopdf and
// returns the PDF path in the scratch directory. The intermediate HTML file
// is removed after conversion.
func (s *rendererService) Render(ctx context.Context, invoiceNumber int, date string, amount int) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "rendererService.Render")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag("invoice_number", invoiceNumber)

	data := invoiceData{
		InvoiceNumber:   invoiceNumber,
		Date:            date,
		AmountFormatted: humanize.Comma(int64(amount)),
		AmountWords:     AmountInWords(amount),
	}

	var buf bytes.Buffer
	if err := s.tpl.Execute(&buf, data); err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "failed to render invoice template")
	}

	htmlPath := filepath.Join(s.cfg.ScratchDir, "temp.html")
	if err := os.WriteFile(htmlPath, buf.Bytes(), 0o644); err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "failed to write intermediate html")
	}

	pdfPath := filepath.Join(s.cfg.ScratchDir, InvoiceFileName(invoiceNumber))
	if err := s.convertToPdf(htmlPath, pdfPath); err != nil {
		tracing.TraceErr(span, err)
		return "", err
	}

	if err := os.Remove(htmlPath); err != nil {
		s.log.Warnf("Could not remove intermediate file %s: %v", htmlPath, err)
	}

	s.log.Infof("Rendered invoice %d to %s", invoiceNumber, pdfPath)
	return pdfPath, nil
}

func (s *rendererService) convertToPdf(htmlPath, pdfPath string) error {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return errors.Wrap(err, "wkhtmltopdf not available")
	}

	pdfg.AddPage(wkhtmltopdf.NewPage(htmlPath))

	if err := pdfg.Create(); err != nil {
		return errors.Wrap(err, "pdf conversion failed")
	}

	if err := pdfg.WriteFile(pdfPath); err != nil {
		return errors.Wrap(err, "failed to write pdf")
	}

	return nil
}
