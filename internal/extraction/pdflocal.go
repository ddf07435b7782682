package extraction

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/luminexhq/invoicevault/internal/common"
)

// PDFLocal is a fallback provider that reads text-layer PDFs in-process.
// Images and scanned PDFs need a real OCR provider; this one keeps the
// pipeline usable without network access.
type PDFLocal struct{}

func NewPDFLocal() *PDFLocal { return &PDFLocal{} }

func (p *PDFLocal) Name() string { return "pdflocal" }

func (p *PDFLocal) Extract(_ context.Context, req Request) (*Result, error) {
	if req.Format != "PDF" {
		return nil, &common.PermanentExtractionError{Err: fmt.Errorf("pdflocal cannot read format %s", req.Format)}
	}
	text, pages, err := extractText(req.Data)
	if err != nil {
		// a malformed document will never parse, no point retrying
		return nil, &common.PermanentExtractionError{Err: err}
	}
	res := &Result{
		Provider: p.Name(),
		Fields:   scrapeFields(text),
		RawText:  text,
		Pages:    pages,
	}
	res.Confidence = Confidence{Overall: heuristicConfidence(text, res.Fields)}
	return res, nil
}

func extractText(data []byte) (string, int, error) {
	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("new pdf reader: %w", err)
	}
	var builder strings.Builder
	total := doc.NumPage()
	for page := 1; page <= total; page++ {
		pg := doc.Page(page)
		if pg.V.IsNull() {
			continue
		}
		content, err := pg.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", page, err)
		}
		builder.WriteString(content)
		builder.WriteString("\n")
	}
	return builder.String(), total, nil
}

var (
	reInvoiceNo = regexp.MustCompile(`(?i)invoice\s*(?:no\.?|number|#)\s*[:\s]\s*([A-Za-z0-9/-]+)`)
	reDate      = regexp.MustCompile(`\b(20\d{2}-\d{2}-\d{2})\b`)
	reCurrency  = regexp.MustCompile(`\b(USD|EUR|GBP|CNY|JPY|CAD|AUD)\b`)
	reTotal     = regexp.MustCompile(`(?i)total\s*[:\s]\s*[$€£¥]?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	reTax       = regexp.MustCompile(`(?i)(?:tax|vat)\s*[:\s]\s*[$€£¥]?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
)

// scrapeFields pulls the obvious fields out of a text layer. Best-effort:
// anything it cannot find stays empty and survives reconciliation untouched.
func scrapeFields(text string) Fields {
	var f Fields
	if m := reInvoiceNo.FindStringSubmatch(text); m != nil {
		f.InvoiceNumber = m[1]
	}
	if m := reDate.FindStringSubmatch(text); m != nil {
		f.InvoiceDate = m[1]
	}
	if m := reCurrency.FindStringSubmatch(text); m != nil {
		f.CurrencyCode = m[1]
	}
	if m := reTotal.FindStringSubmatch(text); m != nil {
		f.TotalAmount = strings.ReplaceAll(m[1], ",", "")
	}
	if m := reTax.FindStringSubmatch(text); m != nil {
		f.TaxAmount = strings.ReplaceAll(m[1], ",", "")
	}
	return f
}

// naive heuristic confidence based on how much the scraper recognized
func heuristicConfidence(text string, f Fields) float32 {
	score := float32(0.2) // base
	if f.InvoiceNumber != "" {
		score += 0.2
	}
	if f.InvoiceDate != "" {
		score += 0.2
	}
	if f.TotalAmount != "" {
		score += 0.2
	}
	if f.CurrencyCode != "" {
		score += 0.1
	}
	if len(text) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
