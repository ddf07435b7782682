package extraction

import "testing"

const sampleText = `
ACME Tooling GmbH
Invoice No: INV-2024/0917
Date: 2024-09-17 Due: 2024-10-01
Subtotal: 180.00
VAT: 34.20
Total: $1,214.20 USD
`

func TestScrapeFields(t *testing.T) {
	f := scrapeFields(sampleText)
	if f.InvoiceNumber != "INV-2024/0917" {
		t.Errorf("invoice_number = %q", f.InvoiceNumber)
	}
	if f.InvoiceDate != "2024-09-17" {
		t.Errorf("invoice_date = %q", f.InvoiceDate)
	}
	if f.TotalAmount != "1214.20" {
		t.Errorf("total_amount = %q", f.TotalAmount)
	}
	if f.TaxAmount != "34.20" {
		t.Errorf("tax_amount = %q", f.TaxAmount)
	}
	if f.CurrencyCode != "USD" {
		t.Errorf("currency_code = %q", f.CurrencyCode)
	}
}

func TestScrapeFieldsLeavesUnknownEmpty(t *testing.T) {
	f := scrapeFields("nothing recognizable here")
	if f != (Fields{}) {
		t.Fatalf("expected empty fields, got %+v", f)
	}
}

func TestHeuristicConfidence(t *testing.T) {
	full := heuristicConfidence(sampleText, scrapeFields(sampleText))
	empty := heuristicConfidence("x", Fields{})
	if full <= empty {
		t.Fatalf("recognized document should score higher: %v <= %v", full, empty)
	}
	if full > 1.0 || empty < 0 {
		t.Fatalf("confidence out of range: %v, %v", full, empty)
	}
}
