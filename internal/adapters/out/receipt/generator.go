// Package receipt renders order receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/core/domain/model/pricing"
	"pickleshop/internal/core/ports"

	"github.com/jung-kurt/gofpdf"
)

// PDFGenerator implements the ReceiptGenerator port with gofpdf.
type PDFGenerator struct {
	shopName string
	now      func() time.Time
}

// NewPDFGenerator creates a receipt generator branded with the shop name.
func NewPDFGenerator(shopName string) *PDFGenerator {
	return &PDFGenerator{
		shopName: shopName,
		now:      time.Now,
	}
}

// Generate renders the receipt document. The filename is deterministic for a
// given customer and day: receipt_<name-slug>_<YYYY-MM-DD>.pdf.
func (g *PDFGenerator) Generate(
	details order.Draft, orderID kernel.UUID, total int,
) (ports.Receipt, error) {
	date := g.now().UTC().Format("2006-01-02")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, g.shopName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Order receipt  %s", orderID.String()))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Deliver to")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range deliveryLines(details) {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(100, 7, "Item")
	pdf.Cell(30, 7, "Qty")
	pdf.Cell(40, 7, "Amount (LKR)")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	unitPrice, _ := pricing.UnitPrice(details.PackageSize)
	pdf.Cell(100, 7, fmt.Sprintf("Lime pickle, %s jar (%d LKR each)", details.PackageSize, unitPrice))
	pdf.Cell(30, 7, fmt.Sprintf("%d", details.NumberOfBottles))
	pdf.Cell(40, 7, fmt.Sprintf("%d", total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 7, "Total")
	pdf.Cell(40, 7, fmt.Sprintf("%d LKR", total))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("We will reach you on WhatsApp at %s to arrange delivery.", details.WhatsappNumber))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return ports.Receipt{}, fmt.Errorf("rendering receipt: %w", err)
	}

	return ports.Receipt{
		Filename: fmt.Sprintf("receipt_%s_%s.pdf", slug(details.FullName), date),
		Content:  buf.Bytes(),
	}, nil
}

func deliveryLines(details order.Draft) []string {
	lines := []string{details.FullName, details.DeliveryLine1}
	if details.DeliveryLine2 != "" {
		lines = append(lines, details.DeliveryLine2)
	}
	lines = append(lines,
		fmt.Sprintf("%s %s", details.DeliveryCity, details.PostalCode),
		fmt.Sprintf("%s District, %s Province", details.District, details.Province),
	)
	return lines
}

// slug lowercases a name and replaces every non-alphanumeric run with a
// single dash.
func slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
