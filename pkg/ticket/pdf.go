// Package ticket renders booking confirmations as printable PDFs.
package ticket

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

type Data struct {
	Reference   string
	HolderName  string
	Celebrity   string
	Title       string
	Venue       string
	ScheduledAt *time.Time
	Quantity    int
	Amount      string
	Currency    string
	IssuedAt    time.Time
}

// Render returns a one-page A4 PDF with a QR code of the booking reference.
func Render(d Data) ([]byte, error) {
	qrPNG, err := qrcode.Encode(d.Reference, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking "+d.Reference, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Booking Confirmation")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	line := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 8, label)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, value)
		pdf.Ln(8)
	}

	line("Reference:", d.Reference)
	line("Name:", d.HolderName)
	line("Celebrity:", d.Celebrity)
	line("Booking:", d.Title)
	line("Venue:", d.Venue)
	if d.ScheduledAt != nil {
		line("Date:", d.ScheduledAt.Format("Mon, 02 Jan 2006 15:04 MST"))
	}
	if d.Quantity > 0 {
		line("Quantity:", fmt.Sprintf("%d", d.Quantity))
	}
	line("Amount paid:", fmt.Sprintf("%s %s", d.Amount, d.Currency))
	line("Issued:", d.IssuedAt.Format("02 Jan 2006 15:04"))

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 45, 45, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
