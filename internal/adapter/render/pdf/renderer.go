// Package pdf renders finished report models into PDF documents. The renderer
// is stateless; every call builds a fresh document.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02 15:04:05"

func (r *Renderer) RenderStatement(statement models.StatementResponse, start, end time.Time) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(0, 8, "ACCOUNT STATEMENT")
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, "Client: "+statement.ClientName)
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, "Account number: "+statement.AccountNumber)
	doc.Ln(6)
	doc.Cell(0, 6, "Current balance: "+statement.CurrentBalance.StringFixed(2))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Date range: %s to %s", start.Format(dateLayout), end.Format(dateLayout)))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, "Movements")
	doc.Ln(8)

	widths := []float64{60, 35, 40, 40}
	headers := []string{"Date", "Kind", "Amount", "Balance"}
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, header := range headers {
		doc.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	for _, item := range statement.Movements {
		doc.CellFormat(widths[0], 7, item.Timestamp.Format(timestampLayout), "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 7, item.Kind, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[2], 7, item.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[3], 7, item.ResultingBalance.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	return output(doc)
}

func (r *Renderer) RenderClientMovements(items []models.ClientMovementItem, start, end time.Time) ([]byte, error) {
	// Landscape so the seven columns fit without clipping.
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.AddPage()

	var clientName string
	if len(items) > 0 {
		clientName = items[0].ClientName
	}

	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(0, 8, "CLIENT MOVEMENTS REPORT")
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, "Client: "+clientName)
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, fmt.Sprintf("Date range: %s to %s", start.Format(dateLayout), end.Format(dateLayout)))
	doc.Ln(10)

	widths := []float64{42, 48, 36, 30, 32, 32, 36}
	headers := []string{"Date", "Client", "Account Number", "Account Type", "Opening Balance", "Movement", "Available Balance"}
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for i, header := range headers {
		doc.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, item := range items {
		doc.CellFormat(widths[0], 7, item.Timestamp.Format(timestampLayout), "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 7, item.ClientName, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[2], 7, item.AccountNumber, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[3], 7, item.AccountType, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[4], 7, item.OpeningBalance.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[5], 7, item.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[6], 7, item.ResultingBalance.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	return output(doc)
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf document: %w", err)
	}
	return buf.Bytes(), nil
}
