package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PlanDocument is the content rendered into the delivered PDF
type PlanDocument struct {
	Title       string
	ClientName  string
	ProfileRows [][2]string
	PlanText    string
	GeneratedAt time.Time
}

// PlanPDF renders plan documents using gofpdf
type PlanPDF struct {
	orientation string
	pageSize    string
}

// NewPlanPDF creates a new plan PDF renderer
func NewPlanPDF() *PlanPDF {
	return &PlanPDF{
		orientation: "P", // Portrait
		pageSize:    "A4",
	}
}

// Render writes the plan document as PDF to the writer
func (p *PlanPDF) Render(doc *PlanDocument, writer io.Writer) error {
	if doc.PlanText == "" {
		return fmt.Errorf("plan text is empty")
	}

	pdf := gofpdf.New(p.orientation, "mm", p.pageSize, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title
	title := doc.Title
	if title == "" {
		title = "Plano Personalizado"
	}
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, tr(title))
	pdf.Ln(14)

	if doc.ClientName != "" {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Preparado para: %s", doc.ClientName)))
		pdf.Ln(10)
	}

	// Profile table
	if len(doc.ProfileRows) > 0 {
		pageWidth, _ := pdf.GetPageSize()
		leftMargin, _, rightMargin, _ := pdf.GetMargins()
		usableWidth := pageWidth - leftMargin - rightMargin
		labelWidth := usableWidth * 0.35
		valueWidth := usableWidth - labelWidth

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(labelWidth, 7, tr("Dados"), "1", 0, "C", true, 0, "")
		pdf.CellFormat(valueWidth, 7, tr("Valor"), "1", 0, "C", true, 0, "")
		pdf.Ln(-1)

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", 10)
		for i, row := range doc.ProfileRows {
			if i%2 == 0 {
				pdf.SetFillColor(255, 255, 255)
			} else {
				pdf.SetFillColor(242, 242, 242)
			}
			pdf.CellFormat(labelWidth, 6, tr(row[0]), "1", 0, "L", true, 0, "")
			pdf.CellFormat(valueWidth, 6, tr(row[1]), "1", 0, "L", true, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	// Plan body
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(doc.PlanText), "", "L", false)
	pdf.Ln(8)

	// Footer metadata
	generated := doc.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Gerado em: %s", generated.Format("02/01/2006 15:04"))))

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

// RenderFile renders the document into a temporary file and returns its path.
// The caller is responsible for removing the file after upload.
func (p *PlanPDF) RenderFile(doc *PlanDocument) (string, error) {
	f, err := os.CreateTemp("", "plan_*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := p.Render(doc, f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return f.Name(), nil
}

// GetContentType returns the MIME type for PDF files
func (p *PlanPDF) GetContentType() string {
	return "application/pdf"
}

// GetFileExtension returns the file extension for PDF files
func (p *PlanPDF) GetFileExtension() string {
	return ".pdf"
}
