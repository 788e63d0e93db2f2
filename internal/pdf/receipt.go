package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is an interface so handlers can be tested with a stub.
type Generator interface {
	GenerateBookingReceipt(data ReceiptData) (string, error)
}

type ReceiptGenerator struct {
	RootDir string // storage root, e.g. "./files"
}

type ReceiptData struct {
	BookingID   int
	Name        string
	Phone       string
	VehicleType string
	Package     string
	Express     bool
	Date        string
	Time        string
	Price       int
	StoreName   string
	CreatedAt   time.Time
	Filename    string // basename only; generated when empty
}

func NewReceiptGenerator(rootDir string) *ReceiptGenerator {
	return &ReceiptGenerator{RootDir: filepath.Clean(rootDir)}
}

// GenerateBookingReceipt renders the receipt PDF to disk and returns the
// absolute path of the written file.
func (g *ReceiptGenerator) GenerateBookingReceipt(data ReceiptData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("receipt_booking_%d.pdf", data.BookingID)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Booking receipt #%d", data.BookingID), false)
	pdf.SetAuthor("AutoCare24", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "AutoCare24", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("Booking receipt AC-%06d  dated  %s",
		data.BookingID,
		data.CreatedAt.Format("02.01.2006"),
	)
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Customer")
	g.kvLine(pdf, "Name", data.Name)
	g.kvLine(pdf, "Phone", data.Phone)
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Service")
	g.kvLine(pdf, "Vehicle type", data.VehicleType)
	g.kvLine(pdf, "Package", data.Package)
	if data.Express {
		g.kvLine(pdf, "Express", "yes")
	}
	g.kvLine(pdf, "Location", data.StoreName)
	g.kvLine(pdf, "Scheduled", fmt.Sprintf("%s at %s", data.Date, data.Time))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Amount")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: Rs. %d", data.Price), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "Amount payable at the service location. Express service includes priority handling.", "", "L", false)

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (g *ReceiptGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *ReceiptGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReceiptGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *ReceiptGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename)
	return filepath.Join(g.RootDir, filename), nil
}
