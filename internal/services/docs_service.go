package services

import (
	"bytes"
	"fmt"
	"time"

	"adminboard/internal/auth"
	"adminboard/internal/repositories"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the countries table as a downloadable PDF.
type DocsService struct {
	Lists     ListService
	Countries repositories.CountryRepository
}

// CountriesPDF renders every active country matching searchText. Returns the
// document bytes and a suggested filename.
func (s DocsService) CountriesPDF(identity auth.Identity, searchText string) ([]byte, string, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return nil, "", err
	}

	list, err := s.Countries.ListAll(searchText)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Countries", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Countries")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 8, "Country", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Short Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Phone Code", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Active", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, c := range list {
		active := "No"
		if c.IsActive.Bool() {
			active = "Yes"
		}
		pdf.CellFormat(70, 8, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, c.Shortname, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, c.PhoneCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, active, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("countries-%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), name, nil
}
