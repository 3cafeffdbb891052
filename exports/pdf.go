package exports

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/silverleaf-labs/persons-api/api"
)

type pdfColumn struct {
	title string
	width float64
	value func(api.Person) string
}

// pdfColumns fill the printable width of a landscape A4 page with 20pt
// margins.
var pdfColumns = []pdfColumn{
	{"Person Name", 120, func(p api.Person) string { return p.Name }},
	{"Email", 150, func(p api.Person) string { return p.Email }},
	{"Date of Birth", 80, func(p api.Person) string { return formatDate(p.DateOfBirth) }},
	{"Age", 40, func(p api.Person) string { return formatAge(p.Age) }},
	{"Gender", 60, func(p api.Person) string { return p.Gender }},
	{"Country", 100, func(p api.Person) string { return p.CountryName }},
	{"Address", 192, func(p api.Person) string { return p.Address }},
	{"Newsletters", 60, func(p api.Person) string { return formatBool(p.ReceiveNewsletters) }},
}

type pdfEncoder struct {
	doc *gofpdf.Fpdf
}

func newPdfEncoder() *pdfEncoder {
	doc := gofpdf.New("L", "pt", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(211, 211, 211)
	for _, col := range pdfColumns {
		doc.CellFormat(col.width, 18, col.title, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	return &pdfEncoder{doc: doc}
}

func (e *pdfEncoder) AddPerson(person api.Person) {
	for _, col := range pdfColumns {
		e.doc.CellFormat(col.width, 16, col.value(person), "1", 0, "L", false, 0, "")
	}
	e.doc.Ln(-1)
}

func (e *pdfEncoder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
