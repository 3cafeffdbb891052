package exports

import (
	"github.com/xuri/excelize/v2"

	"github.com/silverleaf-labs/persons-api/api"
)

// SheetName is the worksheet holding the exported persons
const SheetName = "Persons"

var excelHeader = []string{
	"Person ID",
	"Person Name",
	"Email",
	"Date of Birth",
	"Age",
	"Gender",
	"Country",
	"Address",
	"Receive News Letters",
}

type excelEncoder struct {
	file   *excelize.File
	row    int
	widths []float64
	err    error
}

func newExcelEncoder() *excelEncoder {
	e := &excelEncoder{
		file:   excelize.NewFile(),
		row:    1,
		widths: make([]float64, len(excelHeader)),
	}
	e.err = e.file.SetSheetName("Sheet1", SheetName)

	header := make([]any, len(excelHeader))
	for i, h := range excelHeader {
		header[i] = h
	}
	e.addRow(header)
	return e
}

func (e *excelEncoder) AddPerson(person api.Person) {
	var age any
	if person.Age != nil {
		age = *person.Age
	}

	e.addRow([]any{
		person.ID.String(),
		person.Name,
		person.Email,
		formatDate(person.DateOfBirth),
		age,
		person.Gender,
		person.CountryName,
		person.Address,
		person.ReceiveNewsletters,
	})
}

func (e *excelEncoder) addRow(values []any) {
	if e.err != nil {
		return
	}

	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, e.row)
		if err != nil {
			e.err = err
			return
		}
		if err := e.file.SetCellValue(SheetName, cell, v); err != nil {
			e.err = err
			return
		}
		if w := cellWidth(v); w > e.widths[i] {
			e.widths[i] = w
		}
	}
	e.row++
}

func (e *excelEncoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}

	if err := e.styleHeader(); err != nil {
		return nil, err
	}
	if err := e.fitColumns(); err != nil {
		return nil, err
	}

	buf, err := e.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *excelEncoder) styleHeader() error {
	style, err := e.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(excelHeader), 1)
	if err != nil {
		return err
	}
	return e.file.SetCellStyle(SheetName, "A1", last, style)
}

// fitColumns sizes each column to its widest cell, capped so one long
// address can't dominate the sheet.
func (e *excelEncoder) fitColumns() error {
	const maxWidth = 50

	for i, w := range e.widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if w > maxWidth {
			w = maxWidth
		}
		if err := e.file.SetColWidth(SheetName, name, name, w+2); err != nil {
			return err
		}
	}
	return nil
}

func cellWidth(v any) float64 {
	switch t := v.(type) {
	case string:
		return float64(len([]rune(t)))
	case float64:
		return float64(len(formatAge(&t)))
	case bool:
		return 5
	}
	return 0
}
