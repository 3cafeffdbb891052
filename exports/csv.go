package exports

import (
	"bytes"
	"encoding/csv"

	"github.com/silverleaf-labs/persons-api/api"
)

// csvHeader has no date-of-birth column. Data rows carry one extra cell when
// a date of birth is present, so the document is ragged. Consumers of this
// export depend on that shape.
var csvHeader = []string{"PersonID", "PersonName", "Email", "Age", "Gender", "Address", "CountryName"}

type csvEncoder struct {
	buf bytes.Buffer
	w   *csv.Writer
	err error
}

func newCsvEncoder() *csvEncoder {
	e := &csvEncoder{}
	e.w = csv.NewWriter(&e.buf)
	e.err = e.w.Write(csvHeader)
	return e
}

func (e *csvEncoder) AddPerson(person api.Person) {
	if e.err != nil {
		return
	}

	row := []string{person.ID.String(), person.Name, person.Email}
	if person.DateOfBirth != nil {
		row = append(row, formatDate(person.DateOfBirth))
	}
	row = append(row, formatAge(person.Age), person.Gender, person.Address, person.CountryName)

	e.err = e.w.Write(row)
}

func (e *csvEncoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}
