// Package exports renders person lists as downloadable documents. Each
// encoder accumulates rows in memory and serializes the whole document at
// once.
package exports

import (
	"strconv"
	"time"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
)

type Format string

const (
	FormatCSV   = Format("csv")
	FormatExcel = Format("excel")
	FormatPDF   = Format("pdf")
)

// Encoder accumulates persons and serializes them as one document
type Encoder interface {
	AddPerson(person api.Person)
	Bytes() ([]byte, error)
}

// NewEncoder returns an encoder for the given format. The format is chosen by
// a route, never by user input, so an unknown format is a programming error.
func NewEncoder(format Format) Encoder {
	switch format {
	case FormatCSV:
		return newCsvEncoder()
	case FormatExcel:
		return newExcelEncoder()
	case FormatPDF:
		return newPdfEncoder()
	}
	panic("unknown export format: " + string(format))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateFormat)
}

func formatAge(age *float64) string {
	if age == nil {
		return ""
	}
	return strconv.FormatFloat(*age, 'f', 0, 64)
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
