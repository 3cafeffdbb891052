package api

import (
	"github.com/gobuffalo/buffalo"
)

// SearchByOptions is the allow-list of field selectors a caller may search by.
// Anything else is silently reset to FieldPersonName by the list pipeline.
var SearchByOptions = []string{
	FieldPersonName,
	FieldEmail,
	FieldDateOfBirth,
	FieldAge,
	FieldGender,
	FieldCountryID,
	FieldAddress,
}

// ListParams contains the criteria for the person list endpoint
type ListParams struct {
	SearchBy     string
	SearchString string
	SortBy       string
	SortOrder    SortOrder
}

// NewListParams parses query string parameter values into list criteria,
// applying the default sort (person name, ascending).
func NewListParams(values buffalo.ParamValues) ListParams {
	p := ListParams{
		SearchBy:     values.Get("searchBy"),
		SearchString: values.Get("searchString"),
		SortBy:       values.Get("sortBy"),
		SortOrder:    SortAscending,
	}

	if p.SortBy == "" {
		p.SortBy = FieldPersonName
	}

	if values.Get("sortOrder") == string(SortDescending) {
		p.SortOrder = SortDescending
	}

	return p
}
