package middleware

import (
	"github.com/gobuffalo/buffalo"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
)

// SearchAllowList sanitizes the searchBy parameter on list requests. A
// value outside the allow-list is silently reset to the person name field
// rather than rejected.
type SearchAllowList struct{}

func (s *SearchAllowList) Name() string { return "SearchAllowList" }

func (s *SearchAllowList) Order() int { return 0 }

func (s *SearchAllowList) Before(c buffalo.Context) error {
	searchBy := c.Param("searchBy")
	if searchBy != "" && !domain.IsStringInSlice(searchBy, api.SearchByOptions) {
		searchBy = api.FieldPersonName
	}
	c.Set(domain.ContextKeySearchBy, searchBy)
	return nil
}

func (s *SearchAllowList) After(c buffalo.Context) {}
