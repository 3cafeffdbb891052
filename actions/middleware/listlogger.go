package middleware

import (
	"github.com/gobuffalo/buffalo"

	"github.com/silverleaf-labs/persons-api/domain"
)

// ListLogger brackets the list action with log entries carrying the search
// and sort parameters.
type ListLogger struct{}

func (l *ListLogger) Name() string { return "ListLogger" }

func (l *ListLogger) Order() int { return 10 }

func (l *ListLogger) Before(c buffalo.Context) error {
	domain.NewExtra(c, "searchBy", c.Param("searchBy"))
	domain.NewExtra(c, "searchString", c.Param("searchString"))
	domain.NewExtra(c, "sortBy", c.Param("sortBy"))
	domain.NewExtra(c, "sortOrder", c.Param("sortOrder"))
	domain.Info(c, "persons list requested")
	return nil
}

func (l *ListLogger) After(c buffalo.Context) {
	domain.Info(c, "persons list completed")
}
