package middleware

import (
	"net/http"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/buffalo/render"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
	"github.com/silverleaf-labs/persons-api/models"
)

var r = render.New(render.Options{
	DefaultContentType: "application/json",
})

// validationFailure echoes the rejected submission along with the messages
// and the country choices needed to redisplay the form.
type validationFailure struct {
	Errors    []string      `json:"errors"`
	Countries api.Countries `json:"countries"`
	Person    any           `json:"person"`
}

// PersonFormValidation binds the submitted person, stores it in the context
// for the handler, and short-circuits invalid submissions with 422 and the
// redisplay payload.
type PersonFormValidation struct {
	// NewRequest supplies an empty request of the type the route binds
	NewRequest func() any
}

func (v *PersonFormValidation) Name() string { return "PersonFormValidation" }

func (v *PersonFormValidation) Order() int { return 0 }

func (v *PersonFormValidation) Before(c buffalo.Context) error {
	req := v.NewRequest()
	if err := c.Bind(req); err != nil {
		return c.Error(http.StatusBadRequest, err)
	}

	if msgs := models.RequestErrors(req); len(msgs) > 0 {
		countries, err := models.CountriesAll(models.Tx(c))
		if err != nil {
			domain.Error(c, "failed to load country choices for validation response", map[string]interface{}{"error": err.Error()})
		}

		failure := validationFailure{
			Errors:    msgs,
			Countries: countries,
			Person:    req,
		}
		if err := c.Render(http.StatusUnprocessableEntity, r.JSON(failure)); err != nil {
			return err
		}
		return Stop
	}

	c.Set(domain.ContextKeyPersonRequest, req)
	return nil
}

func (v *PersonFormValidation) After(c buffalo.Context) {}
