package actions

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gobuffalo/buffalo"
	"github.com/gofrs/uuid"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
	"github.com/silverleaf-labs/persons-api/exports"
	"github.com/silverleaf-labs/persons-api/models"
)

// personsList responds to GET / and GET /persons with the filtered, sorted
// person list. The search field has already been sanitized by the pipeline.
func personsList(c buffalo.Context) error {
	tx := models.Tx(c)

	params := api.NewListParams(c.Params())
	if searchBy, ok := c.Value(domain.ContextKeySearchBy).(string); ok {
		params.SearchBy = searchBy
	}

	persons, err := models.PersonsFiltered(tx, params.SearchBy, params.SearchString)
	if err != nil {
		return reportError(c, err)
	}

	persons = api.SortPersons(persons, params.SortBy, params.SortOrder)
	return renderOk(c, persons)
}

// personsCreateForm responds to GET /persons/create with the country choices
// and an empty submission shape
func personsCreateForm(c buffalo.Context) error {
	countries, err := models.CountriesAll(models.Tx(c))
	if err != nil {
		return reportError(c, err)
	}

	return renderOk(c, map[string]interface{}{
		"countries": countries,
		"person":    api.PersonCreateRequest{},
	})
}

// personsCreateSubmit responds to POST /persons/create. The pipeline has
// already bound and validated the request.
func personsCreateSubmit(c buffalo.Context) error {
	req, ok := c.Value(domain.ContextKeyPersonRequest).(*api.PersonCreateRequest)
	if !ok {
		err := errors.New("person create request not found in context")
		return reportError(c, api.NewAppError(err, api.ErrorRequestBodyRequired, api.CategoryUser))
	}

	var person models.Person
	if _, err := person.CreateFromRequest(models.Tx(c), req); err != nil {
		return reportError(c, err)
	}

	return c.Redirect(http.StatusFound, "/persons")
}

// personsEditForm responds to GET /persons/edit/{id}. An unknown id sends
// the client back to the list.
func personsEditForm(c buffalo.Context) error {
	tx := models.Tx(c)

	person, err := models.PersonFindByID(tx, uuid.FromStringOrNil(c.Param("id")))
	if err != nil {
		return reportError(c, err)
	}
	if person == nil {
		return c.Redirect(http.StatusFound, "/persons")
	}

	countries, err := models.CountriesAll(tx)
	if err != nil {
		return reportError(c, err)
	}

	return renderOk(c, map[string]interface{}{
		"countries": countries,
		"person":    person.ToUpdateRequest(),
	})
}

// personsEditSubmit responds to POST /persons/edit/{id}
func personsEditSubmit(c buffalo.Context) error {
	req, ok := c.Value(domain.ContextKeyPersonRequest).(*api.PersonUpdateRequest)
	if !ok {
		err := errors.New("person update request not found in context")
		return reportError(c, api.NewAppError(err, api.ErrorRequestBodyRequired, api.CategoryUser))
	}

	tx := models.Tx(c)
	id := uuid.FromStringOrNil(c.Param("id"))

	existing, err := models.PersonFindByID(tx, id)
	if err != nil {
		return reportError(c, err)
	}
	if existing == nil {
		return c.Redirect(http.StatusFound, "/persons")
	}

	req.ID = id
	var person models.Person
	if _, err := person.UpdateFromRequest(tx, req); err != nil {
		return reportError(c, err)
	}

	return c.Redirect(http.StatusFound, "/persons")
}

// personsDeleteForm responds to GET /persons/delete/{id} with the record to
// confirm before deletion
func personsDeleteForm(c buffalo.Context) error {
	person, err := models.PersonFindByID(models.Tx(c), uuid.FromStringOrNil(c.Param("id")))
	if err != nil {
		return reportError(c, err)
	}
	if person == nil {
		return c.Redirect(http.StatusFound, "/persons")
	}

	return renderOk(c, person)
}

// personsDeleteSubmit responds to POST /persons/delete/{id}
func personsDeleteSubmit(c buffalo.Context) error {
	tx := models.Tx(c)
	id := uuid.FromStringOrNil(c.Param("id"))

	person, err := models.PersonFindByID(tx, id)
	if err != nil {
		return reportError(c, err)
	}
	if person == nil {
		return c.Redirect(http.StatusFound, "/persons")
	}

	if _, err := models.PersonDelete(tx, id); err != nil {
		return reportError(c, err)
	}

	return c.Redirect(http.StatusFound, "/persons")
}

func personsCSV(c buffalo.Context) error {
	return renderPersonsExport(c, exports.FormatCSV, "application/octet-stream", "persons.csv")
}

func personsExcel(c buffalo.Context) error {
	return renderPersonsExport(c, exports.FormatExcel,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "persons.xlsx")
}

func personsPDF(c buffalo.Context) error {
	return renderPersonsExport(c, exports.FormatPDF, "application/pdf", "persons.pdf")
}

func renderPersonsExport(c buffalo.Context, format exports.Format, contentType, filename string) error {
	persons, err := models.PersonsAll(models.Tx(c))
	if err != nil {
		return reportError(c, err)
	}

	enc := exports.NewEncoder(format)
	for _, person := range persons {
		enc.AddPerson(person)
	}

	data, err := enc.Bytes()
	if err != nil {
		return reportError(c, api.NewAppError(err, api.ErrorGenericInternalServer, api.CategoryInternal))
	}

	return renderAttachment(c, contentType, filename, data)
}

func renderAttachment(c buffalo.Context, contentType, filename string, data []byte) error {
	response := c.Response()
	response.Header().Set("Content-Type", contentType)
	response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err := response.Write(data)

	return err
}
