package models

import (
	"errors"
	"io"
	"time"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
)

// ImportSheetName is the worksheet the country bulk import reads from
const ImportSheetName = "Countries"

// Country is a stored country record. Name is unique across all countries.
type Country struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Countries []Country

// Validate gets run every time you call a "pop.Validate*" method.
func (c *Country) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(c), nil
}

func (c *Country) Create(tx *pop.Connection) error {
	return create(tx, c)
}

func (c *Country) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, c, id)
}

// FindByName matches the name exactly, case-sensitively.
func (c *Country) FindByName(tx *pop.Connection, name string) error {
	err := tx.Where("name = ?", name).First(c)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}

// CreateFromRequest validates the request, enforces name uniqueness, assigns
// a new identity, and inserts the record.
func (c *Country) CreateFromRequest(tx *pop.Connection, req *api.CountryCreateRequest) (api.Country, error) {
	if req == nil {
		err := errors.New("country create request must not be nil")
		return api.Country{}, api.NewAppError(err, api.ErrorRequestBodyRequired, api.CategoryUser)
	}

	if appErr := validateRequest(req); appErr != nil {
		return api.Country{}, appErr
	}

	var existing Country
	if err := existing.FindByName(tx, req.Name); err == nil {
		err := errors.New("given country name already exists: " + req.Name)
		return api.Country{}, api.NewAppError(err, api.ErrorCountryNameInUse, api.CategoryUser)
	} else if domain.IsOtherThanNoRows(err) {
		return api.Country{}, err
	}

	c.Name = req.Name
	if err := c.Create(tx); err != nil {
		return api.Country{}, err
	}

	emitEvent(events.Event{
		Kind:    domain.EventApiCountryCreated,
		Message: "Country created: " + c.Name,
		Payload: events.Payload{domain.EventPayloadID: c.ID},
	})

	return c.ConvertToAPI(), nil
}

// CountryFindByID returns the response shape for the given id, or nil when
// the id is absent or unmatched.
func CountryFindByID(tx *pop.Connection, id uuid.UUID) (*api.Country, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	var c Country
	if err := c.FindByID(tx, id); err != nil {
		if domain.IsOtherThanNoRows(err) {
			return nil, err
		}
		return nil, nil
	}

	resp := c.ConvertToAPI()
	return &resp, nil
}

// CountriesAll returns every country as its response shape
func CountriesAll(tx *pop.Connection) (api.Countries, error) {
	var countries Countries
	if err := tx.Order("name asc").All(&countries); err != nil {
		return nil, appErrorFromDB(err, api.ErrorQueryFailure)
	}

	converted := make(api.Countries, len(countries))
	for i := range countries {
		converted[i] = countries[i].ConvertToAPI()
	}
	return converted, nil
}

// LoadPersons returns the persons referencing this country. The collection
// is a display convenience, not owned data.
func (c *Country) LoadPersons(tx *pop.Connection) (Persons, error) {
	var persons Persons
	err := tx.Where("country_id = ?", c.ID).All(&persons)
	if err != nil {
		return nil, appErrorFromDB(err, api.ErrorQueryFailure)
	}
	return persons, nil
}

// ImportCountries reads an xlsx stream and inserts a country for each row of
// the Countries sheet, skipping the header row, rows with an empty first
// cell, and names that already exist. It returns the number of rows actually
// inserted; skips are silent.
func ImportCountries(tx *pop.Connection, file io.Reader) (int, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return 0, api.NewAppError(err, api.ErrorUnableToParseFile, api.CategoryUser)
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			domain.ErrLogger.Printf("error closing uploaded workbook ... %v", err)
		}
	}()

	rows, err := workbook.GetRows(ImportSheetName)
	if err != nil {
		return 0, api.NewAppError(err, api.ErrorUnableToParseFile, api.CategoryUser)
	}

	inserted := 0
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		name := row[0]

		var existing Country
		if err := existing.FindByName(tx, name); err == nil {
			continue
		} else if domain.IsOtherThanNoRows(err) {
			return inserted, err
		}

		country := Country{Name: name}
		if err := country.Create(tx); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

func (c *Country) ConvertToAPI() api.Country {
	return api.Country{
		ID:   c.ID,
		Name: c.Name,
	}
}
