package models

import (
	"errors"
	"math"
	"time"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
)

// Person is a stored person record. CountryID is a soft reference: a dangling
// id is tolerated and never auto-corrected.
type Person struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Name               string     `db:"name" json:"name" validate:"required"`
	Email              string     `db:"email" json:"email" validate:"required,email"`
	DateOfBirth        nulls.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender             string     `db:"gender" json:"gender" validate:"required,gender"`
	CountryID          nulls.UUID `db:"country_id" json:"country_id"`
	Address            string     `db:"address" json:"address" validate:"required"`
	ReceiveNewsletters bool       `db:"receive_newsletters" json:"receive_newsletters"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type Persons []Person

// Validate gets run every time you call a "pop.Validate*" method.
func (p *Person) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *Person) Create(tx *pop.Connection) error {
	return create(tx, p)
}

func (p *Person) Update(tx *pop.Connection) error {
	return update(tx, p)
}

func (p *Person) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, p, id)
}

// CreateFromRequest validates the request, assigns a new identity, inserts
// the record, and returns the response shape.
func (p *Person) CreateFromRequest(tx *pop.Connection, req *api.PersonCreateRequest) (api.Person, error) {
	if req == nil {
		err := errors.New("person create request must not be nil")
		return api.Person{}, api.NewAppError(err, api.ErrorRequestBodyRequired, api.CategoryUser)
	}

	if appErr := validateRequest(req); appErr != nil {
		return api.Person{}, appErr
	}

	p.Name = req.Name
	p.Email = req.Email
	p.DateOfBirth = timeFromAPI(req.DateOfBirth)
	p.Gender = string(req.Gender)
	p.CountryID = uuidFromAPI(req.CountryID)
	p.Address = req.Address
	p.ReceiveNewsletters = req.ReceiveNewsletters

	if err := p.Create(tx); err != nil {
		return api.Person{}, err
	}

	emitEvent(events.Event{
		Kind:    domain.EventApiPersonCreated,
		Message: "Person created: " + p.Name,
		Payload: events.Payload{domain.EventPayloadID: p.ID},
	})

	return p.ConvertToAPI(tx), nil
}

// UpdateFromRequest overwrites every mutable field of the matching record
// with the request's values and persists the result.
func (p *Person) UpdateFromRequest(tx *pop.Connection, req *api.PersonUpdateRequest) (api.Person, error) {
	if req == nil {
		err := errors.New("person update request must not be nil")
		return api.Person{}, api.NewAppError(err, api.ErrorRequestBodyRequired, api.CategoryUser)
	}

	if appErr := validateRequest(req); appErr != nil {
		return api.Person{}, appErr
	}

	if err := p.FindByID(tx, req.ID); err != nil {
		if domain.IsOtherThanNoRows(err) {
			return api.Person{}, err
		}
		err := errors.New("given person id does not exist: " + req.ID.String())
		return api.Person{}, api.NewAppError(err, api.ErrorInvalidPersonID, api.CategoryNotFound)
	}

	p.Name = req.Name
	p.Email = req.Email
	p.DateOfBirth = timeFromAPI(req.DateOfBirth)
	p.Gender = string(req.Gender)
	p.CountryID = uuidFromAPI(req.CountryID)
	p.Address = req.Address
	p.ReceiveNewsletters = req.ReceiveNewsletters

	if err := p.Update(tx); err != nil {
		return api.Person{}, err
	}
	return p.ConvertToAPI(tx), nil
}

// PersonFindByID returns the response shape for the given id, or nil when
// the id is absent or unmatched. A miss is not an error.
func PersonFindByID(tx *pop.Connection, id uuid.UUID) (*api.Person, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	var p Person
	if err := p.FindByID(tx, id); err != nil {
		if domain.IsOtherThanNoRows(err) {
			return nil, err
		}
		return nil, nil
	}

	resp := p.ConvertToAPI(tx)
	return &resp, nil
}

// PersonsAll loads every person and translates each to its response shape.
func PersonsAll(tx *pop.Connection) (api.Persons, error) {
	var persons Persons
	if err := tx.All(&persons); err != nil {
		return nil, appErrorFromDB(err, api.ErrorQueryFailure)
	}
	return persons.ConvertToAPI(tx), nil
}

// PersonsFiltered loads every person and applies the field filter.
func PersonsFiltered(tx *pop.Connection, searchBy, searchString string) (api.Persons, error) {
	all, err := PersonsAll(tx)
	if err != nil {
		return nil, err
	}
	return api.FilterPersons(all, searchBy, searchString), nil
}

// PersonDelete removes the record for the given id. An unmatched id returns
// false without error; a zero id is rejected.
func PersonDelete(tx *pop.Connection, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		err := errors.New("person id is required for delete")
		return false, api.NewAppError(err, api.ErrorIDRequired, api.CategoryUser)
	}

	var p Person
	if err := p.FindByID(tx, id); err != nil {
		if domain.IsOtherThanNoRows(err) {
			return false, err
		}
		return false, nil
	}

	if err := destroy(tx, &p); err != nil {
		return false, err
	}
	return true, nil
}

// ConvertToAPI translates the stored record to its response shape, computing
// the derived Age and denormalizing the country name.
func (p *Person) ConvertToAPI(tx *pop.Connection) api.Person {
	resp := api.Person{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        convertTimeToAPI(p.DateOfBirth),
		Gender:             p.Gender,
		CountryID:          convertUUIDToAPI(p.CountryID),
		Address:            p.Address,
		ReceiveNewsletters: p.ReceiveNewsletters,
	}

	if p.DateOfBirth.Valid {
		resp.Age = ageAt(p.DateOfBirth.Time, time.Now())
	}

	if p.CountryID.Valid {
		var country Country
		if err := country.FindByID(tx, p.CountryID.UUID); err == nil {
			resp.CountryName = country.Name
		}
	}

	return resp
}

func (p Persons) ConvertToAPI(tx *pop.Connection) api.Persons {
	converted := make(api.Persons, len(p))
	for i := range p {
		converted[i] = p[i].ConvertToAPI(tx)
	}
	return converted
}

// ageAt approximates age in whole years as days-since-birth / 365.25,
// rounded half to even. Not calendar-aware, intentionally.
func ageAt(dateOfBirth, now time.Time) *float64 {
	days := now.Sub(dateOfBirth).Hours() / 24
	age := math.RoundToEven(days / 365.25)
	return &age
}

func timeFromAPI(t *time.Time) nulls.Time {
	if t == nil {
		return nulls.Time{}
	}
	return nulls.NewTime(*t)
}

func uuidFromAPI(id *uuid.UUID) nulls.UUID {
	if id == nil {
		return nulls.UUID{}
	}
	return nulls.NewUUID(*id)
}

func convertTimeToAPI(t nulls.Time) *time.Time {
	if t.Valid {
		return &t.Time
	}
	return nil
}

func convertUUIDToAPI(id nulls.UUID) *uuid.UUID {
	if id.Valid {
		return &id.UUID
	}
	return nil
}
