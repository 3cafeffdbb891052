package api

import (
	"time"

	"github.com/gofrs/uuid"
)

// Field selectors recognized by the filtering and sorting engines. These are
// the read-facing field names of the Person response shape.
const (
	FieldPersonName         = "PersonName"
	FieldEmail              = "Email"
	FieldDateOfBirth        = "DateOfBirth"
	FieldAge                = "Age"
	FieldGender             = "Gender"
	FieldCountryID          = "CountryID"
	FieldCountryName        = "CountryName"
	FieldAddress            = "Address"
	FieldReceiveNewsletters = "ReceiveNewsletters"
)

type Gender string

const (
	GenderMale   = Gender("Male")
	GenderFemale = Gender("Female")
	GenderOther  = Gender("Other")
)

var ValidGenders = map[Gender]struct{}{
	GenderMale:   {},
	GenderFemale: {},
	GenderOther:  {},
}

// Person is the read-facing projection of a person record, including the
// derived Age and the denormalized country name.
type Person struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"person_name"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Gender             string     `json:"gender"`
	CountryID          *uuid.UUID `json:"country_id,omitempty"`
	CountryName        string     `json:"country_name,omitempty"`
	Address            string     `json:"address"`
	ReceiveNewsletters bool       `json:"receive_newsletters"`

	// Age in whole years, computed from DateOfBirth at translation time.
	// Absent when the birth date is absent.
	Age *float64 `json:"age,omitempty"`
}

type Persons []Person

// PersonCreateRequest is the input for creating a person. Validation messages
// for these constraints are declared in models/validation.go, and violations
// are reported in field-declaration order.
type PersonCreateRequest struct {
	Name               string     `json:"person_name" form:"person_name" validate:"required"`
	Email              string     `json:"email" form:"email" validate:"required,email"`
	DateOfBirth        *time.Time `json:"date_of_birth" form:"date_of_birth" validate:"required"`
	Gender             Gender     `json:"gender" form:"gender" validate:"required,gender"`
	CountryID          *uuid.UUID `json:"country_id" form:"country_id" validate:"required"`
	Address            string     `json:"address" form:"address" validate:"required"`
	ReceiveNewsletters bool       `json:"receive_newsletters" form:"receive_newsletters"`
}

// PersonUpdateRequest carries a full replacement of all mutable person fields.
type PersonUpdateRequest struct {
	ID                 uuid.UUID  `json:"id" form:"id"`
	Name               string     `json:"person_name" form:"person_name" validate:"required"`
	Email              string     `json:"email" form:"email" validate:"required,email"`
	DateOfBirth        *time.Time `json:"date_of_birth" form:"date_of_birth" validate:"required"`
	Gender             Gender     `json:"gender" form:"gender" validate:"required,gender"`
	CountryID          *uuid.UUID `json:"country_id" form:"country_id" validate:"required"`
	Address            string     `json:"address" form:"address" validate:"required"`
	ReceiveNewsletters bool       `json:"receive_newsletters" form:"receive_newsletters"`
}

// ToUpdateRequest converts a Person response back into an update request.
// Age is derived and is not carried over.
func (p Person) ToUpdateRequest() PersonUpdateRequest {
	return PersonUpdateRequest{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             Gender(p.Gender),
		CountryID:          p.CountryID,
		Address:            p.Address,
		ReceiveNewsletters: p.ReceiveNewsletters,
	}
}
