package api

import (
	"github.com/gofrs/uuid"
)

// Country is the read-facing projection of a country record
type Country struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"country_name"`
}

type Countries []Country

// CountryCreateRequest is the input for creating a country
type CountryCreateRequest struct {
	Name string `json:"country_name" form:"country_name" validate:"required"`
}
