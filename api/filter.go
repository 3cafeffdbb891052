package api

import (
	"strings"

	"github.com/silverleaf-labs/persons-api/domain"
)

// FilterPersons returns the persons whose searchBy field contains searchString.
//
// Containment is ordinal (byte-exact, case-sensitive), unlike sorting which is
// case-insensitive. That asymmetry is deliberate and must not be unified.
// A record whose field value is absent never matches. An unknown or empty
// searchBy returns the input unfiltered, preserving order.
func FilterPersons(persons Persons, searchBy, searchString string) Persons {
	match := personPredicate(searchBy)
	if match == nil {
		return persons
	}

	filtered := make(Persons, 0, len(persons))
	for _, p := range persons {
		if match(p, searchString) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// personPredicate selects the containment predicate for a field selector, or
// nil when the selector is not filterable.
func personPredicate(searchBy string) func(Person, string) bool {
	switch searchBy {
	case FieldPersonName:
		return func(p Person, s string) bool { return strings.Contains(p.Name, s) }
	case FieldEmail:
		return func(p Person, s string) bool { return strings.Contains(p.Email, s) }
	case FieldDateOfBirth:
		// a textual match on the formatted date, e.g. "05 March 1990"
		return func(p Person, s string) bool {
			if p.DateOfBirth == nil {
				return false
			}
			return strings.Contains(p.DateOfBirth.Format(domain.LocalizedDate), s)
		}
	case FieldGender:
		return func(p Person, s string) bool { return strings.Contains(p.Gender, s) }
	case FieldCountryID:
		// the selector is the foreign key field, but the match is on the
		// denormalized country name
		return func(p Person, s string) bool {
			if p.CountryName == "" {
				return false
			}
			return strings.Contains(p.CountryName, s)
		}
	case FieldAddress:
		return func(p Person, s string) bool { return strings.Contains(p.Address, s) }
	}
	return nil
}
