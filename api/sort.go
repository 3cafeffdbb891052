package api

import (
	"sort"
	"strings"
)

type SortOrder string

const (
	SortAscending  = SortOrder("asc")
	SortDescending = SortOrder("desc")
)

// SortPersons orders persons by the given field. Text fields compare
// case-insensitively; dates, ages and booleans compare naturally. The sort is
// stable, so equal keys keep their input order. An empty or unknown sortBy
// returns the input unchanged.
func SortPersons(persons Persons, sortBy string, order SortOrder) Persons {
	less := personComparator(sortBy)
	if less == nil {
		return persons
	}

	sorted := make(Persons, len(persons))
	copy(sorted, persons)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortDescending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func personComparator(sortBy string) func(a, b Person) bool {
	switch sortBy {
	case FieldPersonName:
		return func(a, b Person) bool { return lessFold(a.Name, b.Name) }
	case FieldEmail:
		return func(a, b Person) bool { return lessFold(a.Email, b.Email) }
	case FieldDateOfBirth:
		return func(a, b Person) bool {
			if a.DateOfBirth == nil {
				return b.DateOfBirth != nil
			}
			if b.DateOfBirth == nil {
				return false
			}
			return a.DateOfBirth.Before(*b.DateOfBirth)
		}
	case FieldAge:
		return func(a, b Person) bool {
			if a.Age == nil {
				return b.Age != nil
			}
			if b.Age == nil {
				return false
			}
			return *a.Age < *b.Age
		}
	case FieldGender:
		return func(a, b Person) bool { return lessFold(a.Gender, b.Gender) }
	case FieldCountryName:
		return func(a, b Person) bool { return lessFold(a.CountryName, b.CountryName) }
	case FieldAddress:
		return func(a, b Person) bool { return lessFold(a.Address, b.Address) }
	case FieldReceiveNewsletters:
		return func(a, b Person) bool { return !a.ReceiveNewsletters && b.ReceiveNewsletters }
	}
	return nil
}

// lessFold is a case-insensitive, culture-invariant string ordering
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
