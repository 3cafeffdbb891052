package api

import (
	"testing"
	"time"
)

func (ts *TestSuite) Test_SortPersons() {
	age30 := 30.0
	age40 := 40.0
	early := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		persons   Persons
		sortBy    string
		order     SortOrder
		wantNames []string
	}{
		{
			name:      "name ascending is case-insensitive",
			persons:   Persons{{Name: "Bob"}, {Name: "alice"}},
			sortBy:    FieldPersonName,
			order:     SortAscending,
			wantNames: []string{"alice", "Bob"},
		},
		{
			name:      "name descending is case-insensitive",
			persons:   Persons{{Name: "Bob"}, {Name: "alice"}},
			sortBy:    FieldPersonName,
			order:     SortDescending,
			wantNames: []string{"Bob", "alice"},
		},
		{
			name:      "unknown field is a no-op",
			persons:   Persons{{Name: "Bob"}, {Name: "alice"}},
			sortBy:    "NoSuchField",
			order:     SortDescending,
			wantNames: []string{"Bob", "alice"},
		},
		{
			name:      "empty field is a no-op",
			persons:   Persons{{Name: "Bob"}, {Name: "alice"}},
			sortBy:    "",
			order:     SortAscending,
			wantNames: []string{"Bob", "alice"},
		},
		{
			name: "ties keep input order",
			persons: Persons{
				{Name: "dupe", Email: "first@example.org"},
				{Name: "DUPE", Email: "second@example.org"},
				{Name: "aaa", Email: "third@example.org"},
			},
			sortBy:    FieldPersonName,
			order:     SortAscending,
			wantNames: []string{"aaa", "dupe", "DUPE"},
		},
		{
			name: "date of birth ascending, absent first",
			persons: Persons{
				{Name: "late", DateOfBirth: &late},
				{Name: "none"},
				{Name: "early", DateOfBirth: &early},
			},
			sortBy:    FieldDateOfBirth,
			order:     SortAscending,
			wantNames: []string{"none", "early", "late"},
		},
		{
			name: "age descending",
			persons: Persons{
				{Name: "younger", Age: &age30},
				{Name: "older", Age: &age40},
			},
			sortBy:    FieldAge,
			order:     SortDescending,
			wantNames: []string{"older", "younger"},
		},
		{
			name: "newsletter flag ascending",
			persons: Persons{
				{Name: "subscribed", ReceiveNewsletters: true},
				{Name: "not subscribed"},
			},
			sortBy:    FieldReceiveNewsletters,
			order:     SortAscending,
			wantNames: []string{"not subscribed", "subscribed"},
		},
		{
			name: "country name descending",
			persons: Persons{
				{Name: "a", CountryName: "Albania"},
				{Name: "z", CountryName: "zimbabwe"},
			},
			sortBy:    FieldCountryName,
			order:     SortDescending,
			wantNames: []string{"z", "a"},
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			input := make(Persons, len(tt.persons))
			copy(input, tt.persons)

			got := SortPersons(tt.persons, tt.sortBy, tt.order)

			names := make([]string, len(got))
			for i, p := range got {
				names[i] = p.Name
			}
			ts.Equal(tt.wantNames, names)

			// the input list is never reordered in place
			ts.Equal(input, tt.persons)
		})
	}
}
