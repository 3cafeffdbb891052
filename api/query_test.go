package api

import (
	"net/url"
	"testing"

	"github.com/gobuffalo/buffalo"
)

func (ts *TestSuite) Test_NewListParams() {
	tests := []struct {
		name string
		qs   string
		want ListParams
	}{
		{
			name: "defaults",
			qs:   "",
			want: ListParams{SortBy: FieldPersonName, SortOrder: SortAscending},
		},
		{
			name: "search and sort",
			qs:   "searchBy=Email&searchString=smith&sortBy=Age&sortOrder=desc",
			want: ListParams{SearchBy: "Email", SearchString: "smith", SortBy: "Age", SortOrder: SortDescending},
		},
		{
			name: "bogus sort order falls back to ascending",
			qs:   "sortOrder=sideways",
			want: ListParams{SortBy: FieldPersonName, SortOrder: SortAscending},
		},
		{
			name: "search without sort keeps default sort",
			qs:   "searchBy=PersonName&searchString=li",
			want: ListParams{SearchBy: "PersonName", SearchString: "li", SortBy: FieldPersonName, SortOrder: SortAscending},
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.qs)
			ts.NoError(err)

			got := NewListParams(buffalo.ParamValues(values))
			ts.Equal(tt.want, got)
		})
	}
}
