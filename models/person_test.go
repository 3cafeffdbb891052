package models

import (
	"testing"
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gofrs/uuid"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
)

func (ms *ModelSuite) Test_Person_CreateFromRequest() {
	country := CreateCountryFixtures(ms.DB, 1).Countries[0]

	dob := time.Date(1990, 3, 5, 0, 0, 0, 0, time.UTC)
	goodRequest := api.PersonCreateRequest{
		Name:               "Lisa Larsen",
		Email:              "lisa@example.com",
		DateOfBirth:        &dob,
		Gender:             api.GenderFemale,
		CountryID:          &country.ID,
		Address:            "1 Fjord Way",
		ReceiveNewsletters: true,
	}

	tests := []struct {
		name       string
		request    *api.PersonCreateRequest
		wantErr    *api.AppError
		wantErrMsg string
	}{
		{
			name:    "nil request",
			request: nil,
			wantErr: &api.AppError{Key: api.ErrorRequestBodyRequired, Category: api.CategoryUser},
		},
		{
			name: "blank name",
			request: &api.PersonCreateRequest{
				Email:       "lisa@example.com",
				DateOfBirth: &dob,
				Gender:      api.GenderFemale,
				CountryID:   &country.ID,
				Address:     "1 Fjord Way",
			},
			wantErr:    &api.AppError{Key: api.ErrorValidation, Category: api.CategoryUser},
			wantErrMsg: "Person Name can't be blank",
		},
		{
			name: "bad email",
			request: &api.PersonCreateRequest{
				Name:        "Lisa Larsen",
				Email:       "not-an-email",
				DateOfBirth: &dob,
				Gender:      api.GenderFemale,
				CountryID:   &country.ID,
				Address:     "1 Fjord Way",
			},
			wantErr:    &api.AppError{Key: api.ErrorValidation, Category: api.CategoryUser},
			wantErrMsg: "Email value should be a valid email",
		},
		{
			name:    "good request",
			request: &goodRequest,
		},
	}

	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			var person Person
			got, err := person.CreateFromRequest(ms.DB, tt.request)

			if tt.wantErr != nil {
				ms.Error(err)
				ms.EqualAppError(*tt.wantErr, err)
				if tt.wantErrMsg != "" {
					var appErr *api.AppError
					ms.ErrorAs(err, &appErr)
					ms.Equal(tt.wantErrMsg, appErr.Message)
				}
				return
			}

			ms.NoError(err)
			ms.NotEqual(uuid.Nil, got.ID, "created person should have a server-assigned id")
			ms.Equal(tt.request.Name, got.Name)
			ms.Equal(country.Name, got.CountryName)
			ms.NotNil(got.Age)

			found, err := PersonFindByID(ms.DB, got.ID)
			ms.NoError(err)
			ms.NotNil(found, "created person should be retrievable")
			ms.Equal(got.ID, found.ID)
			ms.Equal(got.Name, found.Name)
		})
	}
}

func (ms *ModelSuite) Test_Person_UpdateFromRequest() {
	f := CreatePersonFixtures(ms.DB, FixturesConfig{NumberOfPersons: 2, NumberOfCountries: 2})
	fixture := f.Persons[0]
	otherCountry := f.Countries[1]

	dob := time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC)
	goodRequest := api.PersonUpdateRequest{
		ID:                 fixture.ID,
		Name:               "Renamed Person",
		Email:              "renamed@example.com",
		DateOfBirth:        &dob,
		Gender:             api.GenderOther,
		CountryID:          &otherCountry.ID,
		Address:            "2 New Street",
		ReceiveNewsletters: false,
	}

	missRequest := goodRequest
	missRequest.ID = domain.GetUUID()

	badRequest := goodRequest
	badRequest.Address = ""

	tests := []struct {
		name    string
		request *api.PersonUpdateRequest
		wantErr *api.AppError
	}{
		{
			name:    "nil request",
			request: nil,
			wantErr: &api.AppError{Key: api.ErrorRequestBodyRequired, Category: api.CategoryUser},
		},
		{
			name:    "blank address",
			request: &badRequest,
			wantErr: &api.AppError{Key: api.ErrorValidation, Category: api.CategoryUser},
		},
		{
			name:    "unmatched id",
			request: &missRequest,
			wantErr: &api.AppError{Key: api.ErrorInvalidPersonID, Category: api.CategoryNotFound},
		},
		{
			name:    "good request",
			request: &goodRequest,
		},
	}

	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			var person Person
			got, err := person.UpdateFromRequest(ms.DB, tt.request)

			if tt.wantErr != nil {
				ms.Error(err)
				ms.EqualAppError(*tt.wantErr, err)
				return
			}

			ms.NoError(err)
			ms.Equal(fixture.ID, got.ID, "update must not change the id")
			ms.Equal("Renamed Person", got.Name)
			ms.Equal(otherCountry.Name, got.CountryName)
			ms.False(got.ReceiveNewsletters)

			var fromDB Person
			ms.NoError(fromDB.FindByID(ms.DB, fixture.ID))
			ms.Equal("renamed@example.com", fromDB.Email)
			ms.Equal(string(api.GenderOther), fromDB.Gender)
		})
	}
}

func (ms *ModelSuite) Test_PersonFindByID() {
	f := CreatePersonFixtures(ms.DB, FixturesConfig{NumberOfPersons: 1, NumberOfCountries: 1})
	fixture := f.Persons[0]

	tests := []struct {
		name    string
		id      uuid.UUID
		wantNil bool
	}{
		{name: "zero id", id: uuid.Nil, wantNil: true},
		{name: "unmatched id", id: domain.GetUUID(), wantNil: true},
		{name: "matched id", id: fixture.ID},
	}

	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			got, err := PersonFindByID(ms.DB, tt.id)
			ms.NoError(err, "a miss is not an error")

			if tt.wantNil {
				ms.Nil(got)
				return
			}
			ms.NotNil(got)
			ms.Equal(fixture.Name, got.Name)
		})
	}
}

func (ms *ModelSuite) Test_PersonDelete() {
	f := CreatePersonFixtures(ms.DB, FixturesConfig{NumberOfPersons: 1, NumberOfCountries: 1})
	fixture := f.Persons[0]

	tests := []struct {
		name        string
		id          uuid.UUID
		wantDeleted bool
		wantErr     *api.AppError
	}{
		{
			name:    "zero id",
			id:      uuid.Nil,
			wantErr: &api.AppError{Key: api.ErrorIDRequired, Category: api.CategoryUser},
		},
		{
			name:        "unmatched id",
			id:          domain.GetUUID(),
			wantDeleted: false,
		},
		{
			name:        "matched id",
			id:          fixture.ID,
			wantDeleted: true,
		},
	}

	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			got, err := PersonDelete(ms.DB, tt.id)

			if tt.wantErr != nil {
				ms.Error(err)
				ms.EqualAppError(*tt.wantErr, err)
				return
			}

			ms.NoError(err)
			ms.Equal(tt.wantDeleted, got)
		})
	}

	found, err := PersonFindByID(ms.DB, fixture.ID)
	ms.NoError(err)
	ms.Nil(found, "deleted person should be gone")
}

func (ms *ModelSuite) Test_PersonsFiltered() {
	f := CreatePersonFixtures(ms.DB, FixturesConfig{NumberOfPersons: 3, NumberOfCountries: 1})
	target := f.Persons[1]

	got, err := PersonsFiltered(ms.DB, api.FieldEmail, target.Email)
	ms.NoError(err)
	ms.Len(got, 1)
	ms.Equal(target.ID, got[0].ID)

	all, err := PersonsFiltered(ms.DB, "", "")
	ms.NoError(err)
	ms.Len(all, 3, "empty search returns everyone")
}

func (ms *ModelSuite) Test_Person_ConvertToAPI() {
	f := CreatePersonFixtures(ms.DB, FixturesConfig{NumberOfPersons: 1, NumberOfCountries: 1})
	fixture := f.Persons[0]
	country := f.Countries[0]

	got := fixture.ConvertToAPI(ms.DB)

	ms.Equal(fixture.ID, got.ID)
	ms.Equal(country.Name, got.CountryName)
	ms.NotNil(got.DateOfBirth)
	ms.Equal(fixture.DateOfBirth.Time, *got.DateOfBirth)
	ms.NotNil(got.Age)
	ms.Greater(*got.Age, 0.0)

	// without a date of birth or country, the derived fields stay empty
	bare := Person{ID: domain.GetUUID(), Name: "Bare", Email: "bare@example.com", Gender: "Male", Address: "x"}
	gotBare := bare.ConvertToAPI(ms.DB)
	ms.Nil(gotBare.Age)
	ms.Nil(gotBare.DateOfBirth)
	ms.Equal("", gotBare.CountryName)
}

func (ms *ModelSuite) Test_Person_ToUpdateRequest() {
	f := CreatePersonFixtures(ms.DB, FixturesConfig{NumberOfPersons: 1, NumberOfCountries: 1})
	fixture := f.Persons[0]

	resp := fixture.ConvertToAPI(ms.DB)
	ms.NotNil(resp.Age, "the response shape carries the derived age")

	// the derived age has no counterpart on the request; everything else
	// survives the round trip
	req := resp.ToUpdateRequest()
	ms.Equal(fixture.ID, req.ID)
	ms.Equal(fixture.Name, req.Name)
	ms.Equal(fixture.Email, req.Email)
	ms.NotNil(req.DateOfBirth)
	ms.Equal(fixture.DateOfBirth.Time, *req.DateOfBirth)
	ms.Equal(api.Gender(fixture.Gender), req.Gender)
	ms.NotNil(req.CountryID)
	ms.Equal(fixture.CountryID.UUID, *req.CountryID)
	ms.Equal(fixture.Address, req.Address)
	ms.Equal(fixture.ReceiveNewsletters, req.ReceiveNewsletters)
}

func (ms *ModelSuite) Test_ageAt() {
	now := time.Date(2020, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want float64
	}{
		{
			name: "thirty years to the day",
			dob:  time.Date(1990, 3, 5, 0, 0, 0, 0, time.UTC),
			want: 30,
		},
		{
			name: "rounds up from 29.6",
			dob:  time.Date(1990, 8, 1, 0, 0, 0, 0, time.UTC),
			want: 30,
		},
		{
			name: "rounds down from 30.4",
			dob:  time.Date(1989, 10, 1, 0, 0, 0, 0, time.UTC),
			want: 30,
		},
		{
			name: "under a year",
			dob:  time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
	}

	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			got := ageAt(tt.dob, now)
			ms.NotNil(got)
			ms.Equal(tt.want, *got)
		})
	}
}

func (ms *ModelSuite) Test_timeAndUUIDConversions() {
	ms.Equal(nulls.Time{}, timeFromAPI(nil))
	ms.Nil(convertTimeToAPI(nulls.Time{}))
	ms.Nil(convertUUIDToAPI(nulls.UUID{}))

	t0 := time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)
	ms.Equal(t0, timeFromAPI(&t0).Time)
	ms.Equal(&t0, convertTimeToAPI(nulls.NewTime(t0)))

	id := domain.GetUUID()
	ms.Equal(id, uuidFromAPI(&id).UUID)
	ms.Equal(&id, convertUUIDToAPI(nulls.NewUUID(id)))
}
