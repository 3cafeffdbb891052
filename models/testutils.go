package models

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"

	"github.com/silverleaf-labs/persons-api/domain"
)

type FixturesConfig struct {
	NumberOfPersons   int
	NumberOfCountries int
}

// Fixtures hold slices of model objects created for test fixtures
type Fixtures struct {
	Countries
	Persons
}

// TestBuffaloContext is a buffalo context used in tests
type TestBuffaloContext struct {
	buffalo.DefaultContext
	params map[interface{}]interface{}
}

// Value returns the value associated with the given key in the test context
func (b *TestBuffaloContext) Value(key interface{}) interface{} {
	return b.params[key]
}

// Set sets the value to be associated with the given key in the test context
func (b *TestBuffaloContext) Set(key string, val interface{}) {
	b.params[key] = val
}

// CreateTestContext sets the domain.ContextKeyTx to the tx param in the TestBuffaloContext
func CreateTestContext(tx *pop.Connection) buffalo.Context {
	ctx := &TestBuffaloContext{
		params: map[interface{}]interface{}{},
	}
	ctx.Set(domain.ContextKeyTx, tx)
	return ctx
}

// CreateCountryFixtures generates any number of country records for testing,
// each with a unique name.
func CreateCountryFixtures(tx *pop.Connection, n int) Fixtures {
	unique := domain.GetUUID().String()

	countries := make(Countries, n)
	for i := range countries {
		countries[i].Name = fmt.Sprintf("Country%d_%s", i, unique)
		MustCreate(tx, &countries[i])
	}

	return Fixtures{
		Countries: countries,
	}
}

// CreatePersonFixtures generates person records and the country records they
// reference. Persons are assigned to countries round-robin. Dates of birth
// step back one year per person from a fixed date.
func CreatePersonFixtures(tx *pop.Connection, config FixturesConfig) Fixtures {
	countries := CreateCountryFixtures(tx, config.NumberOfCountries).Countries

	unique := domain.GetUUID().String()

	persons := make(Persons, config.NumberOfPersons)
	for i := range persons {
		iStr := strconv.Itoa(i)
		persons[i].Name = "Person" + iStr + "_" + unique
		persons[i].Email = fmt.Sprintf("person%d_%s@example.com", i, unique)
		persons[i].DateOfBirth = nulls.NewTime(time.Date(1990-i, 3, 5, 0, 0, 0, 0, time.UTC))
		persons[i].Gender = "Male"
		if i%2 == 1 {
			persons[i].Gender = "Female"
		}
		if len(countries) > 0 {
			persons[i].CountryID = nulls.NewUUID(countries[i%len(countries)].ID)
		}
		persons[i].Address = randStr(20)
		persons[i].ReceiveNewsletters = i%2 == 0
		MustCreate(tx, &persons[i])
	}

	return Fixtures{
		Countries: countries,
		Persons:   persons,
	}
}

// MustCreate saves a record to the database with validation. Panics if any error occurs.
func MustCreate(tx *pop.Connection, f interface{}) {
	// Use `create` instead of `tx.Create` to check validation rules
	err := create(tx, f)
	if err != nil {
		panic(fmt.Sprintf("error creating %T fixture, %s", f, err))
	}
}

func randStr(n int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = chars[rand.Int63()%int64(len(chars))]
	}
	return string(b)
}
