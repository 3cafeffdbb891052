package grifts

import (
	"fmt"
	"time"

	"github.com/gobuffalo/grift/grift"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"

	"github.com/silverleaf-labs/persons-api/models"
)

var _ = grift.Namespace("db", func() {
	grift.Desc("seed", "Seeds a database")
	_ = grift.Add("seed", func(c *grift.Context) error {
		count, err := models.DB.Count(models.Countries{})
		if err != nil {
			return err
		}

		if count > 0 {
			fmt.Printf("\nINFO: It appears that the grifts have already been run, "+
				"since there are already %v countries.\n", count)
			return nil
		}

		return models.DB.Transaction(func(tx *pop.Connection) error {
			countries, err := createCountries(tx)
			if err != nil {
				return err
			}
			return createPersons(tx, countries)
		})
	})
})

func createCountries(tx *pop.Connection) (models.Countries, error) {
	names := []string{"Norway", "Sweden", "Denmark", "Finland", "Iceland"}

	countries := make(models.Countries, len(names))
	for i, name := range names {
		countries[i].Name = name
		if err := countries[i].Create(tx); err != nil {
			return nil, fmt.Errorf("failed to seed country %s: %w", name, err)
		}
	}
	return countries, nil
}

func createPersons(tx *pop.Connection, countries models.Countries) error {
	persons := models.Persons{
		{
			Name:               "Lisa Larsen",
			Email:              "lisa@example.com",
			DateOfBirth:        nulls.NewTime(time.Date(1990, 3, 5, 0, 0, 0, 0, time.UTC)),
			Gender:             "Female",
			CountryID:          nulls.NewUUID(countries[0].ID),
			Address:            "1 Fjord Way",
			ReceiveNewsletters: true,
		},
		{
			Name:        "Mark Moe",
			Email:       "mark@example.com",
			DateOfBirth: nulls.NewTime(time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC)),
			Gender:      "Male",
			CountryID:   nulls.NewUUID(countries[1].ID),
			Address:     "2 Hill Road",
		},
		{
			Name:    "Sam Smith",
			Email:   "sam@example.com",
			Gender:  "Other",
			Address: "3 Lake View",
		},
	}

	for i := range persons {
		if err := persons[i].Create(tx); err != nil {
			return fmt.Errorf("failed to seed person %s: %w", persons[i].Name, err)
		}
	}
	return nil
}
