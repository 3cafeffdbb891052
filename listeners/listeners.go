// Package listeners wires event handlers to the events the models emit.
package listeners

import (
	"fmt"

	"github.com/gobuffalo/events"
	"github.com/gofrs/uuid"

	"github.com/silverleaf-labs/persons-api/domain"
)

type apiListener struct {
	name     string
	listener func(events.Event)
}

// Register new listener functions here. The listeners themselves still need
// to verify the event kind.
var apiListeners = map[string][]apiListener{
	domain.EventApiPersonCreated: {
		{
			name:     "person-created-logger",
			listener: personCreated,
		},
	},
	domain.EventApiCountryCreated: {
		{
			name:     "country-created-logger",
			listener: countryCreated,
		},
	},
}

// RegisterListeners registers all the listeners to be used by the app
func RegisterListeners() {
	for _, listeners := range apiListeners {
		for _, l := range listeners {
			_, err := events.NamedListen(l.name, l.listener)
			if err != nil {
				domain.ErrLogger.Printf("Failed registering listener: %s, err: %s", l.name, err.Error())
			}
		}
	}
}

func personCreated(e events.Event) {
	if e.Kind != domain.EventApiPersonCreated {
		return
	}

	defer panicRecover(e.Kind)

	id, err := getID(e.Payload)
	if err != nil {
		domain.ErrLogger.Printf("no id in %s payload: %s", e.Kind, err)
		return
	}
	domain.Logger.Printf("%s %s", e.Message, id)
}

func countryCreated(e events.Event) {
	if e.Kind != domain.EventApiCountryCreated {
		return
	}

	defer panicRecover(e.Kind)

	id, err := getID(e.Payload)
	if err != nil {
		domain.ErrLogger.Printf("no id in %s payload: %s", e.Kind, err)
		return
	}
	domain.Logger.Printf("%s %s", e.Message, id)
}

func getID(p events.Payload) (uuid.UUID, error) {
	i, ok := p[domain.EventPayloadID]
	if !ok {
		return uuid.UUID{}, fmt.Errorf("id not in event payload")
	}

	switch id := i.(type) {
	case string:
		return uuid.FromStringOrNil(id), nil
	case uuid.UUID:
		return id, nil
	default:
		return uuid.UUID{}, fmt.Errorf("id not a valid type: %T", id)
	}
}

func panicRecover(name string) {
	if err := recover(); err != nil {
		domain.Logger.Printf("panic occurred in %s: %s", name, err)
	}
}
