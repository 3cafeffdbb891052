package middleware

import (
	"errors"
	"net/http"

	"github.com/gobuffalo/buffalo"

	"github.com/silverleaf-labs/persons-api/domain"
)

// FeatureGate rejects person create submissions while the feature is
// disabled, which is the shipped default.
type FeatureGate struct{}

func (f *FeatureGate) Name() string { return "FeatureGate" }

func (f *FeatureGate) Order() int { return -5 }

func (f *FeatureGate) Before(c buffalo.Context) error {
	if domain.Env.DisablePersonCreate {
		return c.Error(http.StatusNotImplemented, errors.New("person creation is disabled"))
	}
	return nil
}

func (f *FeatureGate) After(c buffalo.Context) {}
