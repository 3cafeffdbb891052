package middleware

import (
	"errors"
	"net/http"

	"github.com/gobuffalo/buffalo"

	"github.com/silverleaf-labs/persons-api/domain"
)

// TokenAuthorization requires the credential cookie on routes it guards.
// The cookie name and expected value come from configuration.
type TokenAuthorization struct{}

func (t *TokenAuthorization) Name() string { return "TokenAuthorization" }

func (t *TokenAuthorization) Order() int { return -10 }

func (t *TokenAuthorization) Before(c buffalo.Context) error {
	value, err := c.Cookies().Get(domain.Env.AuthTokenName)
	if err != nil || value != domain.Env.AuthTokenValue {
		return c.Error(http.StatusUnauthorized, errors.New("invalid or missing auth token cookie"))
	}
	return nil
}

func (t *TokenAuthorization) After(c buffalo.Context) {}
