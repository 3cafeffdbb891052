package middleware

import (
	"github.com/gobuffalo/buffalo"

	"github.com/silverleaf-labs/persons-api/domain"
)

// ResponseHeader attaches a configured diagnostic header to the response.
// The header must be set before the handler renders, so it happens in
// Before even though the stage observes rather than gates.
type ResponseHeader struct {
	Key      string
	Value    string
	Sequence int
}

// NewResponseHeader builds the stage from the configured header key, value,
// and pipeline position.
func NewResponseHeader() *ResponseHeader {
	return &ResponseHeader{
		Key:      domain.Env.ResponseHeaderKey,
		Value:    domain.Env.ResponseHeaderValue,
		Sequence: domain.Env.ResponseHeaderOrder,
	}
}

func (rh *ResponseHeader) Name() string { return "ResponseHeader" }

func (rh *ResponseHeader) Order() int { return rh.Sequence }

func (rh *ResponseHeader) Before(c buffalo.Context) error {
	c.Response().Header().Set(rh.Key, rh.Value)
	return nil
}

func (rh *ResponseHeader) After(c buffalo.Context) {}
