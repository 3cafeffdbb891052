package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gobuffalo/validate/v3"

	"github.com/silverleaf-labs/persons-api/api"
)

// Model validation tool
var mValidate *validator.Validate

var fieldValidators = map[string]func(validator.FieldLevel) bool{
	"gender": validateGender,
}

// requestMessages are the human-readable messages attached to each declared
// field constraint, keyed by "<Type>.<Field>.<rule>".
var requestMessages = map[string]string{
	"PersonCreateRequest.Name.required":        "Person Name can't be blank",
	"PersonCreateRequest.Email.required":       "Email can't be blank",
	"PersonCreateRequest.Email.email":          "Email value should be a valid email",
	"PersonCreateRequest.DateOfBirth.required": "Date of Birth can't be blank",
	"PersonCreateRequest.Gender.required":      "Choose your gender",
	"PersonCreateRequest.Gender.gender":        "Choose your gender",
	"PersonCreateRequest.CountryID.required":   "Choose your country",
	"PersonCreateRequest.Address.required":     "Address can't be blank",

	"PersonUpdateRequest.Name.required":        "Person Name can't be blank",
	"PersonUpdateRequest.Email.required":       "Email can't be blank",
	"PersonUpdateRequest.Email.email":          "Email value should be a valid email",
	"PersonUpdateRequest.DateOfBirth.required": "Date of Birth can't be blank",
	"PersonUpdateRequest.Gender.required":      "Choose your gender",
	"PersonUpdateRequest.Gender.gender":        "Choose your gender",
	"PersonUpdateRequest.CountryID.required":   "Choose your country",
	"PersonUpdateRequest.Address.required":     "Address can't be blank",

	"CountryCreateRequest.Name.required": "Country Name can't be blank",
}

// validateRequest checks a request object against its declared field
// constraints and returns the first violation, in field-declaration order,
// with the human-readable message attached to that constraint. A nil return
// means the request is valid.
func validateRequest(m any) *api.AppError {
	err := mValidate.Struct(m)
	if err == nil {
		return nil
	}

	vErrs := err.(validator.ValidationErrors)
	first := vErrs[0]
	msg := constraintMessage(first)

	appErr := api.NewAppError(errors.New(msg), api.ErrorValidation, api.CategoryUser)
	appErr.Message = msg
	return appErr
}

// RequestErrors collects every violated constraint's message, in
// field-declaration order. Used when redisplaying a submitted form.
func RequestErrors(m any) []string {
	err := mValidate.Struct(m)
	if err == nil {
		return nil
	}

	vErrs := err.(validator.ValidationErrors)
	msgs := make([]string, len(vErrs))
	for i, v := range vErrs {
		msgs[i] = constraintMessage(v)
	}
	return msgs
}

func constraintMessage(v validator.FieldError) string {
	if msg, ok := requestMessages[v.StructNamespace()+"."+v.Tag()]; ok {
		return msg
	}
	return v.Error()
}

// validateModel is the pop validation hook, bridging the validator library
// into pop's error container.
func validateModel(m interface{}) *validate.Errors {
	vErrs := validate.NewErrors()

	if err := mValidate.Struct(m); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			vErrs.Add(err.StructNamespace(), err.Error())
		}
	}
	return vErrs
}

// flattenPopErrors - pop validation errors are complex structures, this flattens them to a simple string
func flattenPopErrors(popErrs *validate.Errors) string {
	var msgs []string
	for key, val := range popErrs.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", key, strings.Join(val, ", ")))
	}
	return strings.Join(msgs, " |")
}

func validateGender(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.Gender); ok {
		_, valid := api.ValidGenders[value]
		return valid
	}
	if value, ok := field.Field().Interface().(string); ok {
		_, valid := api.ValidGenders[api.Gender(value)]
		return valid
	}
	return false
}
