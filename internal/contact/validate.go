// Package contact validates the contact form and simulates sending it.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Field string

const (
	Name    Field = "name"
	Email   Field = "email"
	Subject Field = "subject"
	Message Field = "message"
)

// Fields are the form values. Tags double as gin form bindings.
type Fields struct {
	Name    string `form:"name" validate:"required,min=2"`
	Email   string `form:"email" validate:"required,simpleemail"`
	Subject string `form:"subject" validate:"required,min=5"`
	Message string `form:"message" validate:"required,min=10"`
}

func (f Fields) trimmed() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Errors maps each invalid field to a message for the reader.
type Errors map[Field]string

// ByName returns the errors keyed by plain field name, for templates.
func (e Errors) ByName() map[string]string {
	out := make(map[string]string, len(e))
	for k, v := range e {
		out[string(k)] = v
	}
	return out
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		return sf.Tag.Get("form")
	})
	if err := v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks trimmed values and returns one message per failing
// field. An empty map means the form can be sent.
func Validate(f Fields) Errors {
	errs := Errors{}

	err := validate.Struct(f.trimmed())
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable if Fields stops being a struct.
		panic(err)
	}
	for _, fe := range verrs {
		field := Field(fe.Field())
		errs[field] = message(field, fe.Tag(), fe.Param())
	}
	return errs
}

func message(field Field, tag, param string) string {
	label := strings.ToUpper(string(field[:1])) + string(field[1:])
	switch tag {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, param)
	case "simpleemail":
		return "Please enter a valid email address"
	}
	return label + " is invalid"
}
