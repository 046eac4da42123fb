// Package validation wraps go-playground/validator behind an explicit
// registry constructed at startup and injected into handlers.  There is no
// package-level validator instance on purpose; every handler receives the
// registry it should use.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs declared with `validate` struct tags.
type Validator struct {
	v *validator.Validate
}

// New builds the validator registry.  Field names in error messages come
// from the json tag so clients see the names they sent.  The custom
// "password" rule enforces the account password policy.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	// password: 8-26 chars with at least 3 of {lower, upper, digit} classes.
	// The rule reports invalid rather than panicking for non-string fields.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return passwordOK(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct validates dst and returns nil or a single error whose message joins
// every violated field, e.g. "name must be at least 5 characters long, phone
// is required".  A non-struct dst is a programmer error and the underlying
// InvalidValidationError is returned as-is.
func (r *Validator) Struct(dst any) error {
	err := r.v.Struct(dst)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fe.Field()+" "+message(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}

// message maps a failed tag to a human-readable clause.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "password":
		return "must be 8-26 characters with at least 3 of: lowercase, uppercase, digits"
	}
	return "is invalid"
}

// passwordOK implements the password complexity policy: length between 8 and
// 26 and at least three of the lowercase, uppercase and digit classes
// present.  With only three classes defined, all three must appear.
func passwordOK(s string) bool {
	n := len([]rune(s))
	if n < 8 || n > 26 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	classes := 0
	for _, ok := range []bool{lower, upper, digit} {
		if ok {
			classes++
		}
	}
	return classes >= 3
}
