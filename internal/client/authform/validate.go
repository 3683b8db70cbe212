package authform

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Issue is one validation finding. Only blocking issues stop a submit; the
// backend stays the authority on everything else.
type Issue struct {
	Field    string
	Message  string
	Blocking bool
}

type signInFields struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type signUpFields struct {
	FirstName string `validate:"required,min=3,max=30"`
	LastName  string `validate:"required,min=3,max=30"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldLabels = map[string]string{
	"FirstName": "First name",
	"LastName":  "Last name",
	"Email":     "Email",
	"Password":  "Password",
}

func validateState(s State) []Issue {
	var err error
	if s.Mode == SignUp {
		var n Names
		if s.Names != nil {
			n = *s.Names
		}
		err = validate.Struct(signUpFields{FirstName: n.First, LastName: n.Last, Email: s.Email, Password: s.Password})
	} else {
		err = validate.Struct(signInFields{Email: s.Email, Password: s.Password})
	}

	var issues []Issue
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			issues = append(issues, Issue{Field: fe.Field(), Message: issueMessage(fe), Blocking: true})
		}
	}

	if s.Mode == SignUp && len(s.Password) >= 8 && !strongPassword(s.Password) {
		issues = append(issues, Issue{
			Field:   "Password",
			Message: "Password should contain a digit, a lowercase and an uppercase letter",
		})
	}
	return issues
}

func issueMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Email is not a valid address"
	case "min":
		if fe.Field() == "Password" {
			return fmt.Sprintf("Password must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must be between 3 and 30 characters", label)
	case "max":
		return fmt.Sprintf("%s must be between 3 and 30 characters", label)
	default:
		return label + " is invalid"
	}
}

func strongPassword(p string) bool {
	var digit, lower, upper bool
	for _, r := range p {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}
	return digit && lower && upper
}
