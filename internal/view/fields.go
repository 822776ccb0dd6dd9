package view

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"usersadmin/internal/model"
)

// Fields are the editable values of the user form.
type Fields struct {
	UserName   string `form:"user_name" validate:"required,max=50"`
	FirstName  string `form:"first_name" validate:"required"`
	LastName   string `form:"last_name" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	UserStatus string `form:"user_status" validate:"required,oneof=A I T"`
	Department string `form:"department"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// FieldsFromUser copies a user into form values.
func FieldsFromUser(u model.User) Fields {
	return Fields{
		UserName:   u.UserName,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		UserStatus: string(u.UserStatus),
		Department: u.Department,
	}
}

// User builds a user without an id from the form values.
func (f Fields) User() model.User {
	return model.User{
		UserName:   f.UserName,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		UserStatus: model.UserStatus(f.UserStatus),
		Department: f.Department,
	}
}

// Errors maps form field names to a message for every failed rule.
func (f Fields) Errors() map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

// Valid reports whether every rule passes.
func (f Fields) Valid() bool {
	return validate.Struct(f) == nil
}

func (f Fields) trimmed() Fields {
	return Fields{
		UserName:   strings.TrimSpace(f.UserName),
		FirstName:  strings.TrimSpace(f.FirstName),
		LastName:   strings.TrimSpace(f.LastName),
		Email:      strings.TrimSpace(f.Email),
		UserStatus: strings.TrimSpace(f.UserStatus),
		Department: strings.TrimSpace(f.Department),
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return "Choose one of the listed statuses"
	case "max":
		return "At most " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
