package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// registration mirrors the persisted user schema constraints.
type registration struct {
	FullName string `validate:"required,min=5,max=50"`
	Email    string `validate:"required,email,lmsemail"`
	Password string `validate:"required,min=8"`
}

// AppValidator checks account fields against the stored user schema.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator returns an AppValidator with the lmsemail pattern tag registered.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	_ = v.RegisterValidation("lmsemail", emailPatternFL)
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	if err := av.validate.Var(email, "required,email"); err != nil {
		return errors.New("Please fill a valid email address")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("Please fill a valid email address")
	}
	return nil
}

// ValidateFullName applies the account name length rule on its own.
func (av *AppValidator) ValidateFullName(fullName string) error {
	err := av.validate.Var(fullName, "required,min=5,max=50")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(nameMessage(verrs[0].Tag(), verrs[0].Param()))
	}
	return err
}

// ValidateRegistration checks the account fields against the schema rules.
func (av *AppValidator) ValidateRegistration(fullName, email, password string) error {
	err := av.validate.Struct(registration{FullName: fullName, Email: email, Password: password})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageFor(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func emailPatternFL(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func nameMessage(tag, param string) string {
	switch tag {
	case "min":
		return fmt.Sprintf("Name must be at least %s characters long", param)
	case "max":
		return fmt.Sprintf("Name must be at most %s characters long", param)
	}
	return "Name is required"
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "FullName":
		return nameMessage(fe.Tag(), fe.Param())
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please fill a valid email address"
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return fmt.Sprintf("Password must be at least %s characters long", fe.Param())
	}
	return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
}
