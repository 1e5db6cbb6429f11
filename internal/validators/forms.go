package validators

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/savasana/yoga-client/models"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldName        = "name"
	FieldDate        = "date"
	FieldTeacherID   = "teacher_id"
	FieldDescription = "description"
)

// Length bounds observed on the reactive forms of the booking UI. The
// session form has no length bounds; only presence is validated there.
const (
	PasswordMinLen   = 3
	PasswordMaxLen   = 40
	PersonNameMinLen = 3
	PersonNameMaxLen = 20
	LoginPasswordMin = 3
)

type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.SessionForm:
		return v.validateSessionForm(value, fields...)
	case *models.SessionForm:
		return v.validateSessionForm(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return &FieldError{Field: FieldPassword, Rule: "required"}
			}
			if actual := utf8.RuneCountInString(req.Password); actual < LoginPasswordMin {
				return &LengthError{Field: FieldPassword, Min: LoginPasswordMin, Actual: actual}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFirstName, FieldLastName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(req.Email); err != nil {
				return err
			}
		case FieldFirstName:
			if err := checkBoundedName(FieldFirstName, req.FirstName); err != nil {
				return err
			}
		case FieldLastName:
			if err := checkBoundedName(FieldLastName, req.LastName); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return &FieldError{Field: FieldPassword, Rule: "required"}
			}
			if actual := utf8.RuneCountInString(req.Password); actual < PasswordMinLen || actual > PasswordMaxLen {
				return &LengthError{Field: FieldPassword, Min: PasswordMinLen, Max: PasswordMaxLen, Actual: actual}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateSessionForm(form models.SessionForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDate, FieldTeacherID, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return &FieldError{Field: FieldName, Rule: "required"}
			}
		case FieldDate:
			if form.Date.IsZero() {
				return &FieldError{Field: FieldDate, Rule: "required"}
			}
		case FieldTeacherID:
			if form.TeacherID <= 0 {
				return &FieldError{Field: FieldTeacherID, Rule: "required"}
			}
		case FieldDescription:
			if strings.TrimSpace(form.Description) == "" {
				return &FieldError{Field: FieldDescription, Rule: "required"}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkEmail(value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: FieldEmail, Rule: "required"}
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return &FieldError{Field: FieldEmail, Rule: "invalid email"}
	}
	return nil
}

func checkBoundedName(field, value string) error {
	if value == "" {
		return &FieldError{Field: field, Rule: "required"}
	}
	if actual := utf8.RuneCountInString(value); actual < PersonNameMinLen || actual > PersonNameMaxLen {
		return &LengthError{Field: field, Min: PersonNameMinLen, Max: PersonNameMaxLen, Actual: actual}
	}
	return nil
}
