package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// SignUpInput holds the registration form.
type SignUpInput struct {
	Email              string
	Password           string
	FullName           string
	Course             string
	YearOfStudy        int
	RegistrationNumber string
}

func (i *SignUpInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FullName = strings.TrimSpace(i.FullName)
	i.Course = strings.TrimSpace(i.Course)
	i.RegistrationNumber = strings.ToUpper(strings.TrimSpace(i.RegistrationNumber))
}

// Validate validates the sign-up input. The email domain is checked by the
// service, since it depends on configuration.
func (i SignUpInput) Validate(minPasswordLen int) error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	errs = appendPasswordErrors(errs, i.Password, minPasswordLen)

	if i.FullName == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	} else if utf8.RuneCountInString(i.FullName) > 120 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}

	if i.Course == "" {
		errs = append(errs, domain.FieldError{Field: "course", Message: "required"})
	} else if utf8.RuneCountInString(i.Course) > 120 {
		errs = append(errs, domain.FieldError{Field: "course", Message: "too long"})
	}

	if i.YearOfStudy < 1 || i.YearOfStudy > 6 {
		errs = append(errs, domain.FieldError{Field: "year_of_study", Message: "must be between 1 and 6"})
	}

	if i.RegistrationNumber == "" {
		errs = append(errs, domain.FieldError{Field: "registration_number", Message: "required"})
	} else if len(i.RegistrationNumber) > 32 {
		errs = append(errs, domain.FieldError{Field: "registration_number", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SignInInput holds email + password credentials.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// VerifyEmailInput carries the token from a verification link.
type VerifyEmailInput struct {
	Token string
}

// Validate validates the verification input.
func (i VerifyEmailInput) Validate() error {
	if i.Token == "" {
		return domain.NewValidationError("token", "required")
	}
	if len(i.Token) > 512 {
		return domain.NewValidationError("token", "too long")
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case strings.Count(email, "@") != 1 || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}
	return errs
}

// bcrypt ignores everything past 72 bytes, so longer passwords are refused.
func appendPasswordErrors(errs []domain.FieldError, password string, minLen int) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(password) < minLen:
		return append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(password) > 72:
		return append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	return errs
}
