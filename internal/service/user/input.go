package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/users-resources/internal/domain"
)

const (
	maxEmailLength    = 254
	maxUsernameLength = 50
	maxFullNameLength = 255
	maxPageSize       = 100
)

// CreateInput holds parameters for user creation.
type CreateInput struct {
	Email        string
	Username     *string
	FullName     string
	Affiliations string
	Preferences  *domain.UserPreferences
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validateUsername(i.Username)...)
	if len(i.FullName) > maxFullNameLength {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}
	if i.Preferences != nil {
		errs = append(errs, validatePreferences(*i.Preferences)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a user update. Nil fields are unchanged.
type UpdateInput struct {
	Email       *string
	Username    *string
	Preferences *domain.UserPreferences
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil {
		errs = append(errs, validateEmail(*i.Email)...)
	}
	errs = append(errs, validateUsername(i.Username)...)
	if i.Preferences != nil {
		errs = append(errs, validatePreferences(*i.Preferences)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProfileInput holds the profile fields.
type ProfileInput struct {
	FullName     string
	Affiliations string
}

// Validate validates the profile input.
func (i ProfileInput) Validate() error {
	if len(i.FullName) > maxFullNameLength {
		return domain.NewValidationError("full_name", "too long")
	}
	return nil
}

// SearchInput holds search parameters.
type SearchInput struct {
	Query string
	Page  int
	Size  int
}

func (i SearchInput) normalize() SearchInput {
	if i.Size <= 0 {
		i.Size = 10
	}
	if i.Size > maxPageSize {
		i.Size = maxPageSize
	}
	if i.Page <= 0 {
		i.Page = 1
	}
	return i
}

func validateEmail(email string) []domain.FieldError {
	switch {
	case strings.TrimSpace(email) == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLength:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if _, err := mail.ParseAddress(email); err != nil || domain.EmailDomain(email) == "" {
		return []domain.FieldError{{Field: "email", Message: "invalid email address"}}
	}
	return nil
}

func validateUsername(username *string) []domain.FieldError {
	if username == nil {
		return nil
	}
	switch {
	case *username == "":
		return []domain.FieldError{{Field: "username", Message: "must not be empty"}}
	case len(*username) > maxUsernameLength:
		return []domain.FieldError{{Field: "username", Message: "too long"}}
	}
	return nil
}

func validatePreferences(p domain.UserPreferences) []domain.FieldError {
	var errs []domain.FieldError
	if !p.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "preferences.visibility", Message: "must be 'public' or 'restricted'"})
	}
	if !p.EmailVisibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "preferences.email_visibility", Message: "must be 'public' or 'restricted'"})
	}
	return errs
}
