package entities

import "errors"

// Ошибки домена контактов.
var (
	ErrEmptyName          = errors.New("contact name cannot be empty")
	ErrInvalidPhone       = errors.New("phone must contain exactly 10 digits")
	ErrInvalidBirthday    = errors.New("birthday is not valid, use the format YYYY-MM-DD")
	ErrPhoneNotFound      = errors.New("phone not found in the record")
	ErrBirthdayOutOfRange = errors.New("birthday does not exist in the target year")
)
