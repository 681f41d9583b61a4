package entities

import "fmt"

// PhoneLength - точное число цифр в телефоне.
const PhoneLength = 10

// Phone - номер телефона ровно из PhoneLength ASCII-цифр.
type Phone struct {
	Field[string]
}

// NewPhone проверяет raw и сохраняет его без изменений.
func NewPhone(raw string) (Phone, error) {
	if !isPhone(raw) {
		return Phone{}, fmt.Errorf("phone %q: %w", raw, ErrInvalidPhone)
	}
	return Phone{Field: NewField(raw)}, nil
}

func isPhone(raw string) bool {
	if len(raw) != PhoneLength {
		return false
	}
	for i := range len(raw) {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// WithValue возвращает новый телефон с проверенным значением raw.
func (p Phone) WithValue(raw string) (Phone, error) {
	return NewPhone(raw)
}

// Equal сравнивает телефоны по хранимой строке.
func (p Phone) Equal(other Phone) bool {
	return p.Value() == other.Value()
}

func (p Phone) String() string { return p.Value() }
