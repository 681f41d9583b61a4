// Package entities defines the domain entities for the contacts service.
package entities

// Field хранит одно значение поля контакта.
//
// Сеттера нет: типизированные поля меняются только через конструктор
// или WithValue, которые повторно выполняют валидацию.
type Field[T any] struct {
	value T
}

// NewField создает поле со значением value без проверок.
func NewField[T any](value T) Field[T] {
	return Field[T]{value: value}
}

// Value возвращает хранимое значение.
func (f Field[T]) Value() T {
	return f.value
}
