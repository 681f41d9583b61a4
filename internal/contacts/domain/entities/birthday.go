package entities

import (
	"fmt"
	"time"
)

// Birthday - календарная дата без времени и часового пояса.
type Birthday struct {
	Field[time.Time]
}

// NewBirthday разбирает raw в формате YYYY-MM-DD и отклоняет несуществующие даты.
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("birthday %q: %w", raw, ErrInvalidBirthday)
	}
	return Birthday{Field: NewField(date)}, nil
}

// WithValue возвращает новую дату рождения с проверенным значением raw.
func (b Birthday) WithValue(raw string) (Birthday, error) {
	return NewBirthday(raw)
}

// Date возвращает дату рождения на полночь UTC.
func (b Birthday) Date() time.Time { return b.Value() }

func (b Birthday) Year() int         { return b.Value().Year() }
func (b Birthday) Month() time.Month { return b.Value().Month() }
func (b Birthday) Day() int          { return b.Value().Day() }
func (b Birthday) String() string    { return b.Value().Format(time.DateOnly) }

// occurrence возвращает день рождения в году year.
// ok равен false, если такого дня в году нет (29 февраля в невисокосный год).
func (b Birthday) occurrence(year int) (time.Time, bool) {
	day := time.Date(year, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return day, day.Month() == b.Month() && day.Day() == b.Day()
}
